package spectate

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-climber/internal/games/climber/sim"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestHubThinsStream(t *testing.T) {
	h := NewHub(testLogger(), 3)
	_, out := h.join()

	for i := 1; i <= 9; i++ {
		h.Publish(sim.Snapshot{Tick: i})
	}
	if got := len(out); got != 3 {
		t.Fatalf("queued %d messages, want 3", got)
	}

	var msg Message
	if err := json.Unmarshal(<-out, &msg); err != nil {
		t.Fatal(err)
	}
	if msg.Type != "snapshot" || msg.Version != ProtocolVersion || msg.Snapshot.Tick != 3 {
		t.Errorf("first message = %+v", msg)
	}
}

func TestHubAlwaysForwardsGameOver(t *testing.T) {
	h := NewHub(testLogger(), 100)
	h.Publish(sim.Snapshot{Tick: 1, GameOver: true, Reason: sim.ReasonFell})

	if h.Latest() == nil {
		t.Fatal("game over snapshot was thinned out")
	}
}

func TestHubDropsForSlowViewers(t *testing.T) {
	h := NewHub(testLogger(), 1)
	_, out := h.join()

	for i := 0; i < clientBuffer+5; i++ {
		h.Publish(sim.Snapshot{Tick: i})
	}
	if len(out) != clientBuffer {
		t.Errorf("queued %d, want buffer size %d", len(out), clientBuffer)
	}
	if h.Dropped() != 5 {
		t.Errorf("Dropped() = %d, want 5", h.Dropped())
	}
}

func TestHubJoinLeave(t *testing.T) {
	h := NewHub(testLogger(), 1)
	h.Publish(sim.Snapshot{Tick: 7})

	id, out := h.join()
	if h.Viewers() != 1 {
		t.Fatalf("Viewers() = %d", h.Viewers())
	}
	if len(out) != 1 {
		t.Error("late viewer should receive the latest snapshot")
	}

	h.leave(id)
	h.leave(id)
	if h.Viewers() != 0 {
		t.Errorf("Viewers() = %d after leave", h.Viewers())
	}
	<-out
	if _, ok := <-out; ok {
		t.Error("channel should be closed after leave")
	}
}

func TestSnapshotHandler(t *testing.T) {
	h := NewHub(testLogger(), 1)
	srv := httptest.NewServer(NewServer(h, testLogger()).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/snapshot")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("empty hub status = %d, want 204", resp.StatusCode)
	}

	h.Publish(sim.Snapshot{Tick: 4, Score: 99})
	resp, err = http.Get(srv.URL + "/snapshot")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var msg Message
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		t.Fatal(err)
	}
	if msg.Snapshot == nil || msg.Snapshot.Score != 99 {
		t.Errorf("snapshot = %+v", msg.Snapshot)
	}
}

func TestWebsocketStream(t *testing.T) {
	h := NewHub(testLogger(), 1)
	srv := httptest.NewServer(NewServer(h, testLogger()).Handler())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for h.Viewers() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if h.Viewers() != 1 {
		t.Fatal("viewer never joined")
	}

	h.Publish(sim.Snapshot{Tick: 12, Score: 345})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, b, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	var msg Message
	if err := json.Unmarshal(b, &msg); err != nil {
		t.Fatal(err)
	}
	if msg.Snapshot.Tick != 12 || msg.Snapshot.Score != 345 {
		t.Errorf("snapshot = %+v", msg.Snapshot)
	}

	conn.Close()
	deadline = time.Now().Add(2 * time.Second)
	for h.Viewers() != 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if h.Viewers() != 0 {
		t.Error("viewer not removed after disconnect")
	}
}

func TestListenReportsBusyAddress(t *testing.T) {
	taken, err := Listen("127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer taken.Close()
	addr := taken.Addr().String()

	if ln, err := Listen(addr); err == nil {
		ln.Close()
		t.Fatalf("Listen(%s) succeeded on a busy address", addr)
	}

	srv := NewServer(NewHub(testLogger(), 1), testLogger())
	if err := srv.ListenAndServe(context.Background(), addr); err == nil {
		t.Error("ListenAndServe should fail on a busy address")
	}
}

func TestServeUntilCancelled(t *testing.T) {
	ln, err := Listen("127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	h := NewHub(testLogger(), 1)
	h.Publish(sim.Snapshot{Tick: 1, Score: 7})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewServer(h, testLogger()).Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/snapshot")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned %v after cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not stop after cancel")
	}
}
