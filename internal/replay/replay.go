// Package replay records climber runs as compressed JSON lines and replays
// them through the simulation to verify their result.
//
// A replay file holds one header line, one line per simulated tick and a
// closing result line. Only inputs are stored; the run is reconstructed by
// re-simulating from the seed and the embedded configuration.
package replay

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"github.com/vovakirdan/tui-climber/internal/config"
)

// Version is the file format version written by this package.
const Version = 1

// Ext is the file extension of replay files.
const Ext = ".jsonl.zst"

// Header describes a run.
type Header struct {
	Version   int                  `json:"version"`
	RunID     string               `json:"run_id"`
	Game      string               `json:"game"`
	Seed      int64                `json:"seed"`
	StartedAt time.Time            `json:"started_at"`
	Config    config.ClimberConfig `json:"config"`
}

// Frame is the input applied in one tick.
type Frame struct {
	Tick    int     `json:"t"`
	Elapsed float64 `json:"dt"`
	Dir     int     `json:"dir,omitempty"`
	Boost   bool    `json:"boost,omitempty"`
}

// Result is the outcome recorded when a run ends.
type Result struct {
	Score  int    `json:"score"`
	Kills  int    `json:"kills"`
	Ticks  int    `json:"ticks"`
	Reason string `json:"reason"`
}

// line is one JSONL record; exactly one field is set.
type line struct {
	Header *Header `json:"header,omitempty"`
	Frame  *Frame  `json:"frame,omitempty"`
	Result *Result `json:"result,omitempty"`
}

// Replay is a fully loaded replay file.
type Replay struct {
	Header Header
	Frames []Frame
	Result *Result // Nil when the run was abandoned
}

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// Recorder writes a replay file. It is safe for concurrent use.
type Recorder struct {
	path string

	mu   sync.Mutex
	f    *os.File
	enc  *zstd.Encoder
	w    *bufio.Writer
	done bool
}

// NewRecorder creates dir/<run id>.jsonl.zst and writes the header.
// An empty RunID is filled in.
func NewRecorder(dir string, h Header) (*Recorder, error) {
	if h.RunID == "" {
		h.RunID = NewRunID()
	}
	if h.StartedAt.IsZero() {
		h.StartedAt = time.Now().UTC()
	}
	h.Version = Version

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("replay: create dir: %w", err)
	}
	path := filepath.Join(dir, h.RunID+Ext)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("replay: create file: %w", err)
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("replay: init encoder: %w", err)
	}

	r := &Recorder{
		path: path,
		f:    f,
		enc:  enc,
		w:    bufio.NewWriterSize(enc, 64*1024),
	}
	if err := r.write(line{Header: &h}); err != nil {
		_ = r.Close()
		return nil, err
	}
	return r, nil
}

// Path returns the file being written.
func (r *Recorder) Path() string {
	return r.path
}

// Record appends one tick of input.
func (r *Recorder) Record(f Frame) error {
	return r.write(line{Frame: &f})
}

// Finish writes the result line and closes the file.
func (r *Recorder) Finish(res Result) error {
	if err := r.write(line{Result: &res}); err != nil {
		_ = r.Close()
		return err
	}
	return r.Close()
}

func (r *Recorder) write(l line) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.done {
		return errors.New("replay: recorder closed")
	}
	b, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("replay: encode: %w", err)
	}
	if _, err := r.w.Write(b); err != nil {
		return fmt.Errorf("replay: write: %w", err)
	}
	if err := r.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("replay: write: %w", err)
	}
	return nil
}

// Close flushes and closes the file without a result line.
// Closing twice is a no-op.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.done {
		return nil
	}
	r.done = true

	var firstErr error
	if err := r.w.Flush(); err != nil {
		firstErr = err
	}
	if err := r.enc.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := r.f.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if firstErr != nil {
		return fmt.Errorf("replay: close: %w", firstErr)
	}
	return nil
}

// Load reads a replay file.
func Load(path string) (*Replay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: open: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read decodes a replay stream.
func Read(r io.Reader) (*Replay, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("replay: init decoder: %w", err)
	}
	defer dec.Close()

	var rep Replay
	seenHeader := false

	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for n := 1; sc.Scan(); n++ {
		var l line
		if err := json.Unmarshal(sc.Bytes(), &l); err != nil {
			return nil, fmt.Errorf("replay: line %d: %w", n, err)
		}
		switch {
		case l.Header != nil:
			if seenHeader {
				return nil, fmt.Errorf("replay: line %d: duplicate header", n)
			}
			rep.Header = *l.Header
			seenHeader = true
		case !seenHeader:
			return nil, fmt.Errorf("replay: line %d: missing header", n)
		case l.Frame != nil:
			rep.Frames = append(rep.Frames, *l.Frame)
		case l.Result != nil:
			rep.Result = l.Result
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("replay: read: %w", err)
	}
	if !seenHeader {
		return nil, errors.New("replay: empty file")
	}
	if rep.Header.Version != Version {
		return nil, fmt.Errorf("replay: unsupported version %d", rep.Header.Version)
	}
	return &rep, nil
}
