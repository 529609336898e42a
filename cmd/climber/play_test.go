package main

import (
	"net"
	"testing"
)

func TestStartSpectatorFailsOnBusyPort(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer taken.Close()

	stop, err := startSpectator(taken.Addr().String(), 1)
	if err == nil {
		stop()
		t.Fatal("expected an error for a busy spectate address")
	}
}

func TestStartSpectatorDisabled(t *testing.T) {
	stop, err := startSpectator("", 1)
	if err != nil {
		t.Fatalf("startSpectator with no address: %v", err)
	}
	stop()
}
