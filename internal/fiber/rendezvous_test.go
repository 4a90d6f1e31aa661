package fiber

import (
	"testing"
	"time"
)

func TestRendezvous_SignalBeforePark(t *testing.T) {
	r := NewRendezvous()
	r.Signal()

	done := make(chan struct{})
	go func() {
		r.Park()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Park did not return after a Signal that happened first")
	}
}

func TestRendezvous_ParkThenSignal(t *testing.T) {
	r := NewRendezvous()
	done := make(chan struct{})

	go func() {
		r.Park()
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	r.Signal()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Park did not return after Signal")
	}
}

func TestRendezvous_ResetAllowsReuse(t *testing.T) {
	r := NewRendezvous()
	r.Signal()
	r.Park()
	r.Reset()

	done := make(chan struct{})
	go func() {
		r.Park()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Park returned before the second Signal")
	case <-time.After(20 * time.Millisecond):
	}

	r.Signal()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Park did not return after the second Signal")
	}
}

func TestRendezvous_SignalIsLatchedNotLost(t *testing.T) {
	r := NewRendezvous()
	for i := 0; i < 3; i++ {
		r.Signal()
	}
	done := make(chan struct{})
	go func() {
		r.Park()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("extra Signal calls should not prevent Park from returning")
	}
}
