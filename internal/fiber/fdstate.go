// File: internal/fiber/fdstate.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// FDState attaches/detaches a descriptor to the readiness engine and lets
// a fiber park until it becomes readable — the wire_fd_mode_init /
// wire_fd_mode_read / wire_fd_mode_none / wire_fd_wait contract from the
// reference source (spec §6). Backed by the package-level poller
// (poller_linux.go / poller_other.go).
//
// Mode transitions are guarded by a mutex: submit() calls SetModeRead from
// every submitting goroutine (there is one per concurrently blocked
// caller), while the response fiber calls SetModeRead/SetModeNone from its
// own goroutine, so the check-then-act register/unregister sequence below
// is genuinely concurrent, not merely single-writer.

package fiber

import "sync"

// Mode describes what a FDState is currently registered for.
type Mode int

const (
	// ModeNone means the descriptor is detached from the readiness engine
	// entirely — the defining property that lets the process idle and
	// exit when no I/O is outstanding.
	ModeNone Mode = iota
	// ModeRead means the descriptor is registered for read readiness.
	ModeRead
)

// FDState tracks one descriptor's registration with the readiness engine
// plus a Rendezvous used to park a fiber until that descriptor is ready.
type FDState struct {
	fd   int
	mu   sync.Mutex
	mode Mode
	wait *Rendezvous
	p    *poller
}

// NewFDState attaches fd to the default poller in ModeNone.
func NewFDState(fd int) *FDState {
	return &FDState{fd: fd, mode: ModeNone, wait: NewRendezvous(), p: defaultPoller()}
}

// SetModeRead arms fd for read readiness. Safe to call repeatedly, and from
// multiple goroutines at once.
func (s *FDState) SetModeRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode == ModeRead {
		return
	}
	s.mode = ModeRead
	s.p.register(s)
}

// SetModeNone detaches fd from the readiness engine entirely. Safe to call
// repeatedly, and from multiple goroutines at once.
func (s *FDState) SetModeNone() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode == ModeNone {
		return
	}
	s.mode = ModeNone
	s.p.unregister(s)
}

// Wait parks the calling fiber until the poller reports fd readable.
// submit()'s explicit resume path does not end this wait: it targets the
// response fiber's own Rendezvous, not this one.
func (s *FDState) Wait() {
	s.wait.Park()
}

// FD returns the underlying descriptor.
func (s *FDState) FD() int { return s.fd }
