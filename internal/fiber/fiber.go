// File: internal/fiber/fiber.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fiber wraps a goroutine with explicit Suspend/Resume parking, matching
// the wire-runtime contract consumed by the offload core (spec §6):
// resume(fiber), suspend(), and a named home for the first-run bootstrap
// step (see Bootstrap, which runs inline rather than as a fiber).

package fiber

import "sync/atomic"

// Fiber is a cooperatively scheduled unit of execution. Unlike the
// original C runtime, it does not own a raw stack: Go already gives every
// goroutine a managed, growable stack, so a Fiber here is a goroutine plus
// a Rendezvous used for self-parking.
type Fiber struct {
	name string
	rv   *Rendezvous
	done atomic.Bool
}

// Go starts entry on a new goroutine and returns its Fiber handle.
// entry must call Suspend (directly or transitively) at every point it
// wishes to yield control back to whatever resumes it.
func Go(name string, entry func(f *Fiber)) *Fiber {
	f := &Fiber{name: name, rv: NewRendezvous()}
	go func() {
		entry(f)
		f.done.Store(true)
	}()
	return f
}

// Name returns the fiber's diagnostic name.
func (f *Fiber) Name() string { return f.name }

// Suspend parks the calling goroutine until some other goroutine calls
// Resume on this same Fiber. It must only be called from within the
// goroutine Go started for f. A Fiber is resumed and suspended repeatedly
// over its lifetime, but the underlying Rendezvous needs no Reset between
// cycles: its capacity-1 channel is left empty the instant Park drains it,
// which is already exactly the state the next Suspend/Resume pair needs.
// Calling Reset here would race with a concurrent Signal from Resume (two
// goroutines touching the same channel field with no happens-before edge
// between them), so it deliberately doesn't.
func (f *Fiber) Suspend() {
	f.rv.Park()
}

// Resume makes f runnable again. Safe to call from any goroutine,
// including before Suspend has been reached (the wakeup is latched, not
// lost) — this is the "resume(fiber)" collaborator contract in spec §6.
func (f *Fiber) Resume() {
	f.rv.Signal()
}

// Bootstrap reproduces the original runtime's "first-run" fiber
// (wire_io_first_run in the reference source): a fiber whose sole purpose
// is, on its very first scheduling quantum, to mark the goroutine it runs
// on as the wire goroutine. The C runtime needed a dedicated fiber for
// this because the mark can only happen inside fiber-entry context; Go's
// translation has no such restriction, so markWire runs inline and no
// goroutine is actually spawned. The function is kept so the concept from
// the original source has a named, documented home.
func Bootstrap(markWire func()) {
	markWire()
}
