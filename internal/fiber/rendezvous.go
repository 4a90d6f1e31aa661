// File: internal/fiber/rendezvous.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Rendezvous is the single-shot, level-latched wait handle described in
// the spec's data model: a fiber parks on it, exactly one Signal makes it
// runnable. A Signal that arrives before the Park is remembered, not
// lost — modeled directly with a capacity-1 buffered channel, which is
// exactly a latch: a send that lands before anyone receives just sits in
// the buffer until the receive happens.

package fiber

// Rendezvous is a single-shot wait/signal pair. Construct with
// NewRendezvous before publishing a pointer to other goroutines — unlike
// the zero value of most Go types, a zero Rendezvous is not ready to use,
// since Park/Signal must share one channel and there is no race-free way
// to lazily create it once the pointer has escaped to another goroutine.
type Rendezvous struct {
	ch chan struct{}
}

// NewRendezvous returns a ready-to-use Rendezvous.
func NewRendezvous() *Rendezvous {
	return &Rendezvous{ch: make(chan struct{}, 1)}
}

// Park blocks the calling goroutine until Signal has been (or already
// was) called.
func (r *Rendezvous) Park() {
	<-r.ch
}

// Signal makes a parked (or future) Park call return. Idempotent: a
// second Signal before the first is consumed by Park is a no-op, matching
// the "exactly one resume is delivered" invariant.
func (r *Rendezvous) Signal() {
	select {
	case r.ch <- struct{}{}:
	default:
	}
}

// Reset prepares the Rendezvous for another single-shot wait. Must only
// be called when no goroutine is currently parked on it.
func (r *Rendezvous) Reset() {
	r.ch = make(chan struct{}, 1)
}

// WaitList chains exactly one Rendezvous, mirroring wire_wait_list_t /
// wire_wait_chain from the reference source. The offload core only ever
// needs a single waiter per action, but keeping the list wrapper matches
// the collaborator contract named in spec §6 and leaves room for a
// multi-waiter extension without changing callers.
type WaitList struct {
	item *Rendezvous
}

// Chain associates r with this wait list.
func (l *WaitList) Chain(r *Rendezvous) {
	l.item = r
}

// Wait parks on the chained Rendezvous.
func (l *WaitList) Wait() {
	if l.item != nil {
		l.item.Park()
	}
}
