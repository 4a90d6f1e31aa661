//go:build !windows

// File: internal/ioloop/response_fiber.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The response fiber drains the response channel, resumes waiters, and
// parks when idle — spec §4.E, with the exact 3-state machine from
// §4.G: Draining -> FdParked (short read, active > 0), Draining ->
// FullySuspended (short read, active == 0), FdParked -> Draining (fd
// ready), FullySuspended -> Draining (explicit resume from submit()).
// The non-blocking-drain-then-park shape is adapted from the teacher's
// core/concurrency/eventloop.go Run() loop (drain a batch, then block).

package ioloop

import (
	"errors"

	"github.com/momentics/wireio/internal/fiber"
	"golang.org/x/sys/unix"
)

type responseFiberState int

const (
	stateDraining responseFiberState = iota
	stateFdParked
	stateFullySuspended
)

// isAgain reports whether err is the non-blocking-read "nothing available
// right now" signal, the short-read trigger for the state transitions in
// spec §4.G.
func isAgain(err error) bool {
	return errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK)
}

func (c *Context) runResponseFiber(f *fiber.Fiber) {
	state := stateDraining
	batch := make([]*action, c.responseBatchSize)

	for {
		switch state {
		case stateFullySuspended:
			f.Suspend()
			state = stateDraining
			continue
		case stateFdParked:
			c.fdState.Wait()
			state = stateDraining
			continue
		}

		n, err := c.rc.drain(batch)
		switch {
		case err == nil && n > 0:
			for i := 0; i < n; i++ {
				act := batch[i]
				act.wait.Signal()
				c.numActiveIOs.Add(-1)
			}
			c.metrics.recordCompletion(n)
			if n < len(batch) {
				if c.numActiveIOs.Load() == 0 {
					state = stateFullySuspended
				} else {
					state = stateFdParked
				}
			}
		case isAgain(err):
			if c.numActiveIOs.Load() == 0 {
				state = stateFullySuspended
			} else {
				state = stateFdParked
			}
		default:
			// Any other read error, or EOF: fatal. The response channel
			// is non-optional — there is no safe continuation, matching
			// spec §7's "abort" instruction.
			c.logger.Fatalf("ioloop: response channel read failed: %v", err)
			return
		}

		if state == stateFullySuspended {
			c.fdState.SetModeNone()
		} else if state == stateFdParked {
			c.fdState.SetModeRead()
		}
	}
}
