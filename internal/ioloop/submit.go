//go:build !windows

// File: internal/ioloop/submit.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// submit is component F: the exact 8-step submission path from spec §4.F,
// callable from any fiber. Step ordering (resume-before-increment) is
// preserved verbatim — see the comment on step 5 below, which is the one
// subtlety in this file worth getting wrong.

package ioloop

// submit queues act and parks the caller until a worker has run it and the
// response fiber has resumed the wait handle. Returns ErrExecutorClosed
// without queuing or parking if the Context has already been torn down by
// Close — without this check a submit racing a Close could queue an action
// no worker will ever pick up, parking its caller forever.
func (c *Context) submit(act *action) error {
	if c.closed.Load() {
		return ErrExecutorClosed
	}

	// Steps 1-2: the wait handle already lives on act (newAction wires it),
	// so "store the handle address in the record header" is simply act
	// itself carrying act.wait — there is no separate header to populate
	// in this translation.

	// Step 3-4: append under the queue mutex, release, wake one worker.
	// push() does both in one call (see queue.go).
	c.queue.push(act)

	// Step 5: if no I/O was outstanding before this submission, the
	// response fiber parked itself fully detached and nothing else will
	// wake it — resume it explicitly now, before incrementing the
	// counter. Racing the response fiber's own idle-check here is safe:
	// worst case it re-examines the (already correct) state and
	// continues, because the record is already queued and the wait
	// handle is already in place (spec §4.F closing note).
	if c.numActiveIOs.Load() == 0 {
		c.responseFiber.Resume()
	}

	// Step 6: counter increment happens after the resume decision, never
	// before.
	c.numActiveIOs.Add(1)
	c.metrics.recordSubmit(act.kind, c.queue.len())

	// Step 7: arm the response fiber's fd for read-readiness so its next
	// pass through the drain loop is in the correct mode.
	c.fdState.SetModeRead()

	// Step 8: park until the worker has run the call and the response
	// fiber has resumed this wait handle.
	act.wait.Park()
	return nil
}
