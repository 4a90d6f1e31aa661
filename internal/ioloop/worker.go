//go:build !windows

// File: internal/ioloop/worker.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// worker reproduces spec §4.C: after creation, a worker blocks all
// signals (so the fiber runtime's signal discipline is undisturbed — here
// meaning only the wire goroutine's process ever observes a delivered
// signal), then loops: dequeue, dispatch, respond. Workers never touch
// fiber state except the wait handle embedded in the action's header;
// resume is always delegated to the response fiber. Adapted from the
// teacher's core/concurrency/executor.go worker goroutine shape
// (worker.run, stopCh-based shutdown) but driving a fixed syscall
// dispatcher instead of an arbitrary TaskFunc closure. When the caller
// opts in via Options.PinWorkers, each worker also pins itself to a
// distinct logical CPU with the teacher's affinity package, using the
// same LockOSThread-then-pin ordering the teacher's own affinity package
// requires (affinity pins the calling OS thread, so it must run after
// LockOSThread has bound this goroutine to one for good).

package ioloop

import (
	"runtime"

	"github.com/momentics/wireio/affinity"
)

type worker struct {
	id   int
	stop chan struct{}
}

func startWorkerPool(n int, ctx *Context) []*worker {
	workers := make([]*worker, n)
	for i := 0; i < n; i++ {
		w := &worker{id: i, stop: make(chan struct{})}
		workers[i] = w
		go w.run(ctx)
	}
	return workers
}

func (w *worker) run(ctx *Context) {
	runtime.LockOSThread()
	blockAllSignals(ctx)

	if ctx.pinWorkers {
		if err := affinity.SetAffinity(w.id); err != nil {
			ctx.logger.Warnf("ioloop: worker %d could not set CPU affinity: %v", w.id, err)
		}
	}

	for {
		select {
		case <-w.stop:
			return
		default:
		}

		act := ctx.queue.popBlocking()
		if act == nil {
			// Only returned once the queue has been closed and drained
			// (see queue.go); the worker retires.
			return
		}

		dispatch(act)

		if err := ctx.rc.post(act); err != nil {
			// Spec §7: a response-channel write failure is logged
			// loudly; the action is still considered reported since the
			// worker already ran it to completion. A genuinely lost
			// wakeup (the caller's fiber parked forever) is the failure
			// mode this logs so it gets noticed.
			ctx.logger.Errorf("ioloop: worker %d failed to post action %s: %v", w.id, act.kind, err)
		}
	}
}
