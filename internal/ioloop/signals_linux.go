//go:build linux

// File: internal/ioloop/signals_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Worker threads block every signal so the wire goroutine remains the
// sole signal recipient, per spec §5. pthread_sigmask is per-OS-thread,
// so this must run after runtime.LockOSThread has pinned the calling
// goroutine to a real thread it keeps for as long as the worker runs.

package ioloop

import "golang.org/x/sys/unix"

func blockAllSignals(ctx *Context) {
	var full unix.Sigset_t
	for i := range full.Val {
		full.Val[i] = ^uint64(0)
	}
	if err := unix.PthreadSigmask(unix.SIG_BLOCK, &full, nil); err != nil {
		ctx.logger.Warnf("ioloop: worker could not block signals: %v", err)
	}
}
