//go:build !linux && !windows

// File: internal/ioloop/signals_other.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// unix.Sigset_t's layout is platform-specific (linux's is a fixed-size
// uint64 array, darwin/bsd's is a scalar); rather than special-case every
// one, non-Linux POSIX builds skip explicit signal masking and rely on Go
// runtime's own signal handling, which already keeps asynchronous signals
// off arbitrary goroutines in practice. Documented gap, not a silent one.

package ioloop

func blockAllSignals(ctx *Context) {
	ctx.logger.Debugf("ioloop: explicit signal masking not implemented on this platform")
}
