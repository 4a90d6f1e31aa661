//go:build !windows

// File: internal/ioloop/response_channel.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// responseChannel is the AF_UNIX/SOCK_STREAM socket pair described in
// spec §3/§4.D: workers write completed-action pointers, the response
// fiber reads them. Each write is exactly one machine word (a *action
// converted to uintptr), comfortably under PIPE_BUF, so concurrent
// worker writes never interleave (spec's "pointer-sized writes are
// atomic" assumption). Reading back the pointer is safe only because the
// submitting goroutine's own stack frame keeps the action reachable for
// the GC the whole time (spec's ownership invariant) — this file is the
// one place in the module that crosses unsafe.Pointer/uintptr.

package ioloop

import (
	"unsafe"

	"github.com/momentics/wireio/pool"
	"golang.org/x/sys/unix"
)

const wordSize = int(unsafe.Sizeof(uintptr(0)))

type responseChannel struct {
	writeFD int
	readFD  int
	scratch *pool.BytePool
}

func newResponseChannel(batchSize int) (*responseChannel, error) {
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM, 0)
	if err != nil {
		return nil, err
	}
	if err := unix.SetNonblock(fds[1], true); err != nil {
		unix.Close(fds[0])
		unix.Close(fds[1])
		return nil, err
	}
	scratch := pool.NewBytePool(batchSize * wordSize)
	return &responseChannel{writeFD: fds[0], readFD: fds[1], scratch: scratch}, nil
}

// post is called from a worker goroutine to report a completed action.
func (rc *responseChannel) post(act *action) error {
	var buf [8]byte
	putUintptr(buf[:], uintptr(unsafe.Pointer(act)))
	n, err := unix.Write(rc.writeFD, buf[:wordSize])
	if err != nil {
		return err
	}
	if n != wordSize {
		return errShortWrite
	}
	return nil
}

// drain performs one non-blocking read of up to len(out) pointers,
// returning how many were filled. Matches spec §4.E step 1. The scratch
// buffer is pooled and reused across calls — this runs once per response
// fiber pass, so it is the only allocation-sensitive path in the package.
func (rc *responseChannel) drain(out []*action) (int, error) {
	raw := rc.scratch.GetBuffer()
	defer rc.scratch.PutBuffer(raw)
	if len(raw) > len(out)*wordSize {
		raw = raw[:len(out)*wordSize]
	}
	n, err := unix.Read(rc.readFD, raw)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, errEOF
	}
	count := n / wordSize
	for i := 0; i < count; i++ {
		p := getUintptr(raw[i*wordSize:])
		out[i] = (*action)(unsafe.Pointer(p))
	}
	return count, nil
}

func (rc *responseChannel) fd() int { return rc.readFD }

func putUintptr(b []byte, v uintptr) {
	for i := 0; i < wordSize; i++ {
		b[i] = byte(v >> (8 * i))
	}
}

func getUintptr(b []byte) uintptr {
	var v uintptr
	for i := 0; i < wordSize; i++ {
		v |= uintptr(b[i]) << (8 * i)
	}
	return v
}
