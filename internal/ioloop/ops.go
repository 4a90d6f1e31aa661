//go:build !windows

// File: internal/ioloop/ops.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ops.go is the non-variadic internal form spec §4.G describes: one
// method per offloaded syscall, each building an action, handing it to
// submit, and translating the worker's raw result/errno back into a Go
// (int, error) pair. The public wireio package's shims are pure
// marshalling on top of these — no shim here performs partial-read /
// partial-write loops or retries; short returns are passed through
// verbatim, exactly as spec.md requires.

package ioloop

import (
	"syscall"

	"golang.org/x/sys/unix"
)

func errFromErrno(errno syscall.Errno) error {
	if errno == 0 {
		return nil
	}
	return errno
}

// Read offloads a blocking read(2) of len(buf) bytes from fd.
func (c *Context) Read(fd int, buf []byte) (int, error) {
	act := newAction(actionRead)
	act.fd = fd
	act.buf = buf
	if err := c.submit(act); err != nil {
		return 0, err
	}
	return act.result, errFromErrno(act.errno)
}

// Write offloads a blocking write(2) of buf to fd.
func (c *Context) Write(fd int, buf []byte) (int, error) {
	act := newAction(actionWrite)
	act.fd = fd
	act.buf = buf
	if err := c.submit(act); err != nil {
		return 0, err
	}
	return act.result, errFromErrno(act.errno)
}

// OpenFile offloads a blocking open(2). It is the non-variadic
// decomposition of POSIX's variadic open(path, flags, ...mode) named in
// spec.md §4.G and DESIGN NOTES: mode is always passed explicitly, and
// the public wireio.Open/wireio.OpenFile split extracts the variadic
// argument before reaching here.
func (c *Context) OpenFile(path string, flags int, mode uint32) (int, error) {
	act := newAction(actionOpenFile)
	act.path = path
	act.flags = flags
	act.mode = mode
	if err := c.submit(act); err != nil {
		return 0, err
	}
	return act.result, errFromErrno(act.errno)
}

// CloseFD offloads a blocking close(2).
func (c *Context) CloseFD(fd int) error {
	act := newAction(actionClose)
	act.fd = fd
	if err := c.submit(act); err != nil {
		return err
	}
	return errFromErrno(act.errno)
}

// Stat offloads a blocking stat(2).
func (c *Context) Stat(path string) (unix.Stat_t, error) {
	act := newAction(actionStat)
	act.path = path
	if err := c.submit(act); err != nil {
		return unix.Stat_t{}, err
	}
	return act.statOut, errFromErrno(act.errno)
}

// Fstat offloads a blocking fstat(2).
func (c *Context) Fstat(fd int) (unix.Stat_t, error) {
	act := newAction(actionFstat)
	act.fd = fd
	if err := c.submit(act); err != nil {
		return unix.Stat_t{}, err
	}
	return act.statOut, errFromErrno(act.errno)
}

// Fcntl offloads a blocking fcntl(2). arg is the non-variadic int form;
// the small handful of fcntl commands that take a pointer argument are
// out of scope (spec.md Non-goals).
func (c *Context) Fcntl(fd int, cmd int, arg int) (int, error) {
	act := newAction(actionFcntl)
	act.fd = fd
	act.cmd = cmd
	act.arg = uintptr(arg)
	if err := c.submit(act); err != nil {
		return 0, err
	}
	return act.result, errFromErrno(act.errno)
}

// Ioctl offloads a blocking ioctl(2). Resolves spec.md §9's "does the
// inner result fall off the end" open question: the inner dispatch
// result is always returned here, never discarded (see DESIGN.md).
func (c *Context) Ioctl(fd int, cmd int, arg uintptr) (int, error) {
	act := newAction(actionIoctl)
	act.fd = fd
	act.cmd = cmd
	act.arg = arg
	if err := c.submit(act); err != nil {
		return 0, err
	}
	return act.result, errFromErrno(act.errno)
}
