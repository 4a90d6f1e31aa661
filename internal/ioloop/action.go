// File: internal/ioloop/action.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// action is the typed envelope described in spec §3/§4.A: one record per
// outstanding offloaded call, carrying a closed-set discriminant, its
// packed inputs, and the outputs the worker writes before handing the
// record back to the response channel. The set of kinds is closed
// deliberately — adding a new offloaded syscall is a local change to this
// file plus dispatch(), never a change to the queue or worker plumbing.

package ioloop

import (
	"syscall"

	"github.com/momentics/wireio/internal/fiber"
	"golang.org/x/sys/unix"
)

type actionKind int

const (
	actionRead actionKind = iota
	actionWrite
	actionOpenFile
	actionClose
	actionStat
	actionFstat
	actionFcntl
	actionIoctl
)

func (k actionKind) String() string {
	switch k {
	case actionRead:
		return "read"
	case actionWrite:
		return "write"
	case actionOpenFile:
		return "open"
	case actionClose:
		return "close"
	case actionStat:
		return "stat"
	case actionFstat:
		return "fstat"
	case actionFcntl:
		return "fcntl"
	case actionIoctl:
		return "ioctl"
	default:
		return "unknown"
	}
}

// action is stack-allocated by the submitting goroutine (component F) and
// only ever borrowed by the queue, a worker, and the response fiber; none
// of them retain it past the submitter's own wait. Storage in
// submissionQueue is an eapache/queue.Queue of *action rather than an
// intrusive list (see queue.go) so no link field lives on action itself.
type action struct {
	kind actionKind
	wait *fiber.Rendezvous

	// inputs — only the fields relevant to kind are populated.
	fd    int
	path  string
	flags int
	mode  uint32
	buf   []byte
	cmd   int
	arg   uintptr

	// outputs — written by dispatch() on a worker goroutine before the
	// record is handed back over the response channel.
	result  int
	errno   syscall.Errno
	statOut unix.Stat_t
}

func newAction(kind actionKind) *action {
	return &action{kind: kind, wait: fiber.NewRendezvous()}
}
