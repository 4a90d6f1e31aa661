// File: internal/ioloop/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Error taxonomy for the offload core, matching spec §7: syscall errors
// are ordinary return values (see action.errno); the errors below are the
// handful of internal-failure classes the spec calls out by name.

package ioloop

import "errors"

var (
	// errShortWrite marks a response-channel write that did not cover a
	// full machine word. Spec §7 treats this as a bug-class event: logged
	// loudly, never silently retried.
	errShortWrite = errors.New("ioloop: short write on response channel")

	// errEOF marks a read of zero bytes from the response channel. Spec
	// treats EOF on this socket as "highly improbable" and fatal.
	errEOF = errors.New("ioloop: unexpected EOF on response channel")

	// ErrExecutorClosed is returned by submit, and therefore by every
	// Context method in ops.go, once Close has torn down the Context.
	// Checked before an action is ever queued, so a call arriving after
	// Close fails fast instead of parking forever on a wait handle no
	// worker will ever resume.
	ErrExecutorClosed = errors.New("ioloop: runtime is closed")
)
