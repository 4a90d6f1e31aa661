// Package fiber implements the minimal cooperative-scheduling primitives
// the blocking-I/O offload core is built on: a fiber abstraction backed by
// a goroutine, a single-shot rendezvous ("wait handle"), and fd-readiness
// parking tied to an epoll-backed reactor.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This package intentionally does not implement a general-purpose
// stackful-coroutine scheduler: full preemptive multiplexing of fibers
// onto OS threads is out of scope (see spec). A Fiber here is simply a
// goroutine whose lifecycle is driven entirely through Rendezvous parks
// and signals. Fibers are not confined to one OS thread: Go may run
// several of them at the same instant, so state they share (the offload
// core's active-I/O counter, FDState's mode) is guarded by atomics or a
// mutex rather than by a single-threaded discipline.
package fiber
