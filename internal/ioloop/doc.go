// Package ioloop implements the blocking-I/O offload core: a submission
// queue, a fixed worker pool, and a dedicated response fiber that hands
// completed syscalls back to whichever fiber submitted them. It targets
// the POSIX file/socket surface the reference C runtime targets (built
// around an AF_UNIX/SOCK_STREAM response channel), so the package is
// POSIX-only — there is no Windows build of it, matching the reference
// source's own socketpair-based design rather than papering over the
// gap with a non-functional stub.
package ioloop
