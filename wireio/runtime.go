// File: wireio/runtime.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package wireio is the public face of the blocking-I/O offload core: a
// fixed worker pool that runs POSIX calls a cooperative fiber scheduler
// would otherwise have to block on, reporting completions back through a
// dedicated response fiber. Init replaces the reference runtime's bare
// init(n_workers); Runtime is deliberately constructible rather than a
// hard process singleton (see DESIGN.md Open Questions), though a
// package-level default instance is still provided for callers that want
// the original's "just call wireio.Read(...)" ergonomics.

package wireio

import (
	"sync"

	"github.com/momentics/wireio/internal/ioloop"
	"github.com/momentics/wireio/internal/obslog"
	"golang.org/x/sys/unix"
)

// Runtime owns one offload core instance: its submission queue, worker
// pool, response channel and response fiber.
type Runtime struct {
	ctx *ioloop.Context
}

// ErrClosed is returned by any Runtime method called after Close: the
// Context checks this before queuing an action, so a call racing Close
// fails fast instead of parking its caller on a wait handle no worker will
// ever resume.
var ErrClosed = ioloop.ErrExecutorClosed

// Init builds and starts a new Runtime. Mirrors wire_io_init from the
// reference source, generalized into functional options.
func Init(opts ...Option) (*Runtime, error) {
	cfg := &config{}
	for _, o := range opts {
		o(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = obslog.New()
	}

	ctx, err := ioloop.New(ioloop.Options{
		NumWorkers:        cfg.numWorkers,
		Logger:            cfg.logger,
		ResponseBatchSize: cfg.responseBatchSize,
		PinWorkers:        cfg.pinWorkers,
	})
	if err != nil {
		return nil, err
	}
	return &Runtime{ctx: ctx}, nil
}

// Close tears down the worker pool. See ioloop.Context.Close: the
// response fiber's own shutdown path is intentionally unreachable (spec
// treats it as out of scope), so this only stops what can be stopped
// safely between test cases.
func (r *Runtime) Close() {
	r.ctx.Close()
}

// NumActiveIOs returns the count of submitted-but-incomplete offloaded
// calls.
func (r *Runtime) NumActiveIOs() int64 {
	return r.ctx.NumActiveIOs()
}

// Metrics exposes the runtime's counters for observability.
func (r *Runtime) Metrics() *ioloop.Metrics {
	return r.ctx.Metrics()
}

// Read offloads a blocking read(2).
func (r *Runtime) Read(fd int, buf []byte) (int, error) {
	return r.ctx.Read(fd, buf)
}

// Write offloads a blocking write(2).
func (r *Runtime) Write(fd int, buf []byte) (int, error) {
	return r.ctx.Write(fd, buf)
}

// Open offloads a blocking open(2) with the implicit mode POSIX allows
// when flags does not include O_CREAT/O_TMPFILE — the variadic form
// named in spec.md §4.G. It decomposes to OpenFile with mode 0.
func (r *Runtime) Open(path string, flags int) (int, error) {
	return r.ctx.OpenFile(path, flags, 0)
}

// OpenFile offloads a blocking open(2), explicitly passing mode. This is
// the non-variadic decomposition spec.md's DESIGN NOTES call for: callers
// that need O_CREAT's mode argument use this instead of Open.
func (r *Runtime) OpenFile(path string, flags int, mode uint32) (int, error) {
	return r.ctx.OpenFile(path, flags, mode)
}

// CloseFD offloads a blocking close(2). Named distinctly from Close
// (which tears down the runtime itself) to avoid a confusing overload.
func (r *Runtime) CloseFD(fd int) error {
	return r.ctx.CloseFD(fd)
}

// Stat offloads a blocking stat(2).
func (r *Runtime) Stat(path string) (unix.Stat_t, error) {
	return r.ctx.Stat(path)
}

// Fstat offloads a blocking fstat(2).
func (r *Runtime) Fstat(fd int) (unix.Stat_t, error) {
	return r.ctx.Fstat(fd)
}

// Fcntl offloads a blocking fcntl(2), non-variadic int-argument form.
func (r *Runtime) Fcntl(fd int, cmd int, arg int) (int, error) {
	return r.ctx.Fcntl(fd, cmd, arg)
}

// Ioctl offloads a blocking ioctl(2). Always returns the inner syscall
// result (see DESIGN.md's resolution of spec.md §9's open question).
func (r *Runtime) Ioctl(fd int, cmd int, arg uintptr) (int, error) {
	return r.ctx.Ioctl(fd, cmd, arg)
}

var (
	defaultOnce sync.Once
	defaultRT   *Runtime
	defaultErr  error
)

// Default lazily builds the package-level Runtime the top-level
// convenience functions below use, matching the reference source's
// implicit process-wide state. It is built once: repeated calls return
// the same *Runtime (or the same error, if that first Init failed).
func Default() (*Runtime, error) {
	defaultOnce.Do(func() {
		defaultRT, defaultErr = Init()
	})
	return defaultRT, defaultErr
}

// Read offloads a blocking read(2) on the default Runtime.
func Read(fd int, buf []byte) (int, error) {
	rt, err := Default()
	if err != nil {
		return -1, err
	}
	return rt.Read(fd, buf)
}

// Write offloads a blocking write(2) on the default Runtime.
func Write(fd int, buf []byte) (int, error) {
	rt, err := Default()
	if err != nil {
		return -1, err
	}
	return rt.Write(fd, buf)
}

// Open offloads a blocking open(2) on the default Runtime.
func Open(path string, flags int) (int, error) {
	rt, err := Default()
	if err != nil {
		return -1, err
	}
	return rt.Open(path, flags)
}

// OpenFile offloads a blocking open(2) with an explicit mode on the
// default Runtime.
func OpenFile(path string, flags int, mode uint32) (int, error) {
	rt, err := Default()
	if err != nil {
		return -1, err
	}
	return rt.OpenFile(path, flags, mode)
}

// Close offloads a blocking close(2) on the default Runtime.
func Close(fd int) error {
	rt, err := Default()
	if err != nil {
		return err
	}
	return rt.CloseFD(fd)
}

// Stat offloads a blocking stat(2) on the default Runtime.
func Stat(path string) (unix.Stat_t, error) {
	rt, err := Default()
	if err != nil {
		return unix.Stat_t{}, err
	}
	return rt.Stat(path)
}

// Fstat offloads a blocking fstat(2) on the default Runtime.
func Fstat(fd int) (unix.Stat_t, error) {
	rt, err := Default()
	if err != nil {
		return unix.Stat_t{}, err
	}
	return rt.Fstat(fd)
}

// Fcntl offloads a blocking fcntl(2) on the default Runtime.
func Fcntl(fd int, cmd int, arg int) (int, error) {
	rt, err := Default()
	if err != nil {
		return -1, err
	}
	return rt.Fcntl(fd, cmd, arg)
}

// Ioctl offloads a blocking ioctl(2) on the default Runtime.
func Ioctl(fd int, cmd int, arg uintptr) (int, error) {
	rt, err := Default()
	if err != nil {
		return -1, err
	}
	return rt.Ioctl(fd, cmd, arg)
}
