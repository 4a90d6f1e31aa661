//go:build !windows

package wireio_test

import (
	"os"
	"sync"
	"testing"
	"time"

	"github.com/momentics/wireio/wireio"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func newTestRuntime(t *testing.T) *wireio.Runtime {
	t.Helper()
	rt, err := wireio.Init(wireio.WithWorkers(4))
	require.NoError(t, err)
	t.Cleanup(rt.Close)
	return rt
}

// Scenario 1: single read returns the expected bytes and leaves the
// counter at zero.
func TestRuntime_SingleRead(t *testing.T) {
	rt := newTestRuntime(t)

	f, err := os.CreateTemp(t.TempDir(), "wireio-read-*")
	require.NoError(t, err)
	_, err = f.WriteString("ABCDEFGHIJ")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	fd, err := rt.Open(f.Name(), os.O_RDONLY)
	require.NoError(t, err)
	defer rt.CloseFD(fd)

	buf := make([]byte, 10)
	n, err := rt.Read(fd, buf)
	require.NoError(t, err)
	require.Equal(t, 10, n)
	require.Equal(t, "ABCDEFGHIJ", string(buf))

	require.Eventually(t, func() bool { return rt.NumActiveIOs() == 0 }, time.Second, time.Millisecond)
}

// Scenario 2: concurrent submissions from many goroutines all succeed and
// the counter returns to zero.
func TestRuntime_ConcurrentOpens(t *testing.T) {
	rt := newTestRuntime(t)

	const n = 100
	var wg sync.WaitGroup
	errs := make([]error, n)
	fds := make([]int, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			fds[i], errs[i] = rt.Open("/dev/null", os.O_RDONLY)
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		require.GreaterOrEqual(t, fds[i], 0)
	}
	for i := 0; i < n; i++ {
		require.NoError(t, rt.CloseFD(fds[i]))
	}

	require.Eventually(t, func() bool { return rt.NumActiveIOs() == 0 }, time.Second, time.Millisecond)
}

// Scenario 3: idle -> busy -> idle. A single stat after quiescence still
// completes correctly; this exercises the response fiber's resume-from-
// FullySuspended path.
func TestRuntime_IdleThenSingleStat(t *testing.T) {
	rt := newTestRuntime(t)

	require.Eventually(t, func() bool { return rt.NumActiveIOs() == 0 }, time.Second, time.Millisecond)

	st, err := rt.Stat("/")
	require.NoError(t, err)
	require.NotZero(t, st.Mode)

	require.Eventually(t, func() bool { return rt.NumActiveIOs() == 0 }, time.Second, time.Millisecond)
}

// Scenario 4: interleaved bursts across a pipe, one fiber-equivalent
// goroutine reading while another writes, no deadlock, all complete.
func TestRuntime_InterleavedPipeBursts(t *testing.T) {
	rt := newTestRuntime(t)

	fds := make([]int, 2)
	require.NoError(t, unix.Pipe(fds))
	readFD, writeFD := fds[0], fds[1]
	defer unix.Close(readFD)
	defer unix.Close(writeFD)

	const n = 200
	var wg sync.WaitGroup
	wg.Add(2)

	var writeErrs, readErrs int
	var mu sync.Mutex

	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			_, err := rt.Write(writeFD, []byte{byte(i)})
			if err != nil {
				mu.Lock()
				writeErrs++
				mu.Unlock()
			}
		}
	}()

	go func() {
		defer wg.Done()
		buf := make([]byte, 1)
		for i := 0; i < n; i++ {
			_, err := rt.Read(readFD, buf)
			if err != nil {
				mu.Lock()
				readErrs++
				mu.Unlock()
			}
		}
	}()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("interleaved read/write burst deadlocked")
	}

	require.Zero(t, writeErrs)
	require.Zero(t, readErrs)
	require.Eventually(t, func() bool { return rt.NumActiveIOs() == 0 }, time.Second, time.Millisecond)
}

// Scenario 5: syscall error propagation matches a direct call.
func TestRuntime_OpenNonexistentPropagatesENOENT(t *testing.T) {
	rt := newTestRuntime(t)

	fd, err := rt.Open("/nonexistent-wireio-path", os.O_RDONLY)
	require.Error(t, err)
	require.Equal(t, -1, fd)
	require.ErrorIs(t, err, unix.ENOENT)
}

// A call submitted after Close has returned fails fast with ErrClosed
// instead of parking its caller forever.
func TestRuntime_CallAfterCloseReturnsErrClosed(t *testing.T) {
	rt, err := wireio.Init(wireio.WithWorkers(2))
	require.NoError(t, err)
	rt.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := rt.Open("/dev/null", os.O_RDONLY)
		require.ErrorIs(t, err, wireio.ErrClosed)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("call after Close did not return, caller is stuck parked")
	}
}

// WithWorkerAffinity asks each worker to pin itself to a distinct CPU
// (best-effort: a failed pin is only logged) and the runtime still
// completes offloaded calls correctly.
func TestRuntime_WithWorkerAffinity(t *testing.T) {
	rt, err := wireio.Init(wireio.WithWorkers(4), wireio.WithWorkerAffinity())
	require.NoError(t, err)
	t.Cleanup(rt.Close)

	st, err := rt.Stat("/")
	require.NoError(t, err)
	require.NotZero(t, st.Mode)

	require.Eventually(t, func() bool { return rt.NumActiveIOs() == 0 }, time.Second, time.Millisecond)
}

// Scenario 6: the non-variadic OpenFile passes O_CREATE's mode through.
func TestRuntime_OpenFileWithModeIsNonVariadic(t *testing.T) {
	rt := newTestRuntime(t)
	path := t.TempDir() + "/wireio-create-test"

	fd, err := rt.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	require.NoError(t, rt.CloseFD(fd))

	st, err := rt.Stat(path)
	require.NoError(t, err)
	require.Equal(t, uint32(0o644), uint32(st.Mode&0o777))
}
