//go:build linux

// File: internal/fiber/poller_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Epoll-backed readiness engine, adapted from the teacher's
// reactor/epoll_reactor.go and core/concurrency/poller_linux.go: a single
// epoll instance shared by every FDState, drained by one background
// goroutine that signals the matching Rendezvous on readiness.

package fiber

import (
	"sync"

	"golang.org/x/sys/unix"
)

type poller struct {
	mu     sync.Mutex
	epfd   int
	states map[int]*FDState
}

var (
	globalPollerOnce sync.Once
	globalPoller     *poller
)

func defaultPoller() *poller {
	globalPollerOnce.Do(func() {
		epfd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
		if err != nil {
			// The readiness engine is load-bearing for every offloaded
			// call; without it the response fiber can never be woken by
			// fd readiness. There is no safe degraded mode.
			panic("fiber: epoll_create1 failed: " + err.Error())
		}
		p := &poller{epfd: epfd, states: make(map[int]*FDState)}
		go p.run()
		globalPoller = p
	})
	return globalPoller
}

func (p *poller) register(s *FDState) {
	p.mu.Lock()
	_, exists := p.states[s.fd]
	p.states[s.fd] = s
	p.mu.Unlock()

	ev := unix.EpollEvent{Events: unix.EPOLLIN, Fd: int32(s.fd)}
	op := unix.EPOLL_CTL_ADD
	if exists {
		op = unix.EPOLL_CTL_MOD
	}
	_ = unix.EpollCtl(p.epfd, op, s.fd, &ev)
}

func (p *poller) unregister(s *FDState) {
	p.mu.Lock()
	delete(p.states, s.fd)
	p.mu.Unlock()
	_ = unix.EpollCtl(p.epfd, unix.EPOLL_CTL_DEL, s.fd, nil)
}

func (p *poller) run() {
	events := make([]unix.EpollEvent, 64)
	for {
		n, err := unix.EpollWait(p.epfd, events, -1)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			// Fatal: the readiness engine has no recovery path, same as
			// the response channel's read-error handling in the offload
			// core (spec §7).
			panic("fiber: epoll_wait failed: " + err.Error())
		}
		for i := 0; i < n; i++ {
			fd := int(events[i].Fd)
			p.mu.Lock()
			s, ok := p.states[fd]
			p.mu.Unlock()
			if ok {
				s.wait.Signal()
			}
		}
	}
}
