//go:build !windows

package ioloop

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSubmissionQueue_FIFO(t *testing.T) {
	sq := newSubmissionQueue()
	for i := 0; i < 5; i++ {
		act := newAction(actionRead)
		act.fd = i
		sq.push(act)
	}
	for i := 0; i < 5; i++ {
		act := sq.popBlocking()
		if act.fd != i {
			t.Fatalf("expected fd %d, got %d", i, act.fd)
		}
	}
}

func TestSubmissionQueue_MPMC(t *testing.T) {
	sq := newSubmissionQueue()
	producers := 8
	consumers := 8
	itemsPerProducer := 2000
	total := int64(producers * itemsPerProducer)

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < itemsPerProducer; i++ {
				sq.push(newAction(actionRead))
			}
		}()
	}

	var received int64
	consumerWG := sync.WaitGroup{}
	for c := 0; c < consumers; c++ {
		consumerWG.Add(1)
		go func() {
			defer consumerWG.Done()
			for {
				if atomic.LoadInt64(&received) >= total {
					return
				}
				if sq.popBlocking() == nil {
					return
				}
				if atomic.AddInt64(&received, 1) == total {
					sq.broadcastWake()
					return
				}
			}
		}()
	}

	wg.Wait()

	done := make(chan struct{})
	go func() {
		consumerWG.Wait()
		close(done)
	}()

	select {
	case <-done:
		if received != total {
			t.Fatalf("expected %d items received, got %d", total, received)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for consumers, received %d/%d", atomic.LoadInt64(&received), total)
	}
}

func TestSubmissionQueue_PushWakesOneWaiterAtATime(t *testing.T) {
	sq := newSubmissionQueue()
	const waiters = 4
	returned := make(chan struct{}, waiters)

	for i := 0; i < waiters; i++ {
		go func() {
			sq.popBlocking()
			returned <- struct{}{}
		}()
	}

	time.Sleep(20 * time.Millisecond)
	for i := 0; i < waiters; i++ {
		sq.push(newAction(actionRead))
		select {
		case <-returned:
		case <-time.After(time.Second):
			t.Fatalf("waiter %d never returned", i)
		}
		select {
		case <-returned:
			t.Fatalf("push %d released more than one waiter", i)
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestSubmissionQueue_BroadcastWakeRetiresIdleWaiters(t *testing.T) {
	sq := newSubmissionQueue()
	const waiters = 4
	returned := make(chan *action, waiters)

	for i := 0; i < waiters; i++ {
		go func() {
			returned <- sq.popBlocking()
		}()
	}

	time.Sleep(20 * time.Millisecond)
	sq.broadcastWake()

	for i := 0; i < waiters; i++ {
		select {
		case act := <-returned:
			if act != nil {
				t.Fatalf("expected nil from a closed, empty queue, got %v", act)
			}
		case <-time.After(time.Second):
			t.Fatalf("waiter %d never retired after broadcastWake", i)
		}
	}
}
