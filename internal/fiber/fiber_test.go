package fiber

import (
	"testing"
	"time"
)

func TestFiber_SuspendResume(t *testing.T) {
	resumed := make(chan struct{})
	var f *Fiber
	started := make(chan struct{})

	f = Go("test-fiber", func(self *Fiber) {
		close(started)
		self.Suspend()
		close(resumed)
	})
	_ = f

	<-started
	time.Sleep(10 * time.Millisecond)

	select {
	case <-resumed:
		t.Fatal("fiber resumed before Resume was called")
	default:
	}

	f.Resume()

	select {
	case <-resumed:
	case <-time.After(time.Second):
		t.Fatal("fiber never resumed")
	}
}

func TestFiber_SuspendResumeRepeatedly(t *testing.T) {
	const rounds = 5
	step := make(chan struct{})
	var f *Fiber

	f = Go("test-fiber-loop", func(self *Fiber) {
		for i := 0; i < rounds; i++ {
			self.Suspend()
			step <- struct{}{}
		}
	})

	for i := 0; i < rounds; i++ {
		f.Resume()
		select {
		case <-step:
		case <-time.After(time.Second):
			t.Fatalf("round %d: fiber never reported back after Resume", i)
		}
	}
}

func TestFiber_ResumeBeforeSuspendIsNotLost(t *testing.T) {
	resumed := make(chan struct{})
	done := make(chan struct{})
	f := Go("test-fiber-early-resume", func(self *Fiber) {
		<-resumed
		self.Suspend()
		close(done)
	})
	f.Resume()
	close(resumed)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Resume issued before Suspend was lost")
	}
}
