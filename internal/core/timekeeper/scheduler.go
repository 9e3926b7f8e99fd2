package timekeeper

import (
	"sync"
	"time"
)

// Handle is a cancellable scheduled task.
type Handle interface {
	Stop()
}

// Scheduler creates tick sources and delayed callbacks.
// Tests replace it to drive the engine deterministically.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Handle
	After(delay time.Duration, fn func()) Handle
}

// RealTime is the Scheduler backed by time.Ticker and time.AfterFunc.
var RealTime Scheduler = realTimeScheduler{}

type realTimeScheduler struct{}

func (realTimeScheduler) Every(interval time.Duration, fn func()) Handle {
	handle := &tickerHandle{stopCh: make(chan struct{})}
	go handle.run(interval, fn)
	return handle
}

func (realTimeScheduler) After(delay time.Duration, fn func()) Handle {
	return timerHandle{timer: time.AfterFunc(delay, fn)}
}

type tickerHandle struct {
	stopCh chan struct{}
	once   sync.Once
}

func (handle *tickerHandle) run(interval time.Duration, fn func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-handle.stopCh:
			return
		case <-ticker.C:
			fn()
		}
	}
}

func (handle *tickerHandle) Stop() {
	handle.once.Do(func() {
		close(handle.stopCh)
	})
}

type timerHandle struct {
	timer *time.Timer
}

func (handle timerHandle) Stop() {
	handle.timer.Stop()
}
