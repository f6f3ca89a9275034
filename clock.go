package cputimer

import (
	"runtime"
	"sync"
)

// Clock is a source of TimeStamps. Timer reads all of its time through a Clock,
// so tests can substitute a ManualClock for the thread CPU-time clock.
type Clock interface {
	Now() TimeStamp
}

// ThreadCPUClock reads the CPU time consumed by the calling OS thread.
// Time the thread spends blocked, sleeping or descheduled is not counted, and neither is
// CPU time of any other thread.
//
// The Go scheduler may move a goroutine to another OS thread between two reads.
// Pin the goroutine with LockThread (or runtime.LockOSThread) for as long as a
// measured interval lasts, otherwise the delta mixes up the counters of two threads.
//
// Now panics if the platform clock can't be read. Use ReadThreadCPU to get an error instead.
type ThreadCPUClock struct{}

func (ThreadCPUClock) Now() TimeStamp {
	ts, err := ReadThreadCPU()
	if err != nil {
		panic(err)
	}
	return ts
}

// ReadThreadCPU returns the CPU time consumed by the calling OS thread so far.
func ReadThreadCPU() (TimeStamp, error) {
	return readThreadCPU()
}

// ThreadCPUSupported reports whether ThreadCPUClock reads a real per-thread CPU clock on this platform.
// If it returns false, ThreadCPUClock falls back to the process monotonic clock.
func ThreadCPUSupported() bool {
	return threadCPUSupported
}

// LockThread wires the calling goroutine to its current OS thread and returns the matching unlock function.
//
//	unlock := cputimer.LockThread()
//	defer unlock()
func LockThread() (unlock func()) {
	runtime.LockOSThread()
	return runtime.UnlockOSThread
}

// FuncClock adapts a plain function to the Clock interface.
type FuncClock func() TimeStamp

func (f FuncClock) Now() TimeStamp {
	return f()
}

// ManualClock is a Clock that only moves when told to. It is safe for concurrent use.
type ManualClock struct {
	mu  sync.Mutex
	now TimeStamp
}

// NewManualClock returns a ManualClock standing at start.
func NewManualClock(start TimeStamp) *ManualClock {
	return &ManualClock{now: start}
}

func (m *ManualClock) Now() TimeStamp {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by ns nanoseconds (backwards for negative ns).
func (m *ManualClock) Advance(ns int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = FromNanos(m.now.Nanos() + ns)
}

// Set moves the clock to ts, which may lie in the past.
func (m *ManualClock) Set(ts TimeStamp) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = ts
}
