package cputimer

import (
	"math"
	"sync"
)

const iterationsForCalibration = 100_000

var (
	precisionMu sync.Mutex
	// threadCPUPrecision holds the precision of ThreadCPUClock on the runtime system in nanoseconds.
	// Zero means not calibrated yet; Precision never returns zero.
	threadCPUPrecision = int64(0)
)

// Returns the precision of ThreadCPUClock readings on the runtime system in nanoseconds.
// The value is computed on the first call and cached afterwards. The calling goroutine is
// pinned to its thread while calibrating. Concurrent callers wait for a single calibration.
// Typically a few hundred nanoseconds on Linux, and a whole scheduler tick on Windows.
func GetThreadCPUPrecision() int64 {
	precisionMu.Lock()
	defer precisionMu.Unlock()
	if threadCPUPrecision == 0 {
		unlock := LockThread()
		threadCPUPrecision = Precision(ThreadCPUClock{})
		unlock()
	}
	return threadCPUPrecision
}

// Precision returns the smallest positive difference between two back-to-back reads of c,
// in nanoseconds. It returns -1 if c never advanced during calibration.
func Precision(c Clock) int64 {
	var minDiff = int64(math.MaxInt64) // initial large value
	for range iterationsForCalibration {
		t1 := c.Now()
		t2 := c.Now()
		diff := DiffTimeStamps(t1, t2)
		if diff > 0 && diff < minDiff {
			minDiff = diff
		}
	}
	if minDiff == math.MaxInt64 {
		return -1
	}
	return minDiff
}
