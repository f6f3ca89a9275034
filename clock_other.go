//go:build !linux && !darwin && !freebsd && !openbsd && !dragonfly && !solaris && !windows

package cputimer

import "time"

// No thread CPU-time clock is wired up on this platform. ThreadCPUClock substitutes the
// process monotonic clock, which also counts time the thread is not running.
const threadCPUSupported = false

var epoch = time.Now()

func readThreadCPU() (TimeStamp, error) {
	return FromNanos(time.Since(epoch).Nanoseconds()), nil
}
