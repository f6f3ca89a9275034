//go:build linux || darwin || freebsd || openbsd || dragonfly || solaris

package cputimer

import (
	"fmt"

	"golang.org/x/sys/unix"
)

const threadCPUSupported = true

func readThreadCPU() (TimeStamp, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_THREAD_CPUTIME_ID, &ts); err != nil {
		return TimeStamp{}, fmt.Errorf("clock_gettime(CLOCK_THREAD_CPUTIME_ID): %w", err)
	}
	return TimeStamp{Sec: int64(ts.Sec), Nsec: int64(ts.Nsec)}, nil
}
