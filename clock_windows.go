//go:build windows

package cputimer

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const threadCPUSupported = true

var (
	modkernel32       = windows.NewLazySystemDLL("kernel32.dll")
	procGetThreadTime = modkernel32.NewProc("GetThreadTimes")
)

// filetimeTicks returns the 100ns tick count held by a FILETIME duration.
func filetimeTicks(ft windows.Filetime) int64 {
	return int64(ft.HighDateTime)<<32 | int64(ft.LowDateTime)
}

// readThreadCPU sums kernel and user time of the current thread.
// GetThreadTimes reports in 100ns ticks, so that is the best possible precision on Windows.
func readThreadCPU() (TimeStamp, error) {
	var creation, exit, kernel, user windows.Filetime
	r1, _, err := procGetThreadTime.Call(
		uintptr(windows.CurrentThread()),
		uintptr(unsafe.Pointer(&creation)),
		uintptr(unsafe.Pointer(&exit)),
		uintptr(unsafe.Pointer(&kernel)),
		uintptr(unsafe.Pointer(&user)),
	)
	if r1 == 0 {
		return TimeStamp{}, fmt.Errorf("GetThreadTimes call failed: %w", err)
	}
	return FromNanos((filetimeTicks(kernel) + filetimeTicks(user)) * 100), nil
}
