//go:build windows

package benchcmp

import (
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")
	procFreq    = modkernel32.NewProc("QueryPerformanceFrequency")
	procCounter = modkernel32.NewProc("QueryPerformanceCounter")

	qpcFrequency = getFrequency()
)

// getFrequency returns the QueryPerformanceCounter frequency in ticks per second.
func getFrequency() int64 {
	var freq int64
	r1, _, err := procFreq.Call(uintptr(unsafe.Pointer(&freq)))
	if r1 == 0 {
		panic(errors.Wrap(err, "QueryPerformanceFrequency"))
	}
	return freq
}

// SampleTime reads the QueryPerformanceCounter.
func SampleTime() TimeStamp {
	var qpc int64
	procCounter.Call(uintptr(unsafe.Pointer(&qpc)))
	return qpc
}

// DiffTimeStamps converts the tick difference t_later - t_earlier to nanoseconds. It has a
// constant runtime but contains an integer division.
func DiffTimeStamps(t_earlier, t_later TimeStamp) int64 {
	result := t_later - t_earlier
	result *= int64(1_000_000_000) // ns per sec
	result /= qpcFrequency
	return result
}
