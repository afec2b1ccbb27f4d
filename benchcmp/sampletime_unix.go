//go:build linux || darwin || freebsd || netbsd || openbsd

package benchcmp

import "golang.org/x/sys/unix"

// SampleTime reads CLOCK_MONOTONIC, which is unaffected by wall clock adjustments.
func SampleTime() TimeStamp {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		panic(err)
	}
	return ts.Nano()
}

// DiffTimeStamps returns t_later - t_earlier in nanoseconds. The result is negative if
// t_later is not later than t_earlier.
func DiffTimeStamps(t_earlier, t_later TimeStamp) int64 {
	return t_later - t_earlier
}
