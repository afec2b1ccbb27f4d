//go:build !windows && !linux && !darwin && !freebsd && !netbsd && !openbsd

package benchcmp

import "time"

var epoch = time.Now()

// SampleTime returns the monotonic time elapsed since package initialization in nanoseconds.
func SampleTime() TimeStamp {
	return int64(time.Since(epoch))
}

// DiffTimeStamps returns t_later - t_earlier in nanoseconds.
func DiffTimeStamps(t_earlier, t_later TimeStamp) int64 {
	return t_later - t_earlier
}
