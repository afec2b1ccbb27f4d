package benchcmp

import (
	"math"
	"sync"
)

// TimeStamp is a relative point in time in platform ticks, taken with the highest precision
// available on the runtime system. Values are only comparable between two calls to
// SampleTime within the same process; use DiffTimeStamps to convert to nanoseconds.
type TimeStamp = int64

const calibrationRounds = 10_000_000

var (
	precisionOnce sync.Once
	// precision of SampleTime on this system in nanoseconds, -1 until calibrated
	precision = int64(-1)
)

// GetSampleTimePrecision returns the smallest positive difference between two consecutive
// SampleTime calls in nanoseconds. The first call calibrates, later calls return the cached
// value. Expect 100ns on Windows and about 20ns to 100ns on Linux and macOS.
func GetSampleTimePrecision() int64 {
	precisionOnce.Do(func() {
		if precision == -1 {
			precision = calcMinTimeSample()
		}
	})
	return precision
}

func calcMinTimeSample() int64 {
	minDiff := int64(math.MaxInt64)
	for range calibrationRounds {
		t1 := SampleTime()
		t2 := SampleTime()
		if diff := DiffTimeStamps(t1, t2); diff > 0 && diff < minDiff {
			minDiff = diff
		}
	}
	return minDiff
}
