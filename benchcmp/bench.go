package benchcmp

import "runtime"

// MeasureDrawTimes runs draw innerLoops times per repeat and returns the mean time per call in
// nanoseconds for every repeat. The garbage collector runs before each repeat so that its
// pauses do not land inside a measurement.
func MeasureDrawTimes(draw func(), repeats, innerLoops int) []float64 {
	times := make([]float64, 0, repeats)
	if innerLoops <= 0 {
		return times
	}
	for range repeats {
		runtime.GC()
		t1 := SampleTime()
		for range innerLoops {
			draw()
		}
		t2 := SampleTime()
		times = append(times, float64(DiffTimeStamps(t1, t2))/float64(innerLoops))
	}
	return times
}

// MeasureAlternating measures a and b in alternating repeats, so drifts of the machine's clock
// or load hit both samples alike.
func MeasureAlternating(a, b func(), repeats, innerLoops int) (timesA, timesB []float64) {
	timesA = make([]float64, 0, repeats)
	timesB = make([]float64, 0, repeats)
	for range repeats {
		timesA = append(timesA, MeasureDrawTimes(a, 1, innerLoops)...)
		timesB = append(timesB, MeasureDrawTimes(b, 1, innerLoops)...)
	}
	return timesA, timesB
}
