package cputimer

// Stopwatch keeps the start of a measurement next to the last lap, so laps can be
// taken without losing the cumulative total. It is not safe for concurrent use.
type Stopwatch struct {
	timer  *Timer
	origin TimeStamp
	last   TimeStamp
}

// NewStopwatch returns a running Stopwatch on t. A nil t selects Default().
func NewStopwatch(t *Timer) *Stopwatch {
	if t == nil {
		t = defaultTimer
	}
	sw := &Stopwatch{timer: t}
	sw.Reset()
	return sw
}

// Reset restarts both the total and the current lap.
func (sw *Stopwatch) Reset() {
	sw.timer.Mark(&sw.origin)
	sw.last = sw.origin
}

// Lap returns the nanoseconds since the previous lap (or Reset) and starts a new lap.
func (sw *Stopwatch) Lap() int64 {
	return sw.timer.Measure(&sw.last)
}

// Total returns the nanoseconds since the last Reset. It does not start a new lap.
func (sw *Stopwatch) Total() int64 {
	return DiffTimeStamps(sw.origin, sw.timer.Start())
}
