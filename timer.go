// Package cputimer measures the CPU time consumed by the calling OS thread.
//
// A measurement is a pair of reads from a Clock: Mark (or Start) records where an
// interval begins, Measure (or Lap) reads the clock again, returns the elapsed nanoseconds
// and replaces the recorded reading, so back-to-back calls measure consecutive intervals.
package cputimer

// Timer measures intervals on a single Clock. A Timer holds no state besides its clock,
// all readings live in TimeStamps owned by the caller.
// A Timer may be shared between goroutines; a TimeStamp slot may not.
type Timer struct {
	clock Clock
}

// New returns a Timer reading c. A nil c selects ThreadCPUClock.
func New(c Clock) *Timer {
	if c == nil {
		c = ThreadCPUClock{}
	}
	return &Timer{clock: c}
}

var defaultTimer = New(nil)

// Default returns the Timer over the calling thread's CPU-time clock that the package-level functions use.
func Default() *Timer {
	return defaultTimer
}

// Clock returns the clock the Timer reads.
func (t *Timer) Clock() Clock {
	return t.clock
}

// Mark writes the current reading into slot, discarding whatever it held.
func (t *Timer) Mark(slot *TimeStamp) {
	*slot = t.clock.Now()
}

// Measure returns the nanoseconds elapsed since the reading held in slot and
// overwrites slot with the new reading. The slot is always overwritten, so the
// start of the measured interval is lost; use a Stopwatch to keep a running total.
func (t *Timer) Measure(slot *TimeStamp) int64 {
	now := t.clock.Now()
	elapsed := DiffTimeStamps(*slot, now)
	*slot = now
	return elapsed
}

// Start returns the current reading.
func (t *Timer) Start() TimeStamp {
	return t.clock.Now()
}

// Lap reads the clock and returns the new reading together with the nanoseconds elapsed since prev.
// Pass next to the following Lap to chain measurements.
func (t *Timer) Lap(prev TimeStamp) (next TimeStamp, elapsed int64) {
	next = t.clock.Now()
	return next, DiffTimeStamps(prev, next)
}

// Mark writes the calling thread's current CPU time into slot.
func Mark(slot *TimeStamp) {
	defaultTimer.Mark(slot)
}

// Measure returns the thread CPU nanoseconds since the reading in slot and overwrites slot.
func Measure(slot *TimeStamp) int64 {
	return defaultTimer.Measure(slot)
}

// Start returns the calling thread's current CPU time.
func Start() TimeStamp {
	return defaultTimer.Start()
}

// Lap returns the calling thread's current CPU time and the nanoseconds elapsed since prev.
func Lap(prev TimeStamp) (next TimeStamp, elapsed int64) {
	return defaultTimer.Lap(prev)
}
