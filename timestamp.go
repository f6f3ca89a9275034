package cputimer

const nanosPerSecond = int64(1_000_000_000)

// TimeStamp is one reading of a Clock, split into seconds and nanoseconds like a timespec.
// The values aren't comparable between threads, processes or computers.
// They are only comparable to another TimeStamp read from the same Clock on the same OS thread.
type TimeStamp struct {
	Sec  int64
	Nsec int64
}

// FromNanos converts a nanosecond count into a normalized TimeStamp (0 <= Nsec < 1e9).
func FromNanos(n int64) TimeStamp {
	sec := n / nanosPerSecond
	nsec := n % nanosPerSecond
	if nsec < 0 {
		sec--
		nsec += nanosPerSecond
	}
	return TimeStamp{Sec: sec, Nsec: nsec}
}

// Nanos returns the TimeStamp as a single nanosecond count.
func (ts TimeStamp) Nanos() int64 {
	return ts.Sec*nanosPerSecond + ts.Nsec
}

// DiffTimeStamps returns the difference between two timestamps in nanoseconds.
// The function assumes that later was read after earlier and will return a negative value if this is not the case.
// The components are subtracted separately, so neither timestamp has to be normalized.
func DiffTimeStamps(earlier, later TimeStamp) int64 {
	return (later.Sec-earlier.Sec)*nanosPerSecond + (later.Nsec - earlier.Nsec)
}
