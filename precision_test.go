package cputimer

import (
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrecisionOfSteppingClock(t *testing.T) {
	n := int64(0)
	c := FuncClock(func() TimeStamp {
		n += 7
		return FromNanos(n)
	})
	assert.Equal(t, int64(7), Precision(c))
}

func TestPrecisionPicksSmallestPositiveStep(t *testing.T) {
	n := int64(0)
	calls := 0
	c := FuncClock(func() TimeStamp {
		calls++
		if calls%3 == 0 {
			n += 2
		} else {
			n += 50
		}
		return FromNanos(n)
	})
	assert.Equal(t, int64(2), Precision(c))
}

func TestPrecisionOfFrozenClock(t *testing.T) {
	assert.Equal(t, int64(-1), Precision(NewManualClock(TimeStamp{Sec: 1})))
}

func TestThreadCPUPrecision(t *testing.T) {
	prev := threadCPUPrecision
	defer func() { threadCPUPrecision = prev }()

	threadCPUPrecision = 0
	p1 := GetThreadCPUPrecision()
	p2 := GetThreadCPUPrecision()
	t.Logf("thread CPU clock precision: %d ns", p1)

	assert.Equal(t, p1, p2, "GetThreadCPUPrecision should return a cached value on subsequent calls")
	if runtime.GOOS == "windows" {
		return
	}
	assert.True(t, p1 >= 1, "precision returned too small value")
	assert.True(t, p1 < 1_000_000, "precision returned too large value")
}

func TestThreadCPUPrecisionRespectsCachedValue(t *testing.T) {
	prev := threadCPUPrecision
	defer func() { threadCPUPrecision = prev }()

	threadCPUPrecision = int64(123456)
	got := GetThreadCPUPrecision()
	assert.Equal(t, int64(123456), got, "GetThreadCPUPrecision should return the pre-set precision without recalculation")
}

func TestThreadCPUPrecisionConcurrentCallers(t *testing.T) {
	prev := threadCPUPrecision
	defer func() { threadCPUPrecision = prev }()

	threadCPUPrecision = 0
	const callers = 4
	results := make([]int64, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = GetThreadCPUPrecision()
		}()
	}
	wg.Wait()

	for i := 1; i < callers; i++ {
		assert.Equal(t, results[0], results[i], "all callers must see the one calibrated value")
	}
	assert.NotEqual(t, int64(0), results[0])
}
