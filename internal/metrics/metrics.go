// Package metrics holds the lightweight in-process counters the sync
// pipeline reports. There is no exporter; counters are read through
// snapshots and surfaced in logs.
package metrics

import (
	"sync/atomic"
	"time"
)

// Counter is a goroutine-safe monotonically increasing counter.
type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

// Timer measures elapsed wall time for a single operation.
type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}
