package pickup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min, sec int) time.Time {
	return time.Date(2025, time.March, 3, hour, min, sec, 0, time.UTC)
}

func TestEstimate(t *testing.T) {
	t.Run("Rounds up to next five minutes", func(t *testing.T) {
		// 10:12 + 10m = 10:22 → 10:25
		assert.Equal(t, at(10, 25, 0), Estimate(at(10, 12, 0)))
	})

	t.Run("Exact multiple stays put", func(t *testing.T) {
		// 10:10 + 10m = 10:20 → 10:20
		assert.Equal(t, at(10, 20, 0), Estimate(at(10, 10, 0)))
	})

	t.Run("Wraps the hour", func(t *testing.T) {
		// 10:50 + 10m = 11:00 → 11:00
		assert.Equal(t, at(11, 0, 0), Estimate(at(10, 50, 0)))
	})

	t.Run("Seconds are zeroed", func(t *testing.T) {
		got := Estimate(at(10, 12, 42))
		assert.Zero(t, got.Second())
		assert.Zero(t, got.Nanosecond())
		assert.Equal(t, at(10, 25, 0), got)
	})

	t.Run("Wraps midnight", func(t *testing.T) {
		got := Estimate(at(23, 56, 0))
		assert.Equal(t, 0, got.Hour())
		assert.Equal(t, 10, got.Minute())
		assert.Equal(t, 4, got.Day())
	})

	t.Run("Preserves location", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		in := time.Date(2025, time.March, 3, 10, 12, 0, 0, tokyo)

		got := Estimate(in)
		assert.Equal(t, tokyo, got.Location())
		assert.Equal(t, 25, got.Minute())
	})
}

func TestClock(t *testing.T) {
	assert.Equal(t, "10:25", Clock(at(10, 25, 0)))
	assert.Equal(t, "09:05", Clock(at(9, 5, 0)))
}

func TestStamp(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	// 01:30 UTC renders as 10:30 in Japan.
	assert.Equal(t, "2025/03/03 10:30", Stamp(at(1, 30, 0), jst))
}
