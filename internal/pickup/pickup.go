// Package pickup derives the projected ready time for an order.
package pickup

import "time"

const (
	prepTime    = 10 * time.Minute
	roundingGap = 5 // minutes
)

// Estimate returns the projected pickup time: order time plus ten
// minutes, with the minute rounded up to the next multiple of five.
// A minute already on a multiple stays put. Seconds and sub-second
// fields are zeroed; the location is preserved.
func Estimate(orderedAt time.Time) time.Time {
	t := orderedAt.Add(prepTime)

	if rem := t.Minute() % roundingGap; rem != 0 {
		t = t.Add(time.Duration(roundingGap-rem) * time.Minute)
	}

	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
}

// Clock renders a time as the wall-clock string shown to customers.
func Clock(t time.Time) string {
	return t.Format("15:04")
}

// Stamp renders a time in a fixed timezone for the operational record
// (the spreadsheet row). The café runs on Japan time by default.
func Stamp(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006/01/02 15:04")
}
