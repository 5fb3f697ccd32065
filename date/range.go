package date

import (
	"fmt"
	"iter"
	"time"
)

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// MonthOf returns the range covering the whole month containing d.
func MonthOf(d Date) Range {
	return Range{From: d.StartOfMonth(), To: d.EndOfMonth()}
}

// Contains return true date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return (!date.Before(r.From) && !date.After(r.To)) }

// IsValid reports whether the range boundaries are ordered.
func (r Range) IsValid() bool { return !r.From.After(r.To) }

// Days returns the number of calendar days in the range, boundaries included.
func (r Range) Days() int {
	if !r.IsValid() {
		return 0
	}
	n := 0
	for on := r.From; !on.After(r.To); on = on.Add(1) {
		n++
	}
	return n
}

// All returns an iterator over every calendar day in the range in
// chronological order, weekends and holidays included.
func (r Range) All() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for on := r.From; !on.After(r.To); on = on.Add(1) {
			if !yield(on) {
				return
			}
		}
	}
}

// Identifier computes a unique identifier for the Range, suitable as a cache
// key component in reports. Whole months get a short insightful name.
func (r Range) Identifier() string {
	if r.From == r.To {
		return r.From.String()
	}
	if r.From.Day() == 1 && r.From.EndOfMonth() == r.To {
		return r.From.Format("2006-01")
	}
	if r.From == New(r.From.Year(), time.January, 1) && r.To == New(r.From.Year(), time.December, 31) {
		return r.From.Format("2006")
	}
	return fmt.Sprintf("%s_%s", r.From, r.To)
}
