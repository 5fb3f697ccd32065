package date

import "time"

// Calendar counts business days against a set of holidays.
//
// A day is a business day iff its weekday is Monday to Friday and it is not a
// member of the holiday set. Weekends are never business days, even when the
// holiday set is empty or lists a Saturday or Sunday.
//
// The zero value is a calendar with no holidays and is ready to use.
type Calendar struct {
	holidays map[Date]bool
}

// NewCalendar returns a Calendar observing the given holidays.
func NewCalendar(holidays ...Date) *Calendar {
	c := &Calendar{holidays: make(map[Date]bool, len(holidays))}
	for _, h := range holidays {
		c.holidays[h] = true
	}
	return c
}

// IsHoliday reports whether on is a member of the holiday set.
func (c *Calendar) IsHoliday(on Date) bool {
	if c == nil || c.holidays == nil {
		return false
	}
	return c.holidays[on]
}

// IsBusinessDay reports whether on is a weekday outside the holiday set.
func (c *Calendar) IsBusinessDay(on Date) bool {
	wd := on.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return false
	}
	return !c.IsHoliday(on)
}

// BusinessDaysRemaining counts the business days left in the given month,
// seen from ref.
//
// A month that fully elapsed before ref's month yields 0. When the month is
// ref's own month, the count runs from ref to the month's last day; a future
// month is counted in full. When includeToday is false, ref itself is not
// counted.
//
// The month is interpreted in ref's year and normalized, so out-of-range
// values never fail; they just land in the neighboring year.
func (c *Calendar) BusinessDaysRemaining(month time.Month, ref Date, includeToday bool) int {
	first := New(ref.Year(), month, 1)
	refMonth := ref.StartOfMonth()
	if first.Before(refMonth) {
		return 0
	}

	from := first
	if first == refMonth {
		from = ref
	}

	count := 0
	for on := from; !on.After(first.EndOfMonth()); on = on.Add(1) {
		if !c.IsBusinessDay(on) {
			continue
		}
		if includeToday || on.After(ref) {
			count++
		}
	}
	return count
}

// BusinessDaysElapsed counts the business days of the given month already
// consumed at ref: from the month's first day up to ref or the month's end,
// whichever comes first. When includeToday is false, ref itself is not
// counted.
func (c *Calendar) BusinessDaysElapsed(month time.Month, ref Date, includeToday bool) int {
	first := New(ref.Year(), month, 1)
	until := first.EndOfMonth()
	if ref.Before(until) {
		until = ref
	}

	count := 0
	for on := first; !on.After(until); on = on.Add(1) {
		if !c.IsBusinessDay(on) {
			continue
		}
		if includeToday || on.Before(ref) {
			count++
		}
	}
	return count
}

// BusinessDaysIn counts all business days of the given month of the given
// year.
func (c *Calendar) BusinessDaysIn(year int, month time.Month) int {
	first := New(year, month, 1)
	count := 0
	for on := first; !on.After(first.EndOfMonth()); on = on.Add(1) {
		if c.IsBusinessDay(on) {
			count++
		}
	}
	return count
}
