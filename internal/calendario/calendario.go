package calendario

import (
	"time"

	"github.com/acceso-plantas/pila-api/internal/festivos"
)

// Normalize strips the time-of-day component, keeping the local calendar date.
func Normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// sameDate compares two instants by calendar year/month/day only.
func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsHoliday reports whether d falls on a Colombian public holiday.
// The holiday set is recomputed per call; cheap enough that a per-year
// cache would buy nothing observable.
func IsHoliday(d time.Time) bool {
	for _, h := range festivos.HolidaysForYear(d.Year()) {
		if sameDate(h.Date, d) {
			return true
		}
	}
	return false
}

// IsBusinessDay reports whether d is a working day: not Saturday, not
// Sunday, and not a public holiday.
func IsBusinessDay(d time.Time) bool {
	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}
	return !IsHoliday(d)
}

// NextBusinessDay returns the first business day strictly after d.
// The scan is bounded defensively; no legal calendar has a gap anywhere
// near that long.
func NextBusinessDay(d time.Time) time.Time {
	next := Normalize(d)
	for i := 0; i < 60; i++ {
		next = next.AddDate(0, 0, 1)
		if IsBusinessDay(next) {
			return next
		}
	}
	return next
}

// CountBusinessDays counts business days in the closed interval
// [start, end]. Returns 0 when start is after end.
func CountBusinessDays(start, end time.Time) int {
	start = Normalize(start)
	end = Normalize(end)

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if IsBusinessDay(d) {
			count++
		}
	}
	return count
}

// NthBusinessDayOfMonth returns the date on which the running business-day
// count within (year, month) reaches n. The second return is false when the
// month has fewer than n business days.
func NthBusinessDayOfMonth(year int, month time.Month, n int) (time.Time, bool) {
	if n < 1 {
		return time.Time{}, false
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	count := 0
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		if IsBusinessDay(d) {
			count++
			if count == n {
				return d, true
			}
		}
	}
	return time.Time{}, false
}

// BusinessDaysOfMonth lists every business day of (year, month), ascending.
func BusinessDaysOfMonth(year int, month time.Month) []time.Time {
	var out []time.Time
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		if IsBusinessDay(d) {
			out = append(out, d)
		}
	}
	return out
}
