package festivos

import (
	"sort"
	"time"
)

// Category classifies how a holiday date is derived.
type Category string

const (
	// CategoryFixed marks holidays celebrated on the same date every year.
	CategoryFixed Category = "fijo"
	// CategoryEaster marks holidays anchored to Easter Sunday.
	CategoryEaster Category = "pascua"
	// CategoryMovable marks holidays moved to the following Monday (Ley Emiliani).
	CategoryMovable Category = "trasladable"
)

// Holiday is a single Colombian public holiday for a concrete year.
// Instances are value objects recomputed on demand, never stored.
type Holiday struct {
	Date     time.Time
	Name     string
	Category Category
}

// fixedHolidays are celebrated on their calendar date, no Monday shift.
var fixedHolidays = []struct {
	month time.Month
	day   int
	name  string
}{
	{time.January, 1, "Año Nuevo"},
	{time.May, 1, "Día del Trabajo"},
	{time.July, 20, "Día de la Independencia"},
	{time.August, 7, "Batalla de Boyacá"},
	{time.December, 8, "Inmaculada Concepción"},
	{time.December, 25, "Navidad"},
}

// movableHolidays are subject to the Ley Emiliani Monday shift.
var movableHolidays = []struct {
	month time.Month
	day   int
	name  string
}{
	{time.January, 6, "Día de los Reyes Magos"},
	{time.March, 19, "Día de San José"},
	{time.June, 29, "San Pedro y San Pablo"},
	{time.August, 15, "Asunción de la Virgen"},
	{time.October, 12, "Día de la Raza"},
	{time.November, 1, "Todos los Santos"},
	{time.November, 11, "Independencia de Cartagena"},
}

// easterHolidays are offsets in days from Easter Sunday. Holy Thursday and
// Good Friday are observed on their own date; the rest move to Monday.
var easterHolidays = []struct {
	offset  int
	name    string
	shifted bool
}{
	{-3, "Jueves Santo", false},
	{-2, "Viernes Santo", false},
	{39, "Ascensión del Señor", true},
	{60, "Corpus Christi", true},
	{68, "Sagrado Corazón de Jesús", true},
}

// HolidaysForYear computes the 18 Colombian public holidays for a year,
// sorted ascending by date. Dates are local-calendar midnights; no caching,
// callers get a fresh slice on every call.
//
// Easter Sunday itself is not emitted: it always falls on a Sunday, so it can
// never affect a business-day computation, and the statutory list counts 18
// holidays without it.
func HolidaysForYear(year int) []Holiday {
	out := make([]Holiday, 0, len(fixedHolidays)+len(movableHolidays)+len(easterHolidays))

	for _, f := range fixedHolidays {
		out = append(out, Holiday{
			Date:     time.Date(year, f.month, f.day, 0, 0, 0, 0, time.Local),
			Name:     f.name,
			Category: CategoryFixed,
		})
	}

	for _, m := range movableHolidays {
		d := time.Date(year, m.month, m.day, 0, 0, 0, 0, time.Local)
		out = append(out, Holiday{
			Date:     EmilianiShift(d),
			Name:     m.name,
			Category: CategoryMovable,
		})
	}

	easter := EasterSunday(year)
	for _, e := range easterHolidays {
		d := easter.AddDate(0, 0, e.offset)
		if e.shifted {
			d = EmilianiShift(d)
		}
		out = append(out, Holiday{
			Date:     d,
			Name:     e.name,
			Category: CategoryEaster,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// EasterSunday returns the date of Easter Sunday for a given year
// (Meeus/Jones/Butcher computus, Gregorian calendar).
func EasterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
}

// EmilianiShift applies the Ley Emiliani (Ley 51 de 1983) rule: holidays move
// to the following Monday. A Sunday moves one day forward, a Monday stays put,
// any other weekday advances to the next Monday. The result is always Monday.
func EmilianiShift(d time.Time) time.Time {
	switch wd := d.Weekday(); wd {
	case time.Monday:
		return d
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	default:
		return d.AddDate(0, 0, 8-int(wd))
	}
}
