package festivos

import (
	"testing"
	"time"
)

func TestEasterSunday_KnownYears(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		day   int
	}{
		{2024, time.March, 31},
		{2025, time.April, 20},
		{2026, time.April, 5},
		{2030, time.April, 21},
	}
	for _, c := range cases {
		got := EasterSunday(c.year)
		if got.Year() != c.year || got.Month() != c.month || got.Day() != c.day {
			t.Fatalf("EasterSunday(%d)=%v, want %d-%02d-%02d", c.year, got, c.year, c.month, c.day)
		}
		if got.Weekday() != time.Sunday {
			t.Fatalf("EasterSunday(%d) fell on %v", c.year, got.Weekday())
		}
	}
}

func TestEmilianiShift_TableDriven(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "monday unchanged",
			in:   time.Date(2025, 1, 6, 0, 0, 0, 0, time.Local), // Monday
			want: time.Date(2025, 1, 6, 0, 0, 0, 0, time.Local),
		},
		{
			name: "sunday moves one day",
			in:   time.Date(2025, 6, 29, 0, 0, 0, 0, time.Local), // Sunday
			want: time.Date(2025, 6, 30, 0, 0, 0, 0, time.Local),
		},
		{
			name: "wednesday moves to next monday",
			in:   time.Date(2025, 3, 19, 0, 0, 0, 0, time.Local), // Wednesday
			want: time.Date(2025, 3, 24, 0, 0, 0, 0, time.Local),
		},
		{
			name: "saturday moves to next monday",
			in:   time.Date(2025, 11, 1, 0, 0, 0, 0, time.Local), // Saturday
			want: time.Date(2025, 11, 3, 0, 0, 0, 0, time.Local),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EmilianiShift(tc.in)
			if !got.Equal(tc.want) {
				t.Fatalf("EmilianiShift(%v)=%v, want %v", tc.in, got, tc.want)
			}
			if got.Weekday() != time.Monday {
				t.Fatalf("shifted date %v is %v, want Monday", got, got.Weekday())
			}
		})
	}
}

func TestEmilianiShift_Idempotent(t *testing.T) {
	// Shifting a result again must not move it.
	d := EmilianiShift(time.Date(2025, 10, 12, 0, 0, 0, 0, time.Local))
	if again := EmilianiShift(d); !again.Equal(d) {
		t.Fatalf("second shift moved %v to %v", d, again)
	}
}

func TestHolidaysForYear_CountAndOrder(t *testing.T) {
	for _, year := range []int{2023, 2024, 2026, 2027} {
		hs := HolidaysForYear(year)
		if len(hs) != 18 {
			t.Fatalf("year %d: got %d holidays, want 18", year, len(hs))
		}
		for i := 1; i < len(hs); i++ {
			if !hs[i-1].Date.Before(hs[i].Date) {
				t.Fatalf("year %d: holidays not strictly ascending at %d: %v then %v",
					year, i, hs[i-1].Date, hs[i].Date)
			}
		}
		for _, h := range hs {
			if h.Date.Year() != year {
				t.Fatalf("year %d: holiday %q landed in %d", year, h.Name, h.Date.Year())
			}
			if h.Name == "" || h.Category == "" {
				t.Fatalf("year %d: incomplete holiday %+v", year, h)
			}
		}
	}
}

func TestHolidaysForYear_2025Coincidence(t *testing.T) {
	// In 2025 San Pedro y San Pablo (Jun 29, Sunday) and Sagrado Corazón
	// (Easter+68 = Jun 27, Friday) both shift onto Monday June 30. The list
	// still carries 18 entries with that single shared date.
	hs := HolidaysForYear(2025)
	if len(hs) != 18 {
		t.Fatalf("got %d holidays, want 18", len(hs))
	}
	shared := 0
	for i := 1; i < len(hs); i++ {
		if hs[i].Date.Before(hs[i-1].Date) {
			t.Fatalf("holidays not sorted at %d: %v then %v", i, hs[i-1].Date, hs[i].Date)
		}
		if hs[i].Date.Equal(hs[i-1].Date) {
			shared++
		}
	}
	if shared != 1 {
		t.Fatalf("expected exactly one coinciding pair in 2025, got %d", shared)
	}
}

func TestHolidaysForYear_EasterRelatives2025(t *testing.T) {
	// Easter 2025 is April 20. Holy Thursday and Good Friday stay on their
	// dates; Ascension (E+39, a Thursday) must land on the following Monday.
	hs := HolidaysForYear(2025)
	byName := map[string]time.Time{}
	for _, h := range hs {
		byName[h.Name] = h.Date
	}

	if d := byName["Jueves Santo"]; d.Month() != time.April || d.Day() != 17 {
		t.Fatalf("Jueves Santo 2025 = %v, want April 17", d)
	}
	if d := byName["Viernes Santo"]; d.Month() != time.April || d.Day() != 18 {
		t.Fatalf("Viernes Santo 2025 = %v, want April 18", d)
	}
	if d := byName["Ascensión del Señor"]; d.Month() != time.June || d.Day() != 2 {
		t.Fatalf("Ascensión 2025 = %v, want June 2", d)
	}
	if d := byName["Corpus Christi"]; d.Month() != time.June || d.Day() != 23 {
		t.Fatalf("Corpus Christi 2025 = %v, want June 23", d)
	}
}

func TestHolidaysForYear_FixedNeverShift(t *testing.T) {
	// July 20, 2025 is a Sunday and must stay a Sunday holiday.
	for _, h := range HolidaysForYear(2025) {
		if h.Name == "Día de la Independencia" {
			if h.Date.Month() != time.July || h.Date.Day() != 20 {
				t.Fatalf("Independencia 2025 = %v, want July 20", h.Date)
			}
			return
		}
	}
	t.Fatal("Independencia not found")
}
