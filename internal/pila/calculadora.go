package pila

import (
	"fmt"
	"time"

	"github.com/acceso-plantas/pila-api/internal/calendario"
	"github.com/acceso-plantas/pila-api/internal/domain/models"
)

// DefaultWarningDays is how far ahead of "today" a due date is flagged as
// upcoming when no explicit window is configured.
const DefaultWarningDays = 10

// meses are the Spanish month labels used in user-facing text.
var meses = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// MesTexto renders "month year" in Spanish, e.g. "enero 2025".
func MesTexto(d time.Time) string {
	return fmt.Sprintf("%s %d", meses[d.Month()-1], d.Year())
}

// Calculator computes PILA due dates. It is pure and stateless apart from
// its two knobs, so a single instance can serve concurrent requests.
type Calculator struct {
	WarningDays int // warning window ahead of today, inclusive
	DefaultDays int // fallback when the NIT suffix is not in the table
}

// NewCalculator builds a Calculator; non-positive knobs fall back to the
// package defaults.
func NewCalculator(warningDays, defaultDays int) *Calculator {
	if warningDays <= 0 {
		warningDays = DefaultWarningDays
	}
	if defaultDays <= 0 {
		defaultDays = DefaultRequiredDays
	}
	return &Calculator{WarningDays: warningDays, DefaultDays: defaultDays}
}

// ComputeDueDates returns one due date per calendar month intersecting
// [start, end], each the Nth business day of its month where N comes from
// the NIT bracket. The boolean reports whether the default day-count was
// used because the suffix was missing.
//
// The caller guarantees start < end; dates are normalized here to local
// midnights. `today` anchors the status classification and is passed in
// explicitly so the generation pass stays deterministic under test.
//
// Statuses: a provisional pass marks dates inside [today, today+WarningDays]
// as warning and everything else as normal; a second pass then promotes the
// first date on-or-after today to success. Months whose Nth business day
// does not exist, or falls outside the period, yield no entry.
func (c *Calculator) ComputeDueDates(nit string, start, end, today time.Time) ([]models.FechaPago, bool) {
	days, porDefecto := requiredForSuffix(NitSuffix(nit), c.DefaultDays)

	start = calendario.Normalize(start)
	end = calendario.Normalize(end)
	today = calendario.Normalize(today)
	warningEnd := today.AddDate(0, 0, c.WarningDays)

	var fechas []models.FechaPago
	year, month := start.Year(), start.Month()
	endYear, endMonth := end.Year(), end.Month()

	for year < endYear || (year == endYear && month <= endMonth) {
		if d, ok := calendario.NthBusinessDayOfMonth(year, month, days); ok {
			if !d.Before(start) && !d.After(end) {
				estado := models.EstadoNormal
				if !d.Before(today) && !d.After(warningEnd) {
					estado = models.EstadoWarning
				}
				fechas = append(fechas, models.FechaPago{
					Fecha:    d,
					Estado:   estado,
					MesTexto: MesTexto(d),
				})
			}
		}

		month++
		if month > time.December {
			month = time.January
			year++
		}
	}

	// Promote the next upcoming due date; at most one entry wins.
	for i := range fechas {
		if !fechas[i].Fecha.Before(today) {
			fechas[i].Estado = models.EstadoSuccess
			break
		}
	}

	for i := range fechas {
		fechas[i].ID = i + 1
	}

	return fechas, porDefecto
}
