package service

import (
	"context"
	"fmt"
	"time"

	"github.com/acceso-plantas/pila-api/internal/calendario"
	"github.com/acceso-plantas/pila-api/internal/domain/models"
	"github.com/acceso-plantas/pila-api/internal/logger"
	"github.com/acceso-plantas/pila-api/internal/pila"
	"github.com/acceso-plantas/pila-api/internal/storage"
)

// DueDateCalculator is the slice of the pila package the service needs;
// *pila.Calculator satisfies it.
type DueDateCalculator interface {
	ComputeDueDates(nit string, start, end, today time.Time) ([]models.FechaPago, bool)
}

// PilaService exposes the due-date consultation to the HTTP layer.
type PilaService interface {
	ConsultarFechas(ctx context.Context, nit string, inicio, fin time.Time) (*models.ResultadoPila, error)
}

type pilaService struct {
	calc DueDateCalculator
	repo storage.PilaRepository
}

// NewPilaService wires the calculator and the audit repository together.
// repo may be nil, in which case consultations are not recorded.
func NewPilaService(calc DueDateCalculator, repo storage.PilaRepository) PilaService {
	return &pilaService{calc: calc, repo: repo}
}

// ConsultarFechas computes the PILA due dates for the period, falling back
// to a simplified "10th of each month" schedule if the calculator panics,
// and records the consultation best-effort. The handler validates that
// inicio < fin and both parse before calling here.
func (s *pilaService) ConsultarFechas(ctx context.Context, nit string, inicio, fin time.Time) (*models.ResultadoPila, error) {
	today := calendario.Normalize(time.Now())

	fechas, porDefecto := s.computeSafe(nit, inicio, fin, today)

	res := &models.ResultadoPila{
		Fechas:        fechas,
		SufijoNIT:     pila.NitSuffix(nit),
		PorDefecto:    porDefecto,
		PeriodoInicio: calendario.Normalize(inicio),
		PeriodoFin:    calendario.Normalize(fin),
	}
	res.DiasHabiles, _ = pila.RequiredBusinessDays(nit)

	// Audit log is best-effort; a storage failure never fails the request.
	if s.repo != nil {
		err := s.repo.InsertConsulta(models.Consulta{
			SufijoNIT:     res.SufijoNIT,
			PeriodoInicio: res.PeriodoInicio,
			PeriodoFin:    res.PeriodoFin,
			TotalFechas:   len(fechas),
			PorDefecto:    porDefecto,
		})
		if err != nil {
			logger.L().Warn().Err(err).Str("nit_sufijo", res.SufijoNIT).Msg("consulta audit insert failed")
		}
	}

	return res, nil
}

// computeSafe shields the request from a calculator panic: on failure it
// degrades to the 10th of each month in the period, all marked normal.
func (s *pilaService) computeSafe(nit string, inicio, fin, today time.Time) (fechas []models.FechaPago, porDefecto bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.L().Error().
				Str("panic", fmt.Sprintf("%v", r)).
				Msg("due-date calculator failed, using simplified schedule")
			fechas = fallbackFechas(inicio, fin)
			porDefecto = false
		}
	}()

	fechas, porDefecto = s.calc.ComputeDueDates(nit, inicio, fin, today)
	return fechas, porDefecto
}

// fallbackFechas emits the 10th of each calendar month intersecting the
// period, clipped to [inicio, fin].
func fallbackFechas(inicio, fin time.Time) []models.FechaPago {
	inicio = calendario.Normalize(inicio)
	fin = calendario.Normalize(fin)

	var out []models.FechaPago
	year, month := inicio.Year(), inicio.Month()
	endYear, endMonth := fin.Year(), fin.Month()

	for year < endYear || (year == endYear && month <= endMonth) {
		d := time.Date(year, month, 10, 0, 0, 0, 0, time.Local)
		if !d.Before(inicio) && !d.After(fin) {
			out = append(out, models.FechaPago{
				ID:       len(out) + 1,
				Fecha:    d,
				Estado:   models.EstadoNormal,
				MesTexto: pila.MesTexto(d),
			})
		}
		month++
		if month > time.December {
			month = time.January
			year++
		}
	}
	return out
}
