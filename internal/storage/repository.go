package storage

import (
	"database/sql"

	pq "github.com/lib/pq"

	"github.com/acceso-plantas/pila-api/internal/domain/models"
	"github.com/acceso-plantas/pila-api/internal/festivos"
)

// PilaRepository defines the contract for DB operations.
type PilaRepository interface {
	InsertConsulta(c models.Consulta) error
	InsertFestivosBatch(year int, hs []festivos.Holiday) error
	HasSeedForYear(year int) (bool, error)
	DeleteFestivosByYear(year int) error
	UpsertSeedLog(year int, count int) error
}

type pilaRepository struct {
	db *sql.DB
}

func NewPilaRepository(db *sql.DB) PilaRepository {
	return &pilaRepository{db: db}
}

// InsertConsulta records one due-date consultation in the audit table.
func (r *pilaRepository) InsertConsulta(c models.Consulta) error {
	_, err := r.db.Exec(`
		INSERT INTO consultas_pila (nit_sufijo, periodo_inicio, periodo_fin, total_fechas, por_defecto, consultada_en)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`, c.SufijoNIT, c.PeriodoInicio, c.PeriodoFin, c.TotalFechas, c.PorDefecto)
	return err
}

// InsertFestivosBatch bulk-loads the holiday set for one year in a single
// transaction using COPY.
func (r *pilaRepository) InsertFestivosBatch(year int, hs []festivos.Holiday) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(pq.CopyIn(
		"festivos",
		"anio",
		"fecha",
		"nombre",
		"categoria",
	))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, h := range hs {
		if _, err := stmt.Exec(year, h.Date, h.Name, string(h.Category)); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.Exec(); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// HasSeedForYear checks whether the holiday table was already seeded for a year.
func (r *pilaRepository) HasSeedForYear(year int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM festivos_seed_log WHERE anio = $1)`, year).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// DeleteFestivosByYear removes all holiday rows for a year (used with --force).
func (r *pilaRepository) DeleteFestivosByYear(year int) error {
	_, err := r.db.Exec(`DELETE FROM festivos WHERE anio = $1`, year)
	return err
}

// UpsertSeedLog records (or refreshes) the seed entry for a year.
func (r *pilaRepository) UpsertSeedLog(year int, count int) error {
	_, err := r.db.Exec(`
		INSERT INTO festivos_seed_log (anio, total_festivos, sembrado_en)
		VALUES ($1, $2, NOW())
		ON CONFLICT (anio)
		DO UPDATE SET total_festivos = EXCLUDED.total_festivos,
					  sembrado_en = NOW()
	`, year, count)
	return err
}
