package seed

import (
	"context"
	"database/sql"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/acceso-plantas/pila-api/internal/festivos"
	"github.com/acceso-plantas/pila-api/internal/logger"
	"github.com/acceso-plantas/pila-api/internal/storage"
)

const maxYearsPerRun = 30

// repoCtor is an indirection for creating the repository; tests can override this.
var repoCtor = func(db *sql.DB) storage.PilaRepository {
	return storage.NewPilaRepository(db)
}

// SeedYears computes the Colombian holiday set for every year in
// [fromYear, toYear] and bulk-loads it into the festivos table.
//
// Behavior:
//   - Each year is idempotent: already-seeded years are skipped unless force
//     is set, in which case existing rows for that year are deleted first.
//   - Years are processed concurrently, bounded by parallel (0 = NumCPU,
//     capped at the number of years).
//   - The first error cancels the remaining years and is returned.
func SeedYears(ctx context.Context, db *sql.DB, fromYear, toYear, parallel int, force bool) error {
	if fromYear > toYear {
		return fmt.Errorf("invalid year range: %d > %d", fromYear, toYear)
	}
	if toYear-fromYear+1 > maxYearsPerRun {
		return fmt.Errorf("refusing to seed more than %d years in one run", maxYearsPerRun)
	}

	repo := repoCtor(db)

	nYears := toYear - fromYear + 1
	maxParallel := runtime.NumCPU()
	if parallel > 0 {
		maxParallel = parallel
	}
	if maxParallel > nYears {
		maxParallel = nYears
	}

	logger.L().Info().
		Int("from", fromYear).
		Int("to", toYear).
		Int("max_parallel", maxParallel).
		Bool("force", force).
		Msg("festivos seed start")

	g, _ := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxParallel)

	for y := fromYear; y <= toYear; y++ {
		year := y
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()
			start := time.Now()

			exists, err := repo.HasSeedForYear(year)
			if err != nil {
				return fmt.Errorf("year %d: check seed log: %w", year, err)
			}
			if exists && !force {
				logger.L().Info().Int("year", year).Bool("skipped", true).Msg("already seeded")
				return nil
			}
			if exists && force {
				if err := repo.DeleteFestivosByYear(year); err != nil {
					return fmt.Errorf("year %d: delete existing: %w", year, err)
				}
			}

			hs := festivos.HolidaysForYear(year)
			if err := repo.InsertFestivosBatch(year, hs); err != nil {
				return fmt.Errorf("year %d: insert batch: %w", year, err)
			}
			if err := repo.UpsertSeedLog(year, len(hs)); err != nil {
				return fmt.Errorf("year %d: upsert seed log: %w", year, err)
			}

			logger.L().Info().
				Int("year", year).
				Int("festivos", len(hs)).
				Dur("elapsed", time.Since(start)).
				Msg("year seeded")
			return nil
		})
	}

	return g.Wait()
}
