package seed

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"

	"github.com/acceso-plantas/pila-api/internal/domain/models"
	"github.com/acceso-plantas/pila-api/internal/festivos"
	"github.com/acceso-plantas/pila-api/internal/storage"
)

type fakeRepo struct {
	mu       sync.Mutex
	seeded   map[int]bool
	inserted map[int]int
	deleted  []int
	failYear int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{seeded: map[int]bool{}, inserted: map[int]int{}}
}

func (f *fakeRepo) InsertConsulta(_ models.Consulta) error { return nil }

func (f *fakeRepo) InsertFestivosBatch(year int, hs []festivos.Holiday) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if year == f.failYear {
		return errors.New("insert failed")
	}
	f.inserted[year] = len(hs)
	return nil
}

func (f *fakeRepo) HasSeedForYear(year int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seeded[year], nil
}

func (f *fakeRepo) DeleteFestivosByYear(year int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, year)
	return nil
}

func (f *fakeRepo) UpsertSeedLog(year int, _ int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seeded[year] = true
	return nil
}

func withFakeRepo(t *testing.T, repo storage.PilaRepository) {
	t.Helper()
	old := repoCtor
	repoCtor = func(_ *sql.DB) storage.PilaRepository { return repo }
	t.Cleanup(func() { repoCtor = old })
}

func TestSeedYears_SeedsRange(t *testing.T) {
	repo := newFakeRepo()
	withFakeRepo(t, repo)

	if err := SeedYears(context.Background(), nil, 2024, 2026, 2, false); err != nil {
		t.Fatalf("SeedYears: %v", err)
	}
	for y := 2024; y <= 2026; y++ {
		if repo.inserted[y] != 18 {
			t.Fatalf("year %d: inserted %d festivos, want 18", y, repo.inserted[y])
		}
		if !repo.seeded[y] {
			t.Fatalf("year %d: seed log not updated", y)
		}
	}
}

func TestSeedYears_SkipsSeededUnlessForce(t *testing.T) {
	repo := newFakeRepo()
	repo.seeded[2025] = true
	withFakeRepo(t, repo)

	if err := SeedYears(context.Background(), nil, 2025, 2025, 1, false); err != nil {
		t.Fatalf("SeedYears: %v", err)
	}
	if len(repo.inserted) != 0 {
		t.Fatalf("seeded year must be skipped, inserted=%v", repo.inserted)
	}

	if err := SeedYears(context.Background(), nil, 2025, 2025, 1, true); err != nil {
		t.Fatalf("SeedYears force: %v", err)
	}
	if repo.inserted[2025] != 18 {
		t.Fatalf("force run should reinsert, inserted=%v", repo.inserted)
	}
	if len(repo.deleted) != 1 || repo.deleted[0] != 2025 {
		t.Fatalf("force run should delete first, deleted=%v", repo.deleted)
	}
}

func TestSeedYears_PropagatesError(t *testing.T) {
	repo := newFakeRepo()
	repo.failYear = 2025
	withFakeRepo(t, repo)

	if err := SeedYears(context.Background(), nil, 2024, 2026, 1, false); err == nil {
		t.Fatal("expected error from failing year")
	}
}

func TestSeedYears_ValidatesRange(t *testing.T) {
	repo := newFakeRepo()
	withFakeRepo(t, repo)

	if err := SeedYears(context.Background(), nil, 2030, 2020, 1, false); err == nil {
		t.Fatal("expected error for inverted range")
	}
	if err := SeedYears(context.Background(), nil, 2000, 2100, 1, false); err == nil {
		t.Fatal("expected error for oversized range")
	}
}
