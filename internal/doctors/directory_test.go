package doctors

import (
	"context"
	"testing"
	"time"

	"github.com/healthmate/platform/internal/geo"
)

func seededDirectory(t *testing.T) (*Directory, *InMemoryRepository) {
	t.Helper()
	repo := NewInMemoryRepository()
	if _, err := repo.SeedIfEmpty(context.Background(), SeedRoster()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return NewDirectory(repo, nil), repo
}

func TestListCandidatesRanksByDistance(t *testing.T) {
	dir, _ := seededDirectory(t)

	// Origin near Connaught Place. Hauz Khas (28.5494, 77.2001) is closer
	// than Rohini (28.7041, 77.1025) and must rank above it.
	origin := &geo.Coordinate{Lat: 28.6139, Lng: 77.2090}
	candidates, err := dir.ListCandidates(context.Background(), origin, Filters{})
	if err != nil {
		t.Fatalf("ListCandidates failed: %v", err)
	}
	if len(candidates) != 6 {
		t.Fatalf("expected all 6 doctors, got %d", len(candidates))
	}

	var hauzKhasIdx, rohiniIdx = -1, -1
	prev := -1.0
	for i, c := range candidates {
		if c.DistanceKm == nil {
			t.Fatalf("candidate %d missing distance with origin supplied", i)
		}
		if *c.DistanceKm < prev {
			t.Fatalf("candidates not sorted ascending by distance at index %d", i)
		}
		prev = *c.DistanceKm
		switch c.Location {
		case "Hauz Khas, Delhi":
			hauzKhasIdx = i
		case "Rohini, Delhi":
			rohiniIdx = i
		}
	}
	if hauzKhasIdx == -1 || rohiniIdx == -1 {
		t.Fatalf("expected both reference doctors in the result")
	}
	if hauzKhasIdx > rohiniIdx {
		t.Fatalf("Hauz Khas (idx %d) should rank above Rohini (idx %d)", hauzKhasIdx, rohiniIdx)
	}
}

func TestListCandidatesWithoutOriginKeepsDirectoryOrder(t *testing.T) {
	dir, repo := seededDirectory(t)

	candidates, err := dir.ListCandidates(context.Background(), nil, Filters{})
	if err != nil {
		t.Fatalf("ListCandidates failed: %v", err)
	}
	roster, _ := repo.ListAll(context.Background())
	if len(candidates) != len(roster) {
		t.Fatalf("expected %d candidates, got %d", len(roster), len(candidates))
	}
	for i, c := range candidates {
		if c.ID != roster[i].ID {
			t.Fatalf("directory order not preserved at index %d", i)
		}
		if c.DistanceKm != nil {
			t.Fatalf("distance must be absent without an origin")
		}
	}
}

func TestListCandidatesFiltersAreConjunctive(t *testing.T) {
	dir, _ := seededDirectory(t)
	ctx := context.Background()

	t.Run("specialty substring is case-insensitive", func(t *testing.T) {
		candidates, err := dir.ListCandidates(ctx, nil, Filters{Specialty: "cardio"})
		if err != nil {
			t.Fatalf("ListCandidates failed: %v", err)
		}
		if len(candidates) != 1 || candidates[0].Specialty != "Cardiologist" {
			t.Fatalf("expected only the cardiologist, got %+v", candidates)
		}
	})

	t.Run("min rating is an inclusive lower bound", func(t *testing.T) {
		candidates, err := dir.ListCandidates(ctx, nil, Filters{MinRating: 4.8})
		if err != nil {
			t.Fatalf("ListCandidates failed: %v", err)
		}
		if len(candidates) != 3 {
			t.Fatalf("expected 3 doctors rated >= 4.8, got %d", len(candidates))
		}
		for _, c := range candidates {
			if c.Rating < 4.8 {
				t.Fatalf("doctor %q rated %v below bound", c.Name, c.Rating)
			}
		}
	})

	t.Run("insurance substring is case-insensitive", func(t *testing.T) {
		candidates, err := dir.ListCandidates(ctx, nil, Filters{Insurance: "star health"})
		if err != nil {
			t.Fatalf("ListCandidates failed: %v", err)
		}
		if len(candidates) != 2 {
			t.Fatalf("expected 2 doctors accepting Star Health, got %d", len(candidates))
		}
	})

	t.Run("no match yields an empty sequence, not an error", func(t *testing.T) {
		candidates, err := dir.ListCandidates(ctx, nil, Filters{Specialty: "podiatrist"})
		if err != nil {
			t.Fatalf("empty result must not be an error: %v", err)
		}
		if len(candidates) != 0 {
			t.Fatalf("expected no matches, got %d", len(candidates))
		}
	})

	t.Run("filters combine", func(t *testing.T) {
		candidates, err := dir.ListCandidates(ctx, nil, Filters{Insurance: "hdfc", MinRating: 4.8})
		if err != nil {
			t.Fatalf("ListCandidates failed: %v", err)
		}
		if len(candidates) != 1 || candidates[0].Specialty != "Cardiologist" {
			t.Fatalf("expected only the cardiologist to pass both filters, got %+v", candidates)
		}
	})
}

func TestListCandidatesAvailabilityToday(t *testing.T) {
	dir, _ := seededDirectory(t)
	fixed := time.Date(2026, 2, 21, 10, 0, 0, 0, time.UTC)
	dir.WithClock(func() time.Time { return fixed })

	candidates, err := dir.ListCandidates(context.Background(), nil, Filters{Availability: AvailabilityToday})
	if err != nil {
		t.Fatalf("ListCandidates failed: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("expected 2 doctors available on 2026-02-21, got %d", len(candidates))
	}
	for _, c := range candidates {
		if c.NextAvailable != "2026-02-21" {
			t.Fatalf("doctor %q next available %s leaked through today filter", c.Name, c.NextAvailable)
		}
	}
}

func TestListCandidatesRejectsInvalidOrigin(t *testing.T) {
	dir, _ := seededDirectory(t)
	origin := &geo.Coordinate{Lat: 120, Lng: 77}
	if _, err := dir.ListCandidates(context.Background(), origin, Filters{}); err == nil {
		t.Fatal("expected an error for out-of-range origin")
	}
}

func TestListCandidatesIsRestartable(t *testing.T) {
	dir, _ := seededDirectory(t)
	ctx := context.Background()

	first, err := dir.ListCandidates(ctx, nil, Filters{Specialty: "derma"})
	if err != nil {
		t.Fatalf("first invocation failed: %v", err)
	}
	second, err := dir.ListCandidates(ctx, nil, Filters{MinRating: 4.9})
	if err != nil {
		t.Fatalf("second invocation failed: %v", err)
	}
	if len(first) != 1 || len(second) != 2 {
		t.Fatalf("re-invocation with new filters returned wrong sizes: %d, %d", len(first), len(second))
	}
}
