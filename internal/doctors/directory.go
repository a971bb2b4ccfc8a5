package doctors

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/healthmate/platform/internal/geo"
	"github.com/healthmate/platform/pkg/logging"
)

// AvailabilityAny and AvailabilityToday are the only recognized availability
// filter values.
const (
	AvailabilityAny   = "any"
	AvailabilityToday = "today"
)

// Filters narrow the roster conjunctively. Zero values mean "no constraint".
type Filters struct {
	Specialty    string
	MinRating    float64
	Insurance    string
	Availability string
}

// Directory ranks and filters the doctor roster. It never mutates the roster;
// every call re-reads current state and can be re-invoked with new filters.
type Directory struct {
	repo   Repository
	logger *logging.Logger
	now    func() time.Time
}

// NewDirectory constructs a directory over the given roster repository.
func NewDirectory(repo Repository, logger *logging.Logger) *Directory {
	if repo == nil {
		panic("doctors: repository required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Directory{repo: repo, logger: logger, now: time.Now}
}

// WithClock overrides the wall clock, for the "available today" filter in tests.
func (d *Directory) WithClock(now func() time.Time) *Directory {
	d.now = now
	return d
}

// ListCandidates applies the filter and rank pipeline: distance per doctor
// when an origin is supplied, conjunctive filters, then a stable ascending
// sort by distance (directory order when no origin). An empty result is a
// valid outcome.
func (d *Directory) ListCandidates(ctx context.Context, origin *geo.Coordinate, f Filters) ([]Candidate, error) {
	if origin != nil {
		if err := origin.Validate(); err != nil {
			return nil, err
		}
	}

	roster, err := d.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	today := d.now().Format("2006-01-02")
	candidates := make([]Candidate, 0, len(roster))
	for _, doc := range roster {
		if !matches(doc, f, today) {
			continue
		}
		c := Candidate{Doctor: doc}
		if origin != nil {
			km, err := geo.Distance(*origin, doc.Coordinate())
			if err != nil {
				// A roster row with corrupt coordinates is skipped, not fatal.
				d.logger.Warn("skipping doctor with invalid coordinates", "doctor_id", doc.ID, "error", err)
				continue
			}
			c.DistanceKm = &km
		}
		candidates = append(candidates, c)
	}

	if origin != nil {
		sort.SliceStable(candidates, func(i, j int) bool {
			return *candidates[i].DistanceKm < *candidates[j].DistanceKm
		})
	}
	return candidates, nil
}

func matches(d Doctor, f Filters, today string) bool {
	if f.Specialty != "" && !containsFold(d.Specialty, f.Specialty) {
		return false
	}
	if f.Insurance != "" && !containsFold(d.Insurance, f.Insurance) {
		return false
	}
	if d.Rating < f.MinRating {
		return false
	}
	if f.Availability == AvailabilityToday && d.NextAvailable != today {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
