package rockets

import (
	"context"
	"fmt"
	"time"

	"github.com/stellarlog/launchdeck/common/logger"
	"github.com/stellarlog/launchdeck/common/models"
)

// firstFlightLayout is the date format the upstream API uses
const firstFlightLayout = "2006-01-02"

// Source is the slice of the upstream API the syncer needs
type Source interface {
	Rockets(ctx context.Context) ([]models.RocketPayload, error)
}

// Store is the persistence surface the syncer writes to
type Store interface {
	Upsert(ctx context.Context, rocket *models.Rocket) error
}

// Syncer refreshes the local rocket mirror from the upstream API.
// One fetch, one upsert per record; a failed row stops the run and the
// rows already written stay in place.
type Syncer struct {
	source Source
	store  Store
	log    *logger.Logger
}

// NewSyncer creates a new rocket syncer
func NewSyncer(source Source, store Store, log *logger.Logger) *Syncer {
	return &Syncer{
		source: source,
		store:  store,
		log:    log,
	}
}

// Run fetches all rockets and upserts them one by one, returning the number
// of rows written. A fetch failure writes nothing; an upsert failure stops
// the loop and returns the count written so far alongside the error.
func (s *Syncer) Run(ctx context.Context) (int, error) {
	payloads, err := s.source.Rockets(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch rockets: %w", err)
	}

	s.log.Info("fetched rockets", "count", len(payloads))

	count := 0
	for i := range payloads {
		rocket := Flatten(&payloads[i])
		if err := s.store.Upsert(ctx, rocket); err != nil {
			return count, fmt.Errorf("upsert rocket %s: %w", rocket.ID, err)
		}
		count++
	}

	s.log.Info("rocket sync complete", "count", count)
	return count, nil
}

// Flatten maps an upstream rocket payload onto the local mirror row:
// nested height/mass collapse to height_meters/mass_kg, the first-flight
// date string is parsed, and a missing active flag defaults to false.
func Flatten(p *models.RocketPayload) *models.Rocket {
	rocket := &models.Rocket{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		HeightMeters:   p.Height.Meters,
		MassKg:         p.Mass.Kg,
		CostPerLaunch:  p.CostPerLaunch,
		SuccessRatePct: p.SuccessRatePct,
		Active:         p.Active != nil && *p.Active,
		Stages:         p.Stages,
		Boosters:       p.Boosters,
		WikipediaURL:   p.Wikipedia,
	}

	if p.FirstFlight != "" {
		if t, err := time.Parse(firstFlightLayout, p.FirstFlight); err == nil {
			rocket.FirstFlight = &t
		}
	}

	return rocket
}
