package repository

import (
	"context"
	"fmt"

	"github.com/stellarlog/launchdeck/common/db"
	"github.com/stellarlog/launchdeck/common/models"
)

// RocketRepository handles database operations for the rocket mirror
type RocketRepository struct {
	db *db.DB
}

// NewRocketRepository creates a new rocket repository
func NewRocketRepository(db *db.DB) *RocketRepository {
	return &RocketRepository{db: db}
}

// Upsert inserts a rocket or refreshes every mutable column for an existing
// ID. created_at keeps its original value; rows are never deleted here.
func (r *RocketRepository) Upsert(ctx context.Context, rocket *models.Rocket) error {
	query := `
		INSERT INTO rockets (
			id, name, description, height_meters, mass_kg, first_flight,
			cost_per_launch, success_rate_pct, active, stages, boosters, wikipedia_url
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			name             = EXCLUDED.name,
			description      = EXCLUDED.description,
			height_meters    = EXCLUDED.height_meters,
			mass_kg          = EXCLUDED.mass_kg,
			first_flight     = EXCLUDED.first_flight,
			cost_per_launch  = EXCLUDED.cost_per_launch,
			success_rate_pct = EXCLUDED.success_rate_pct,
			active           = EXCLUDED.active,
			stages           = EXCLUDED.stages,
			boosters         = EXCLUDED.boosters,
			wikipedia_url    = EXCLUDED.wikipedia_url
	`

	_, err := r.db.Exec(ctx, query,
		rocket.ID,
		rocket.Name,
		rocket.Description,
		rocket.HeightMeters,
		rocket.MassKg,
		rocket.FirstFlight,
		rocket.CostPerLaunch,
		rocket.SuccessRatePct,
		rocket.Active,
		rocket.Stages,
		rocket.Boosters,
		rocket.WikipediaURL,
	)

	if err != nil {
		return fmt.Errorf("failed to upsert rocket %s: %w", rocket.ID, err)
	}

	return nil
}

// List retrieves all mirrored rockets ordered by name
func (r *RocketRepository) List(ctx context.Context) ([]models.Rocket, error) {
	query := `
		SELECT id, name, description, height_meters, mass_kg, first_flight,
		       cost_per_launch, success_rate_pct, active, stages, boosters,
		       wikipedia_url, created_at
		FROM rockets
		ORDER BY name ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list rockets: %w", err)
	}
	defer rows.Close()

	var rockets []models.Rocket
	for rows.Next() {
		var rocket models.Rocket
		err := rows.Scan(
			&rocket.ID,
			&rocket.Name,
			&rocket.Description,
			&rocket.HeightMeters,
			&rocket.MassKg,
			&rocket.FirstFlight,
			&rocket.CostPerLaunch,
			&rocket.SuccessRatePct,
			&rocket.Active,
			&rocket.Stages,
			&rocket.Boosters,
			&rocket.WikipediaURL,
			&rocket.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rocket: %w", err)
		}
		rockets = append(rockets, rocket)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rockets: %w", err)
	}

	return rockets, nil
}
