package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/stellarlog/launchdeck/common/db"
	"github.com/stellarlog/launchdeck/common/models"
)

// CrewStarRepository handles database operations for starred crew members
type CrewStarRepository struct {
	db *db.DB
}

// NewCrewStarRepository creates a new crew star repository
func NewCrewStarRepository(db *db.DB) *CrewStarRepository {
	return &CrewStarRepository{db: db}
}

// Upsert inserts a starred crew member or, when the crew_id is already
// starred, overwrites nickname, image and wikipedia URL and refreshes
// starred_at. The stored crew name is kept from the first star.
func (r *CrewStarRepository) Upsert(ctx context.Context, star *models.CrewStar) error {
	if star.ID == uuid.Nil {
		star.ID = uuid.New()
	}

	query := `
		INSERT INTO crew_stars (id, crew_id, crew_name, nickname, image_url, wikipedia_url, starred_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (crew_id) DO UPDATE SET
			nickname      = EXCLUDED.nickname,
			image_url     = EXCLUDED.image_url,
			wikipedia_url = EXCLUDED.wikipedia_url,
			starred_at    = NOW()
	`

	_, err := r.db.Exec(ctx, query,
		star.ID,
		star.CrewID,
		star.CrewName,
		star.Nickname,
		star.ImageURL,
		star.WikipediaURL,
	)

	if err != nil {
		return fmt.Errorf("failed to upsert crew star: %w", err)
	}

	return nil
}

// List retrieves all starred crew members, most recently starred first
func (r *CrewStarRepository) List(ctx context.Context) ([]models.CrewStar, error) {
	query := `
		SELECT id, crew_id, crew_name, nickname, image_url, wikipedia_url, starred_at
		FROM crew_stars
		ORDER BY starred_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list crew stars: %w", err)
	}
	defer rows.Close()

	var stars []models.CrewStar
	for rows.Next() {
		var star models.CrewStar
		err := rows.Scan(
			&star.ID,
			&star.CrewID,
			&star.CrewName,
			&star.Nickname,
			&star.ImageURL,
			&star.WikipediaURL,
			&star.StarredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan crew star: %w", err)
		}
		stars = append(stars, star)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating crew stars: %w", err)
	}

	return stars, nil
}
