package models

import (
	"time"

	"github.com/google/uuid"
)

// CrewMember is a crew record from the upstream API (read-only)
type CrewMember struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Agency    string `json:"agency"`
	Image     string `json:"image"`
	Wikipedia string `json:"wikipedia"`
}

// CrewStar is a locally persisted "starred" crew member
// Maps to: crew_stars table (crew_id is unique)
type CrewStar struct {
	ID       uuid.UUID `db:"id" json:"id"`
	CrewID   string    `db:"crew_id" json:"crew_id"`
	CrewName string    `db:"crew_name" json:"crew_name"`
	Nickname string    `db:"nickname" json:"nickname"`

	ImageURL     *string `db:"image_url" json:"image_url,omitempty"`
	WikipediaURL *string `db:"wikipedia_url" json:"wikipedia_url,omitempty"`

	// Set on first star, refreshed on every re-star
	StarredAt time.Time `db:"starred_at" json:"starred_at"`
}
