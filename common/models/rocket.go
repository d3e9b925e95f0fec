package models

import "time"

// Rocket is the locally persisted mirror of an upstream rocket record.
// The ID is assigned upstream and used verbatim as the primary key; sync
// runs refresh every mutable column and never delete rows.
type Rocket struct {
	ID          string `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`

	HeightMeters   *float64   `db:"height_meters" json:"height_meters,omitempty"`
	MassKg         *int64     `db:"mass_kg" json:"mass_kg,omitempty"`
	FirstFlight    *time.Time `db:"first_flight" json:"first_flight,omitempty"`
	CostPerLaunch  *int64     `db:"cost_per_launch" json:"cost_per_launch,omitempty"`
	SuccessRatePct *float64   `db:"success_rate_pct" json:"success_rate_pct,omitempty"`
	Active         bool       `db:"active" json:"active"`
	Stages         *int       `db:"stages" json:"stages,omitempty"`
	Boosters       *int       `db:"boosters" json:"boosters,omitempty"`
	WikipediaURL   *string    `db:"wikipedia_url" json:"wikipedia_url,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// RocketPayload is the upstream rocket record as the API returns it,
// with height and mass still nested
type RocketPayload struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	Height struct {
		Meters *float64 `json:"meters"`
	} `json:"height"`
	Mass struct {
		Kg *int64 `json:"kg"`
	} `json:"mass"`

	FirstFlight    string   `json:"first_flight"`
	CostPerLaunch  *int64   `json:"cost_per_launch"`
	SuccessRatePct *float64 `json:"success_rate_pct"`
	Active         *bool    `json:"active"`
	Stages         *int     `json:"stages"`
	Boosters       *int     `json:"boosters"`
	Wikipedia      *string  `json:"wikipedia"`
}
