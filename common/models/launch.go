package models

import (
	"encoding/json"
	"time"
)

// Launch is a single launch record from the upstream API. Records are
// read-only and never persisted; Raw carries the untouched upstream payload
// for callers that need fields beyond the extracted ones.
type Launch struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	DateUTC    time.Time `json:"date_utc"`
	Rocket     string    `json:"rocket"`
	Success    *bool     `json:"success,omitempty"`
	PatchSmall string    `json:"patch_small,omitempty"`

	// Crew member IDs in the order the launch lists them
	Crew []string `json:"crew"`

	Raw json.RawMessage `json:"-"`
}

// PageResult is one page of the launch collection
type PageResult struct {
	Launches   []Launch `json:"launches"`
	Total      int      `json:"total"`
	Page       int      `json:"page"`
	PerPage    int      `json:"per_page"`
	TotalPages int      `json:"total_pages"`
	HasPrev    bool     `json:"has_prev"`
	HasNext    bool     `json:"has_next"`
}

// EmptyPage is the default a caller substitutes when the upstream fetch
// fails: zero counts, no navigation.
func EmptyPage(perPage int) *PageResult {
	return &PageResult{
		Launches: []Launch{},
		Page:     1,
		PerPage:  perPage,
	}
}
