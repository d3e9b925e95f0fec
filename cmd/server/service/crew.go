package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stellarlog/launchdeck/common/logger"
	"github.com/stellarlog/launchdeck/common/models"
)

// ErrValidation marks a request rejected by presence checks, before any
// store access
var ErrValidation = errors.New("missing required field")

// CrewStarStore is the persistence surface the crew service needs
type CrewStarStore interface {
	Upsert(ctx context.Context, star *models.CrewStar) error
	List(ctx context.Context) ([]models.CrewStar, error)
}

// CrewService stars crew members and lists starred ones
type CrewService struct {
	stars CrewStarStore
	log   *logger.Logger
}

// NewCrewService creates a new crew service
func NewCrewService(stars CrewStarStore, log *logger.Logger) *CrewService {
	return &CrewService{
		stars: stars,
		log:   log,
	}
}

// Star records a crew member under a nickname. Re-starring the same crew ID
// overwrites the nickname and URLs and refreshes the star timestamp, so the
// call is idempotent.
func (s *CrewService) Star(ctx context.Context, crewID, crewName, nickname string, imageURL, wikipediaURL *string) error {
	if crewID == "" || crewName == "" || nickname == "" {
		return fmt.Errorf("%w: crew_id, crew_name and nickname are required", ErrValidation)
	}

	star := &models.CrewStar{
		CrewID:       crewID,
		CrewName:     crewName,
		Nickname:     nickname,
		ImageURL:     imageURL,
		WikipediaURL: wikipediaURL,
	}

	if err := s.stars.Upsert(ctx, star); err != nil {
		return fmt.Errorf("star crew member %s: %w", crewID, err)
	}

	s.log.Info("starred crew member",
		"crew_id", crewID,
		"crew_name", crewName,
		"nickname", nickname,
	)

	return nil
}

// Starred lists all starred crew members, most recent first
func (s *CrewService) Starred(ctx context.Context) ([]models.CrewStar, error) {
	stars, err := s.stars.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list starred crew: %w", err)
	}

	return stars, nil
}
