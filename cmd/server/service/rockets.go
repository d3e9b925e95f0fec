package service

import (
	"context"
	"fmt"

	"github.com/stellarlog/launchdeck/common/logger"
	"github.com/stellarlog/launchdeck/common/models"
)

// RocketStore is the persistence surface the rocket service needs
type RocketStore interface {
	List(ctx context.Context) ([]models.Rocket, error)
}

// RocketService reads the locally mirrored rocket records. The mirror is
// written only by the syncer binary; this path is read-only.
type RocketService struct {
	rockets RocketStore
	log     *logger.Logger
}

// NewRocketService creates a new rocket service
func NewRocketService(rockets RocketStore, log *logger.Logger) *RocketService {
	return &RocketService{
		rockets: rockets,
		log:     log,
	}
}

// List returns all mirrored rockets ordered by name
func (s *RocketService) List(ctx context.Context) ([]models.Rocket, error) {
	rockets, err := s.rockets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rockets: %w", err)
	}

	return rockets, nil
}
