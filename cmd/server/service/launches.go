package service

import (
	"context"
	"fmt"

	"github.com/stellarlog/launchdeck/common/logger"
	"github.com/stellarlog/launchdeck/common/models"
)

// DefaultPerPage is the launch page size when the caller does not pick one
const DefaultPerPage = 5

// LaunchSource is the slice of the upstream API the launch browser needs
type LaunchSource interface {
	Launches(ctx context.Context) ([]models.Launch, error)
	Launch(ctx context.Context, id string) (*models.Launch, error)
	CrewMember(ctx context.Context, id string) (*models.CrewMember, error)
}

// LaunchService paginates the launch collection and resolves launch detail.
// The upstream has no server-side pagination, so every Browse call fetches
// the full collection and slices it locally.
type LaunchService struct {
	source LaunchSource
	log    *logger.Logger
}

// NewLaunchService creates a new launch service
func NewLaunchService(source LaunchSource, log *logger.Logger) *LaunchService {
	return &LaunchService{
		source: source,
		log:    log,
	}
}

// Browse returns one page of the launch collection. An out-of-range page
// yields an empty slice, not an error; a failed upstream fetch yields an
// error and no partial data.
func (s *LaunchService) Browse(ctx context.Context, page, perPage int) (*models.PageResult, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	all, err := s.source.Launches(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch launches: %w", err)
	}

	total := len(all)
	totalPages := (total + perPage - 1) / perPage

	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &models.PageResult{
		Launches:   all[start:end],
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}, nil
}

// Detail returns a launch and its crew members, resolved one by one in the
// order the launch lists them. Crew resolution is best-effort: the loop
// stops at the first failed fetch and the members resolved so far are
// returned, so a flaky crew endpoint never takes down the detail view.
func (s *LaunchService) Detail(ctx context.Context, id string) (*models.Launch, []models.CrewMember, error) {
	launch, err := s.source.Launch(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch launch %s: %w", id, err)
	}

	crew := make([]models.CrewMember, 0, len(launch.Crew))
	for _, crewID := range launch.Crew {
		member, err := s.source.CrewMember(ctx, crewID)
		if err != nil {
			s.log.Warn("crew member fetch failed, returning partial crew list",
				"launch_id", id,
				"crew_id", crewID,
				"error", err,
			)
			break
		}
		crew = append(crew, *member)
	}

	return launch, crew, nil
}
