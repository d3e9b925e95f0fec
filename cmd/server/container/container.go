package container

import (
	"github.com/stellarlog/launchdeck/cmd/server/service"
	"github.com/stellarlog/launchdeck/common/bootstrap"
	"github.com/stellarlog/launchdeck/common/clients"
	"github.com/stellarlog/launchdeck/common/repository"
)

// Container holds all initialized services and repositories (singleton pattern)
type Container struct {
	// Components
	Components *bootstrap.Components
	SpaceX     *clients.SpaceXClient

	// Repositories
	CrewStarRepo *repository.CrewStarRepository
	RocketRepo   *repository.RocketRepository

	// Services
	LaunchService *service.LaunchService
	CrewService   *service.CrewService
	RocketService *service.RocketService
}

// NewContainer initializes all services and repositories once
func NewContainer(components *bootstrap.Components) (*Container, error) {
	spacex := clients.NewSpaceXClient(components.Config, components.Logger)

	// Initialize repositories
	crewStarRepo := repository.NewCrewStarRepository(components.DB)
	rocketRepo := repository.NewRocketRepository(components.DB)

	// Initialize services (bottom-up: dependencies first)
	launchService := service.NewLaunchService(spacex, components.Logger)
	crewService := service.NewCrewService(crewStarRepo, components.Logger)
	rocketService := service.NewRocketService(rocketRepo, components.Logger)

	return &Container{
		Components:    components,
		SpaceX:        spacex,
		CrewStarRepo:  crewStarRepo,
		RocketRepo:    rocketRepo,
		LaunchService: launchService,
		CrewService:   crewService,
		RocketService: rocketService,
	}, nil
}
