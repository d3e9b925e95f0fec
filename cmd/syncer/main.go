package main

import (
	"context"
	"fmt"
	"os"

	"github.com/stellarlog/launchdeck/cmd/syncer/rockets"
	"github.com/stellarlog/launchdeck/common/bootstrap"
	"github.com/stellarlog/launchdeck/common/clients"
	"github.com/stellarlog/launchdeck/common/db"
	"github.com/stellarlog/launchdeck/common/repository"
)

func main() {
	ctx := context.Background()

	// Bootstrap shares the server's config surface; the schema ensure runs
	// here too so the syncer works against a fresh database.
	components, err := bootstrap.Setup(ctx, "launchdeck-syncer",
		bootstrap.WithDBInitHook(db.Migrate),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap syncer: %v\n", err)
		os.Exit(1)
	}
	defer components.Shutdown(ctx)

	spacex := clients.NewSpaceXClient(components.Config, components.Logger)
	rocketRepo := repository.NewRocketRepository(components.DB)

	syncer := rockets.NewSyncer(spacex, rocketRepo, components.Logger)

	count, err := syncer.Run(ctx)
	if err != nil {
		components.Logger.Error("rocket sync failed", "synced", count, "error", err)
		components.Shutdown(ctx)
		os.Exit(1)
	}

	components.Logger.Info("rocket sync finished", "synced", count)
}
