package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stellarlog/launchdeck/common/config"
	"github.com/stellarlog/launchdeck/common/logger"
)

// DB wraps pgxpool with common operations
type DB struct {
	*pgxpool.Pool
	log *logger.Logger
}

// New creates a new database connection pool
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*DB, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	// Configure connection pool
	poolConfig.MaxConns = int32(cfg.Database.MaxConns)
	poolConfig.MinConns = int32(cfg.Database.MinConns)
	poolConfig.MaxConnLifetime = cfg.Database.MaxLifetime
	poolConfig.MaxConnIdleTime = cfg.Database.MaxIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	// Test connection
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Info("database connected", "host", cfg.Database.Host, "db", cfg.Database.Database)

	return &DB{
		Pool: pool,
		log:  log,
	}, nil
}

// Close closes the database connection pool
func (db *DB) Close() {
	db.log.Info("closing database connection pool")
	db.Pool.Close()
}

// Health checks database health
func (db *DB) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return db.Pool.Ping(ctx)
}

// EnsureDatabase creates the application database when it does not exist.
// It connects to the maintenance database because CREATE DATABASE cannot
// run against a database that is not there yet.
func EnsureDatabase(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	conn, err := pgx.Connect(ctx, cfg.MaintenanceURL())
	if err != nil {
		return fmt.Errorf("connect to maintenance database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)`,
		cfg.Database.Database,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check database existence: %w", err)
	}

	if exists {
		return nil
	}

	// Database names cannot be bound as parameters; the name comes from
	// trusted configuration, not request input.
	if _, err := conn.Exec(ctx, fmt.Sprintf(`CREATE DATABASE %q`, cfg.Database.Database)); err != nil {
		return fmt.Errorf("create database %s: %w", cfg.Database.Database, err)
	}

	log.Info("created database", "db", cfg.Database.Database)
	return nil
}

// Migrate creates the launchdeck tables when absent. Safe to run on every
// startup and before every sync run.
func Migrate(ctx context.Context, db *DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS crew_stars (
			id            UUID PRIMARY KEY,
			crew_id       TEXT NOT NULL UNIQUE,
			crew_name     TEXT NOT NULL,
			nickname      TEXT NOT NULL,
			image_url     TEXT,
			wikipedia_url TEXT,
			starred_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS rockets (
			id               TEXT PRIMARY KEY,
			name             TEXT NOT NULL,
			description      TEXT,
			height_meters    NUMERIC(10, 2),
			mass_kg          BIGINT,
			first_flight     DATE,
			cost_per_launch  BIGINT,
			success_rate_pct NUMERIC(5, 2),
			active           BOOLEAN NOT NULL DEFAULT FALSE,
			stages           INT,
			boosters         INT,
			wikipedia_url    TEXT,
			created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_crew_stars_starred_at ON crew_stars (starred_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_rockets_name ON rockets (name)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("run migration: %w", err)
		}
	}

	return nil
}
