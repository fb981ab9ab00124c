// Package store selects the backing data source at process startup. It
// makes exactly one attempt to reach the database; on failure the process
// serves the fixed in-memory dataset instead of refusing to start. The
// chosen mode never changes for the lifetime of the process; there is no
// background retry and no failback.
package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/limkokwing/luct-reporting/internal/core/ports"
	"github.com/limkokwing/luct-reporting/internal/infrastructure/db/memory"
	"github.com/limkokwing/luct-reporting/internal/infrastructure/db/postgres"
)

const (
	ModeLive = "live"
	ModeMock = "mock"
)

// Store is the process-wide handle to whichever data source is active.
// Consumers depend only on the repository ports; Live exists for the
// health endpoint and startup logging.
type Store struct {
	Live    bool
	Users   ports.UserRepository
	Reports ports.ReportRepository
	Catalog ports.CatalogRepository

	pool *pgxpool.Pool
}

// Open attempts the database connection once (pool creation, liveness
// probe, schema bootstrap) and falls back to the fixed mock dataset on any
// failure. Initialization failure is fatal to live mode only, never to the
// process.
func Open(ctx context.Context, cfg postgres.Config, log zerolog.Logger) *Store {
	pool, err := postgres.Connect(ctx, cfg)
	if err == nil {
		err = postgres.Bootstrap(ctx, pool)
		if err != nil {
			pool.Close()
		}
	}
	if err != nil {
		log.Warn().Err(err).Msg("database unreachable, serving mock data")
		mock := memory.NewStore()
		return &Store{
			Live:    false,
			Users:   mock.Users(),
			Reports: mock.Reports(),
			Catalog: mock.Catalog(),
		}
	}

	log.Info().Msg("database connected")
	return &Store{
		Live:    true,
		Users:   postgres.NewUserRepository(pool),
		Reports: postgres.NewReportRepository(pool),
		Catalog: postgres.NewCatalogRepository(pool),
		pool:    pool,
	}
}

// Mode reports the active data source as exposed by the health endpoint.
func (s *Store) Mode() string {
	if s.Live {
		return ModeLive
	}
	return ModeMock
}

// Ping verifies the pool is still reachable. Always nil in mock mode.
func (s *Store) Ping(ctx context.Context) error {
	if s.pool == nil {
		return nil
	}
	return s.pool.Ping(ctx)
}

// Close releases the pool in live mode.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
