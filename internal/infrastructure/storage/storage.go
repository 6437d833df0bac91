// Package storage opens the entity store selected by configuration.
package storage

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/aspyra/jobboard-api/config"
	"github.com/aspyra/jobboard-api/internal/domain/repository"
	"github.com/aspyra/jobboard-api/internal/infrastructure/memory"
	mongoinfra "github.com/aspyra/jobboard-api/internal/infrastructure/mongo"
	pginfra "github.com/aspyra/jobboard-api/internal/infrastructure/postgres"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Repositories groups the stores used by the services.
type Repositories struct {
	Users        repository.UserRepository
	Jobs         repository.JobRepository
	Applications repository.ApplicationRepository
	Companies    repository.CompanyRepository

	closer func()
}

// Close releases the underlying connection, if any.
func (r *Repositories) Close() {
	if r != nil && r.closer != nil {
		r.closer()
	}
}

// NewMemory returns empty in-process stores.
func NewMemory() *Repositories {
	return &Repositories{
		Users:        memory.NewUserRepository(),
		Jobs:         memory.NewJobRepository(),
		Applications: memory.NewApplicationRepository(),
		Companies:    memory.NewCompanyRepository(),
	}
}

// Open connects to the store named by cfg.StoreDriver.
func Open(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Repositories, error) {
	switch cfg.StoreDriver {
	case DriverMongo:
		return openMongo(ctx, cfg, logger)
	case DriverPostgres:
		return openPostgres(ctx, cfg, logger)
	case DriverMemory:
		logger.Warn("using in-memory store; data is lost on restart")
		return NewMemory(), nil
	}
	return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
}

func openMongo(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Repositories, error) {
	client, err := mongoinfra.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	db := client.Database(cfg.MongoDatabase)
	if err := mongoinfra.EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}
	logger.WithField("database", cfg.MongoDatabase).Info("connected to mongo")
	return &Repositories{
		Users:        mongoinfra.NewUserRepository(db),
		Jobs:         mongoinfra.NewJobRepository(db),
		Applications: mongoinfra.NewApplicationRepository(db),
		Companies:    mongoinfra.NewCompanyRepository(db),
		closer:       func() { _ = client.Disconnect(context.Background()) },
	}, nil
}

func openPostgres(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*Repositories, error) {
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.AppName, cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	logger.WithField("database", cfg.DBName).Info("connected to postgres")
	return &Repositories{
		Users:        pginfra.NewUserRepository(pool),
		Jobs:         pginfra.NewJobRepository(pool),
		Applications: pginfra.NewApplicationRepository(pool),
		Companies:    pginfra.NewCompanyRepository(pool),
		closer:       pool.Close,
	}, nil
}
