package app

import (
	"context"
	"errors"
	"log"
	"time"

	"jobmatch/internal/config"
	"jobmatch/internal/database"
	"jobmatch/internal/database/migration"
	dbpostgres "jobmatch/internal/database/postgres"
	"jobmatch/internal/database/seeder"
	"jobmatch/internal/domain/matching"
	"jobmatch/internal/infrastructure/cache"
	"jobmatch/internal/pkg/jwt"
	"jobmatch/internal/repository"
	"jobmatch/internal/usecase"
	"jobmatch/internal/ws"
	"jobmatch/migrations"
)

// Container holds the long-lived dependencies of the HTTP service.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Scorer *matching.Scorer
	JWT    jwt.Service

	Matching        *usecase.Matching
	Recommendations *usecase.JobRecommendation
	Preferences     *usecase.Preferences

	stopHub context.CancelFunc
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	scorer, err := config.NewScorer(cfg.Matching)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.Database.RunMigrations {
		if err := (migration.Runner{FS: migrations.FS, Logger: logger}).Run(ctx, db.SQLDB()); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if cfg.Database.RunSeeders {
		if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		logger.Printf("[Seed] demo data applied")
	}

	return NewContainerFrom(cfg, logger, db, cache.NewRedis(cfg.Redis, logger), scorer), nil
}

// NewContainerFrom wires usecases over an existing database and cache.
func NewContainerFrom(cfg config.Config, logger *log.Logger, db database.DB, rc *cache.Redis, scorer *matching.Scorer) *Container {
	hub := ws.NewHub(logger)
	hubCtx, stopHub := context.WithCancel(context.Background())
	go hub.Run(hubCtx)

	jobRepo := repository.NewPostgresJobRepository(db)
	prefsRepo := repository.NewPostgresPreferencesRepository(db)

	c := &Container{
		Config:  cfg,
		Logger:  logger,
		DB:      db,
		Cache:   rc,
		Hub:     hub,
		Scorer:  scorer,
		JWT:     jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiresIn),
		stopHub: stopHub,
	}

	c.Matching = usecase.NewMatchingUsecase(jobRepo, prefsRepo, scorer)
	c.Recommendations = usecase.NewJobRecommendationUsecase(jobRepo, prefsRepo, scorer, rc, usecase.JobRecommendationOptions{
		Workers:           cfg.Matching.Workers,
		DefaultLimit:      cfg.Matching.RecommendationLimit,
		CandidatePoolSize: cfg.Matching.CandidatePoolSize,
		CacheTTL:          cfg.Redis.TTL,
	}, logger)
	c.Preferences = usecase.NewPreferencesUsecase(prefsRepo, rc, hub, logger)

	return c
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.stopHub != nil {
		c.stopHub()
	}

	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
