package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"skill-gap/internal/config"
	"skill-gap/internal/database"
	dbpostgres "skill-gap/internal/database/postgres"
	"skill-gap/internal/domain/document"
	"skill-gap/internal/domain/extraction"
	"skill-gap/internal/domain/learning"
	"skill-gap/internal/domain/taxonomy"
	"skill-gap/internal/infrastructure/cache"
	"skill-gap/internal/repository"
)

type Container struct {
	Config      config.Config
	DB          database.DB
	Cache       *cache.Redis
	Taxonomy    *taxonomy.Taxonomy
	Pipeline    *document.Pipeline
	Extractor   *extraction.Extractor
	Recommender *learning.Recommender
	Logger      *log.Logger
}

// NewContainer connects the stores and loads the skill taxonomy once. The
// taxonomy is immutable for the process lifetime; a restart picks up
// seeded changes.
func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	taxRepo := repository.NewPostgresTaxonomyRepository(db)
	skills, err := taxRepo.LoadSkills(ctx)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("load taxonomy: %w", err)
	}
	tax, err := taxonomy.New(skills)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("build taxonomy: %w", err)
	}
	logger.Printf("[App] taxonomy loaded skills=%d", tax.Len())

	extractor, err := extraction.NewExtractor(tax, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("build extractor: %w", err)
	}

	return &Container{
		Config:      cfg,
		DB:          db,
		Cache:       cache.NewRedis(cfg.Redis, logger),
		Taxonomy:    tax,
		Pipeline:    document.NewPipeline(document.Limits{MaxBytes: cfg.Engine.MaxUploadBytes}, logger),
		Extractor:   extractor,
		Recommender: learning.NewRecommender(tax),
		Logger:      logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
