package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	config "github.com/maheshrc27/postplanner/configs"
	"github.com/maheshrc27/postplanner/internal/repository"
	"github.com/maheshrc27/postplanner/internal/service"
)

// commandContext carries lazily opened dependencies shared by subcommands.
type commandContext struct {
	userID *int64
	cfg    *config.Config
	store  service.PostStore
	now    func() time.Time
	close  func() error
}

func newCommandContext(userID *int64) *commandContext {
	return &commandContext{userID: userID, now: time.Now}
}

func (c *commandContext) ensureConfig() *config.Config {
	if c.cfg == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: Failed to load environment variables", err)
		}
		c.cfg = config.LoadConfig()
	}
	return c.cfg
}

func (c *commandContext) ensureStore(ctx context.Context) (service.PostStore, error) {
	if c.store != nil {
		return c.store, nil
	}

	cfg := c.ensureConfig()
	if cfg.PostgresURI == "" {
		return nil, fmt.Errorf("POSTGRES_URI is not set")
	}
	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database is unreachable: %w", err)
	}

	c.store = repository.NewEventStore(db,
		repository.NewPostRepository(db),
		repository.NewPostMediaRepository(db),
		repository.NewPillarRepository(db))
	c.close = db.Close
	return c.store, nil
}

func (c *commandContext) requireUser() (int64, error) {
	if c.userID == nil || *c.userID == 0 {
		return 0, fmt.Errorf("--user is required")
	}
	return *c.userID, nil
}

func (c *commandContext) scheduleService(ctx context.Context) (service.ScheduleService, error) {
	store, err := c.ensureStore(ctx)
	if err != nil {
		return nil, err
	}
	return service.NewScheduleService(store, nil, nil, service.WithClock(c.now)), nil
}

func (c *commandContext) shutdown() {
	if c.close != nil {
		c.close()
		c.close = nil
	}
}
