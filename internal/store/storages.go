package store

import (
	"context"
	"fmt"

	"github.com/foodbridge/food-bridge/internal/config"
	"github.com/foodbridge/food-bridge/internal/logger"
)

// Storages bundles every repository plus the shared database handle so the
// composition root can wire services and tear the pool down on shutdown.
type Storages struct {
	UserRepository      UserRepository
	RecipientRepository RecipientRepository
	FoodRepository      FoodRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies pending migrations, and
// constructs all repositories over the shared connection pool.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error running migrations: %w", err)
	}

	return &Storages{
		UserRepository:      NewUserRepository(db, logger),
		RecipientRepository: NewRecipientRepository(db, logger),
		FoodRepository:      NewFoodRepository(db, logger),
		db:                  db,
	}, nil
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
