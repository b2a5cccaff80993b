package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/foodbridge/food-bridge/internal/logger"
	"github.com/foodbridge/food-bridge/models"
)

// foodRepository is the PostgreSQL-backed implementation of [FoodRepository]
// for the "foods" table. Foods are read-only in this service; rows are
// seeded out of band.
type foodRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFoodRepository constructs a [FoodRepository] backed by the provided
// database connection and logger.
func NewFoodRepository(db *DB, logger *logger.Logger) FoodRepository {
	logger.Debug().Msg("creating food repository")
	return &foodRepository{
		db:     db,
		logger: logger,
	}
}

// GetAllFoods returns every food row ordered by primary key. This order is
// also the order the matching engine emits matches in.
func (r *foodRepository) GetAllFoods(ctx context.Context) ([]models.Food, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectAllFoods().ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building foods query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*foodRepository.GetAllFoods").Msg("error: query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	foods := make([]models.Food, 0)
	for rows.Next() {
		var food models.Food
		var quantity sql.NullInt64
		var urgency sql.NullString

		if err := rows.Scan(&food.FoodID, &food.Name, &quantity, &urgency); err != nil {
			log.Err(err).Str("func", "*foodRepository.GetAllFoods").Msg("error: scanning error")
			return nil, err
		}
		if quantity.Valid {
			food.Quantity = &quantity.Int64
		}
		if urgency.Valid {
			food.Urgency = &urgency.String
		}

		foods = append(foods, food)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*foodRepository.GetAllFoods").Msg("error: rows iteration error")
		return nil, err
	}

	return foods, nil
}
