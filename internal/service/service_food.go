package service

import (
	"context"
	"fmt"

	"github.com/foodbridge/food-bridge/internal/logger"
	"github.com/foodbridge/food-bridge/internal/store"
	"github.com/foodbridge/food-bridge/models"
)

// foodService is the concrete implementation of FoodService.
type foodService struct {
	foodRepository store.FoodRepository
	logger         *logger.Logger
}

// NewFoodService constructs a FoodService over the given repository.
func NewFoodService(foodRepository store.FoodRepository, logger *logger.Logger) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		logger:         logger,
	}
}

// List returns every available food item.
func (s *foodService) List(ctx context.Context) ([]models.Food, error) {
	foods, err := s.foodRepository.GetAllFoods(ctx)
	if err != nil {
		return nil, fmt.Errorf("food listing ended with error: %w", err)
	}

	return foods, nil
}
