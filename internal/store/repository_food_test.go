package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/foodbridge/food-bridge/internal/logger"
)

func newTestFoodRepo(t *testing.T) (*foodRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &foodRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestGetAllFoods_MixedNullability(t *testing.T) {
	repo, mock, db := newTestFoodRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"food_id", "name", "quantity", "urgency"}).
		AddRow(1, "bread", 12, "high").
		AddRow(2, "rice", nil, nil)

	mock.ExpectQuery("SELECT (.+) FROM foods").
		WillReturnRows(rows)

	foods, err := repo.GetAllFoods(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(foods) != 2 {
		t.Fatalf("expected 2 foods, got %d", len(foods))
	}
	if foods[0].Quantity == nil || *foods[0].Quantity != 12 {
		t.Errorf("expected quantity 12 for first food, got %v", foods[0].Quantity)
	}
	if foods[0].Urgency == nil || *foods[0].Urgency != "high" {
		t.Errorf("expected urgency high for first food, got %v", foods[0].Urgency)
	}
	if foods[1].Quantity != nil || foods[1].Urgency != nil {
		t.Errorf("expected nil quantity/urgency for second food, got %+v", foods[1])
	}
}

func TestGetAllFoods_Empty(t *testing.T) {
	repo, mock, db := newTestFoodRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"food_id", "name", "quantity", "urgency"})

	mock.ExpectQuery("SELECT (.+) FROM foods").
		WillReturnRows(rows)

	foods, err := repo.GetAllFoods(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(foods) != 0 {
		t.Fatalf("expected empty result, got %d rows", len(foods))
	}
}

func TestGetAllFoods_QueryError(t *testing.T) {
	repo, mock, db := newTestFoodRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM foods").
		WillReturnError(errors.New("db network error"))

	_, err := repo.GetAllFoods(ctx)
	if err == nil || !strings.Contains(err.Error(), "db network error") {
		t.Fatalf("expected wrapped DB error, got %v", err)
	}
}
