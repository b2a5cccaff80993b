package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/foodbridge/food-bridge/internal/service"
	"github.com/foodbridge/food-bridge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockMatchService struct {
	matchFn func(ctx context.Context) ([]models.Match, error)
}

func (m *mockMatchService) MatchFoods(ctx context.Context) ([]models.Match, error) {
	return m.matchFn(ctx)
}

func TestAIMatch_Success(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		MatchService: &mockMatchService{
			matchFn: func(ctx context.Context) ([]models.Match, error) {
				return []models.Match{
					{Recipient: "Shelter A", Score: 87, Food: models.MatchedFood{Name: "bread"}},
				}, nil
			},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/ai-match", nil)
	rr := httptest.NewRecorder()

	h.aiMatch(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var body []models.Match
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Shelter A", body[0].Recipient)
	assert.Equal(t, 87, body[0].Score)
	assert.Equal(t, "bread", body[0].Food.Name)
}

func TestAIMatch_NothingToMatch(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		MatchService: &mockMatchService{
			matchFn: func(ctx context.Context) ([]models.Match, error) {
				return nil, service.ErrNothingToMatch
			},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/ai-match", nil)
	rr := httptest.NewRecorder()

	h.aiMatch(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "No foods or recipients available", decodeError(t, rr).Error)
}

func TestAIMatch_UnexpectedError(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		MatchService: &mockMatchService{
			matchFn: func(ctx context.Context) ([]models.Match, error) {
				return nil, errors.New("oracle unreachable")
			},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/ai-match", nil)
	rr := httptest.NewRecorder()

	h.aiMatch(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "AI matching failed", decodeError(t, rr).Error)
}
