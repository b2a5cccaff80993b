package http

import (
	"errors"
	"net/http"

	"github.com/foodbridge/food-bridge/internal/logger"
	"github.com/foodbridge/food-bridge/internal/service"
	"github.com/foodbridge/food-bridge/internal/utils"
	"github.com/foodbridge/food-bridge/models"
)

func (h *Handler) aiMatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	matches, err := h.services.MatchService.MatchFoods(ctx)
	if err != nil {
		if errors.Is(err, service.ErrNothingToMatch) {
			log.Info().Msg("no foods or recipients available for matching")
			utils.WriteJSON(w, models.ErrorResponse{Error: "No foods or recipients available"}, http.StatusBadRequest)
			return
		}

		log.Err(err).Msg("unexpected error occurred during matching")
		utils.WriteJSON(w, models.ErrorResponse{Error: "AI matching failed"}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, matches, http.StatusOK)
}
