package http

import (
	"net/http"

	"github.com/foodbridge/food-bridge/internal/logger"
	"github.com/foodbridge/food-bridge/internal/utils"
	"github.com/foodbridge/food-bridge/models"
)

func (h *Handler) listFoods(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	foods, err := h.services.FoodService.List(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during food listing")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Failed to fetch foods"}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, foods, http.StatusOK)
}
