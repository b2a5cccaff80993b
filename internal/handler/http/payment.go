package http

import (
	"encoding/json"
	"net/http"

	"github.com/foodbridge/food-bridge/internal/logger"
	"github.com/foodbridge/food-bridge/internal/utils"
	"github.com/foodbridge/food-bridge/models"
)

// payRequest is the inbound payment body: an amount and the phone number
// to push the mobile-money charge to.
type payRequest struct {
	Amount float64 `json:"amount"`
	Phone  string  `json:"phone"`
}

func (h *Handler) pay(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req payRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.PaymentResponse{Success: false, Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	response, err := h.services.PaymentService.Charge(ctx, req.Amount, req.Phone)
	if err != nil {
		log.Err(err).Float64("amount", req.Amount).Str("phone", req.Phone).Msg("payment failed")
		utils.WriteJSON(w, models.PaymentResponse{Success: false, Error: err.Error()}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.PaymentResponse{Success: true, Response: response}, http.StatusOK)
}
