package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/foodbridge/food-bridge/internal/logger"
	"github.com/foodbridge/food-bridge/internal/service"
	"github.com/foodbridge/food-bridge/internal/utils"
	"github.com/foodbridge/food-bridge/models"
)

func (h *Handler) registerRecipient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var recipient models.Recipient
	if err := json.NewDecoder(r.Body).Decode(&recipient); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	created, err := h.services.RecipientService.Register(ctx, recipient)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("recipient registration rejected: missing fields")
			utils.WriteJSON(w, models.ErrorResponse{Error: "All fields are required"}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during recipient registration")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Database error while registering recipient"}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{
		Message: fmt.Sprintf("Recipient %s registered successfully!", created.Name),
	}, http.StatusCreated)
}

func (h *Handler) listRecipients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	recipients, err := h.services.RecipientService.List(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during recipient listing")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Failed to fetch recipients"}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, recipients, http.StatusOK)
}
