package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/foodbridge/food-bridge/internal/logger"
	"github.com/foodbridge/food-bridge/internal/service"
	"github.com/foodbridge/food-bridge/internal/store"
	"github.com/foodbridge/food-bridge/internal/utils"
	"github.com/foodbridge/food-bridge/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if _, err := h.services.AuthService.Register(ctx, user); err != nil {
		log.Err(err).Msg("unexpected error occurred during user signup")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Database error"}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "User created!"}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user.Email, user.Password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Str("email", user.Email).Msg("no user was found")
			utils.WriteJSON(w, models.ErrorResponse{Error: "User not found"}, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Str("email", user.Email).Msg("wrong password")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid password"}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSON(w, models.ErrorResponse{Error: "Database error"}, http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Str("email", foundUser.Email).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Message: fmt.Sprintf("Welcome %s!", foundUser.Username),
		Token:   token.SignedString,
	}, http.StatusOK)
}
