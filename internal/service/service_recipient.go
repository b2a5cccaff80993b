package service

import (
	"context"
	"fmt"

	"github.com/foodbridge/food-bridge/internal/logger"
	"github.com/foodbridge/food-bridge/internal/store"
	"github.com/foodbridge/food-bridge/models"
)

// recipientService is the concrete implementation of RecipientService.
type recipientService struct {
	recipientRepository store.RecipientRepository
	logger              *logger.Logger
}

// NewRecipientService constructs a RecipientService over the given
// repository.
func NewRecipientService(recipientRepository store.RecipientRepository, logger *logger.Logger) RecipientService {
	return &recipientService{
		recipientRepository: recipientRepository,
		logger:              logger,
	}
}

// Register validates and persists a recipient. All four of name, email,
// phone, and address must be non-empty; there is no further consistency
// checking in scope.
func (s *recipientService) Register(ctx context.Context, recipient models.Recipient) (models.Recipient, error) {
	log := logger.FromContext(ctx)

	if recipient.Name == "" || recipient.Email == "" || recipient.Phone == "" || recipient.Address == "" {
		log.Error().Any("recipient", recipient).Msg("recipient registration missing required fields")
		return models.Recipient{}, ErrInvalidDataProvided
	}

	created, err := s.recipientRepository.CreateRecipient(ctx, recipient)
	if err != nil {
		log.Err(err).Str("name", recipient.Name).Msg("recipient creation ended with error")
		return models.Recipient{}, fmt.Errorf("recipient creation ended with error: %w", err)
	}

	return created, nil
}

// List returns every registered recipient.
func (s *recipientService) List(ctx context.Context) ([]models.Recipient, error) {
	recipients, err := s.recipientRepository.GetAllRecipients(ctx)
	if err != nil {
		return nil, fmt.Errorf("recipient listing ended with error: %w", err)
	}

	return recipients, nil
}
