package store

import (
	"context"

	"github.com/foodbridge/food-bridge/models"
)

// UserRepository provides persistence for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. The Password field must already be a digest.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks a user up by the login key.
	// Returns ErrNoUserWasFound when no row matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// RecipientRepository provides persistence for registered recipients.
type RecipientRepository interface {
	// CreateRecipient persists a new recipient row.
	CreateRecipient(ctx context.Context, recipient models.Recipient) (models.Recipient, error)

	// GetAllRecipients returns every recipient row in storage order.
	GetAllRecipients(ctx context.Context) ([]models.Recipient, error)
}

// FoodRepository provides read access to the surplus food inventory.
type FoodRepository interface {
	// GetAllFoods returns every food row in storage order.
	GetAllFoods(ctx context.Context) ([]models.Food, error)
}
