package service

import (
	"context"
	"encoding/json"

	"github.com/foodbridge/food-bridge/models"
)

// AuthService handles account creation, credential verification, and
// session token issuance.
type AuthService interface {
	// Register hashes the user's password and persists the account.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login verifies credentials against the stored digest. It returns
	// store.ErrNoUserWasFound for an unknown email and ErrWrongPassword
	// for a digest mismatch; callers must keep the two distinguishable.
	Login(ctx context.Context, email, password string) (models.User, error)

	// CreateToken issues a signed session token for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
}

// RecipientService handles recipient registration and listing.
type RecipientService interface {
	// Register validates that all four required fields are non-empty and
	// persists the recipient. Returns ErrInvalidDataProvided otherwise.
	Register(ctx context.Context, recipient models.Recipient) (models.Recipient, error)

	// List returns every registered recipient.
	List(ctx context.Context) ([]models.Recipient, error)
}

// FoodService exposes the read-only surplus food inventory.
type FoodService interface {
	// List returns every available food item.
	List(ctx context.Context) ([]models.Food, error)
}

// PaymentService initiates mobile-money charges through the collection
// gateway.
type PaymentService interface {
	// Charge requests a push payment and returns the provider's raw
	// response body on success.
	Charge(ctx context.Context, amount float64, phone string) (json.RawMessage, error)
}

// MatchService produces the per-food best-recipient pairing.
type MatchService interface {
	// MatchFoods scores every (food, recipient) pair through the oracle
	// and returns, in food order, the best pairing for each food that
	// produced at least one usable score. Returns ErrNothingToMatch when
	// either set is empty.
	MatchFoods(ctx context.Context) ([]models.Match, error)
}
