package service

import (
	"github.com/foodbridge/food-bridge/internal/adapter"
	"github.com/foodbridge/food-bridge/internal/config"
	"github.com/foodbridge/food-bridge/internal/logger"
	"github.com/foodbridge/food-bridge/internal/store"
)

// Services bundles every application service for injection into the
// transport layer.
type Services struct {
	AuthService      AuthService
	RecipientService RecipientService
	FoodService      FoodService
	PaymentService   PaymentService
	MatchService     MatchService
}

// Adapters bundles the outbound third-party clients the services depend on.
// They are constructed once at startup and injected here so tests can
// substitute fakes.
type Adapters struct {
	Payment adapter.PaymentClient
	Oracle  adapter.OracleClient
}

// NewServices wires all services to their repositories and outbound clients.
func NewServices(storages *store.Storages, adapters Adapters, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, cfg.App, logger),
		RecipientService: NewRecipientService(storages.RecipientRepository, logger),
		FoodService:      NewFoodService(storages.FoodRepository, logger),
		PaymentService:   NewPaymentService(adapters.Payment, logger),
		MatchService:     NewMatchService(storages.FoodRepository, storages.RecipientRepository, adapters.Oracle, cfg.Oracle, logger),
	}
}
