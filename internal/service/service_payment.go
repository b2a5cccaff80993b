package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/foodbridge/food-bridge/internal/adapter"
	"github.com/foodbridge/food-bridge/internal/logger"
)

// paymentService is the concrete implementation of PaymentService. It is a
// thin pass-through to the collection gateway: no idempotency key, no
// retry, no local record of the attempt.
type paymentService struct {
	paymentClient adapter.PaymentClient
	logger        *logger.Logger
}

// NewPaymentService constructs a PaymentService over the given gateway
// client.
func NewPaymentService(paymentClient adapter.PaymentClient, logger *logger.Logger) PaymentService {
	return &paymentService{
		paymentClient: paymentClient,
		logger:        logger,
	}
}

// Charge requests a mobile-money push payment. The gateway's raw JSON
// response is returned verbatim; on failure the gateway's message stays
// visible in the returned error.
func (s *paymentService) Charge(ctx context.Context, amount float64, phone string) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	response, err := s.paymentClient.Charge(ctx, amount, phone)
	if err != nil {
		log.Err(err).Float64("amount", amount).Str("phone", phone).Msg("payment charge failed")
		return nil, fmt.Errorf("payment charge failed: %w", err)
	}

	log.Info().Float64("amount", amount).Str("phone", phone).Msg("payment charge accepted")
	return response, nil
}
