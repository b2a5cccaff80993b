package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/foodbridge/food-bridge/internal/config"
	"github.com/go-resty/resty/v2"
)

// stkPushPath is the IntaSend collection endpoint for M-Pesa STK pushes.
const stkPushPath = "/api/v1/payment/mpesa-stk-push/"

// stkPushRequest is the collection request body. The publishable key rides
// in the body; the secret key is the bearer credential.
type stkPushRequest struct {
	PublicKey   string  `json:"public_key"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	PhoneNumber string  `json:"phone_number"`
}

// paymentErrorBody is the subset of the gateway's error response we need to
// surface a message from.
type paymentErrorBody struct {
	Detail string `json:"detail"`
	Errors []struct {
		Detail string `json:"detail"`
	} `json:"errors"`
}

type intaSendClient struct {
	client    *resty.Client
	publicKey string
	currency  string
}

// NewIntaSendClient constructs a [PaymentClient] for the IntaSend collection
// API described by cfg.
func NewIntaSendClient(cfg config.Payment) PaymentClient {
	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(30 * time.Second).
		SetAuthToken(cfg.PrivateKey)

	return &intaSendClient{
		client:    cli,
		publicKey: cfg.PublicKey,
		currency:  cfg.Currency,
	}
}

// Charge implements [PaymentClient]. Gateway errors are surfaced with the
// provider's own message when one can be extracted from the body.
func (c *intaSendClient) Charge(ctx context.Context, amount float64, phone string) (json.RawMessage, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(stkPushRequest{
			PublicKey:   c.publicKey,
			Amount:      amount,
			Currency:    c.currency,
			PhoneNumber: phone,
		}).
		Post(stkPushPath)
	if err != nil {
		return nil, fmt.Errorf("payment request: %w", err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("payment gateway: %s", paymentErrorMessage(resp))
	}

	return json.RawMessage(resp.Body()), nil
}

// paymentErrorMessage pulls a human-readable message out of a failed gateway
// response, falling back to the raw body and then the status text.
func paymentErrorMessage(resp *resty.Response) string {
	var body paymentErrorBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		if body.Detail != "" {
			return body.Detail
		}
		if len(body.Errors) > 0 && body.Errors[0].Detail != "" {
			return body.Errors[0].Detail
		}
	}

	if raw := strings.TrimSpace(string(resp.Body())); raw != "" {
		return raw
	}
	return http.StatusText(resp.StatusCode())
}
