package adapter

import (
	"context"
	"encoding/json"
)

// PaymentClient requests mobile-money charges from the collection gateway.
type PaymentClient interface {
	// Charge initiates a push payment of amount against the given phone
	// number in the gateway's fixed currency. The provider's JSON body is
	// returned verbatim on success. There is no idempotency key and no
	// retry; a failed attempt leaves no local record.
	Charge(ctx context.Context, amount float64, phone string) (json.RawMessage, error)
}

// OracleClient rates a natural-language prompt through the language-model
// completion API. The raw completion text is returned untouched; score
// extraction is the caller's concern.
type OracleClient interface {
	// Score sends prompt as a single user message and returns the model's
	// reply text. An empty reply is returned as "".
	Score(ctx context.Context, prompt string) (string, error)
}
