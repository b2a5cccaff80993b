package models

import "encoding/json"

// MessageResponse is the body returned by endpoints that confirm an
// action with a human-readable message (signup, recipient registration).
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is the body returned on successful login: a welcome
// message containing the username, plus a signed session token.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// ErrorResponse is the generic failure body used by all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// PaymentResponse is the body returned by the payment endpoint. On
// success Response carries the provider's raw JSON verbatim; on failure
// Error carries the provider's message.
type PaymentResponse struct {
	Success  bool            `json:"success"`
	Response json.RawMessage `json:"response,omitempty"`
	Error    string          `json:"error,omitempty"`
}
