package models

// MatchedFood is the food portion of a match result. It mirrors the
// food row minus its internal identifier.
type MatchedFood struct {
	Name     string  `json:"name"`
	Quantity *int64  `json:"quantity,omitempty"`
	Urgency  *string `json:"urgency,omitempty"`
}

// Match pairs a food item with its best-scoring recipient.
// Matches are ephemeral: they are computed fresh on every request and
// never persisted.
type Match struct {
	// Recipient is the name of the winning recipient.
	Recipient string `json:"recipient"`

	// Score is the oracle suitability rating, a non-negative integer.
	// Unparseable oracle output yields 0.
	Score int `json:"score"`

	// Food identifies the matched food item.
	Food MatchedFood `json:"food"`
}
