package models

// Food represents a surplus food item available for redistribution.
// Rows are read-only in this service: no creation endpoint is exposed.
type Food struct {
	// FoodID is the internal unique identifier of the food item.
	FoodID int64 `json:"id,omitempty"`

	// Name describes the food item.
	Name string `json:"name"`

	// Quantity is the number of available portions.
	// Nil when the row does not specify one.
	Quantity *int64 `json:"quantity,omitempty"`

	// Urgency is a free-text urgency label (e.g. "high", "expires today").
	// Nil when the row does not specify one.
	Urgency *string `json:"urgency,omitempty"`
}

// TableName returns the name of the database table
// associated with the Food model.
func (f Food) TableName() string {
	return "foods"
}
