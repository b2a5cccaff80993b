package models

// Recipient represents an organisation or person registered to receive
// surplus food donations. Name, Email, Phone and Address are required at
// registration time; Capacity is optional and may be absent in the row.
type Recipient struct {
	// RecipientID is the internal unique identifier of the recipient.
	RecipientID int64 `json:"id,omitempty"`

	// Name is the recipient's display name, used in match results and
	// registration confirmations.
	Name string `json:"name"`

	// Email is the recipient's contact email.
	Email string `json:"email"`

	// Phone is the recipient's contact phone number.
	Phone string `json:"phone"`

	// Address is the recipient's physical location, embedded into the
	// matching prompt as the delivery target.
	Address string `json:"address"`

	// Capacity is how many portions the recipient can absorb.
	// Nil when the row does not specify one.
	Capacity *int64 `json:"capacity,omitempty"`
}

// TableName returns the name of the database table
// associated with the Recipient model.
func (r Recipient) TableName() string {
	return "recipients"
}
