package types

import "time"

// Ticket states. The state column is constrained to these two values
// at the database level; the API layer treats the value as opaque.
const (
	TicketStateOpen   = "a"
	TicketStateClosed = "f"
)

// Ticket represents a support request ("chamado") opened by a user.
type Ticket struct {
	// ID is the unique identifier of the ticket, assigned by the database.
	ID int `json:"id" db:"id"`

	// OwnerUserID is the identifier of the user that opened the ticket.
	// It must reference an existing user; the foreign-key constraint
	// enforces this, not the API layer.
	OwnerUserID int `json:"owner_user_id" db:"owner_user_id"`

	// Text is the free-form description of the request.
	Text string `json:"text" db:"text"`

	// State is the lifecycle state of the ticket: "a" (aberto/open)
	// or "f" (fechado/closed).
	State string `json:"state" db:"state"`

	// ImageURL optionally points at an externally hosted screenshot or
	// attachment. Nil when the ticket carries no image.
	ImageURL *string `json:"image_url" db:"image_url"`

	// CreatedAt is the timestamp at which the ticket was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// UpdatedAt is the timestamp of the most recent write to the ticket.
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// TicketPatch carries a partial update. Nil fields are left untouched
// by the storage layer (merge semantics: the UPDATE coalesces each nil
// parameter against the stored column value).
type TicketPatch struct {
	OwnerUserID *int    `json:"owner_user_id"`
	Text        *string `json:"text"`
	State       *string `json:"state"`
	ImageURL    *string `json:"image_url"`
}

// Empty reports whether the patch carries no fields at all.
func (p TicketPatch) Empty() bool {
	return p.OwnerUserID == nil && p.Text == nil && p.State == nil && p.ImageURL == nil
}
