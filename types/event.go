package types

import "time"

// Ticket event names published to the message bus after successful writes.
const (
	EventTicketCreated = "chamado.criado"
	EventTicketUpdated = "chamado.atualizado"
	EventTicketDeleted = "chamado.removido"
)

// TicketEvent is the payload published for every ticket lifecycle change.
// Consumers (e.g. the notification worker) receive it as JSON.
type TicketEvent struct {
	// Event is one of the Event* constants.
	Event string `json:"event"`

	// TicketID identifies the affected ticket. Always set, including for
	// deletions, where Ticket itself is absent.
	TicketID int `json:"ticket_id"`

	// Ticket is the row after the write. Nil for deletions.
	Ticket *Ticket `json:"ticket,omitempty"`

	// OccurredAt is the publish timestamp.
	OccurredAt time.Time `json:"occurred_at"`
}
