package domain

import "time"

// TicketPool is the inventory counter and pricing policy for one event.
// Exactly one pool exists per event; it is created in the same transaction
// as the event and mutated only through reservation operations.
// Invariant: 0 <= Remaining <= Total.
type TicketPool struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	UnitPrice int64     `json:"unit_price"`
	Remaining int       `json:"remaining"`
	Total     int       `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}
