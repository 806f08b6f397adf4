package domain

import "time"

type Location string

const (
	LocationPhysical Location = "physical"
	LocationVirtual  Location = "virtual"
)

type TicketType string

const (
	TicketTypeFree TicketType = "free"
	TicketTypePaid TicketType = "paid"
)

type Event struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartsAt    time.Time  `json:"starts_at"`
	Location    Location   `json:"location"`
	TicketType  TicketType `json:"ticket_type"`
	OrganizerID string     `json:"organizer_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type EventDetails struct {
	Event     Event `json:"event"`
	UnitPrice int64 `json:"unit_price"`
	Total     int   `json:"total"`
	Remaining int   `json:"remaining"`
	Confirmed int   `json:"confirmed"`
}

type CreateEventInput struct {
	Title       string
	Description string
	StartsAt    time.Time
	Location    Location
	TicketType  TicketType
	UnitPrice   int64
	Quantity    int
	OrganizerID string
}
