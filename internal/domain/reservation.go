package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// Reservation asserts that a user holds one unit of an event's ticket pool.
// Rows are append-only: cancellation flips Status, nothing is deleted.
// At most one confirmed reservation may exist per (event, user) pair.
type Reservation struct {
	ID         string            `json:"id"`
	EventID    string            `json:"event_id"`
	UserID     string            `json:"user_id"`
	PoolID     string            `json:"pool_id"`
	Status     ReservationStatus `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
	RemindedAt *time.Time        `json:"reminded_at,omitempty"`
}
