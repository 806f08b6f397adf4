package ports

import "context"

type TicketPoolRepo interface {
	Availability(ctx context.Context, eventID string) (int, error)
}
