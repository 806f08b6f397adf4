package ports

import (
	"context"

	"github.com/p-aks/EventManagement/internal/domain"
)

// ReservationNotifier delivers best-effort messages after the reservation
// state has already committed. Implementations must never fail the caller.
type ReservationNotifier interface {
	NotifyReservationConfirmed(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyReservationCancelled(ctx context.Context, user *domain.User, event *domain.Event)
	NotifyEventReminder(ctx context.Context, user *domain.User, event *domain.Event)
}
