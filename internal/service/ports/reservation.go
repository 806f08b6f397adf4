package ports

import (
	"context"
	"time"

	"github.com/p-aks/EventManagement/internal/domain"
)

type ReservationRepo interface {
	Reserve(ctx context.Context, res *domain.Reservation) error
	Cancel(ctx context.Context, eventID, userID string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error)
	ClaimDueReminders(ctx context.Context, window time.Duration) ([]*domain.Reservation, error)
}
