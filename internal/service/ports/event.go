package ports

import (
	"context"

	"github.com/p-aks/EventManagement/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event, p *domain.TicketPool) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	GetDetails(ctx context.Context, eventID string) (*domain.EventDetails, error)
}
