package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/p-aks/EventManagement/internal/domain"
	"github.com/p-aks/EventManagement/internal/service/ports"
)

type EventService struct {
	eventRepo ports.EventRepo
	poolRepo  ports.TicketPoolRepo
	cache     ports.AvailabilityCache
	logger    logger.Logger
}

func NewEventService(
	eventRepo ports.EventRepo,
	poolRepo ports.TicketPoolRepo,
	cache ports.AvailabilityCache,
	logger logger.Logger,
) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		poolRepo:  poolRepo,
		cache:     cache,
		logger:    logger,
	}
}

// CreateEvent validates the input and persists the event together with its
// ticket pool in one atomic unit. This is the only creation path for pools.
func (s *EventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.StartsAt.Before(time.Now()) {
		return nil, fmt.Errorf("%w: starts_at must be in the future", domain.ErrValidation)
	}
	if input.Location != domain.LocationPhysical && input.Location != domain.LocationVirtual {
		return nil, fmt.Errorf("%w: location must be physical or virtual", domain.ErrValidation)
	}
	if input.TicketType != domain.TicketTypeFree && input.TicketType != domain.TicketTypePaid {
		return nil, fmt.Errorf("%w: ticket_type must be free or paid", domain.ErrValidation)
	}
	if input.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", domain.ErrValidation)
	}
	if input.TicketType == domain.TicketTypePaid && input.UnitPrice <= 0 {
		return nil, fmt.Errorf("%w: unit_price must be positive for paid events", domain.ErrValidation)
	}

	unitPrice := input.UnitPrice
	if input.TicketType == domain.TicketTypeFree {
		unitPrice = 0
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		StartsAt:    input.StartsAt,
		Location:    input.Location,
		TicketType:  input.TicketType,
		OrganizerID: input.OrganizerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	pool := &domain.TicketPool{
		ID:        uuid.New().String(),
		EventID:   event.ID,
		UnitPrice: unitPrice,
		Remaining: input.Quantity,
		Total:     input.Quantity,
		CreatedAt: now,
	}

	if err := s.eventRepo.Create(ctx, event, pool); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("organizer_id", event.OrganizerID),
		logger.Int("total_tickets", pool.Total),
	)

	return event, nil
}

func (s *EventService) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	return s.eventRepo.GetDetails(ctx, id)
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.eventRepo.List(ctx)
}

// Availability serves the remaining count through the cache with a database
// fallback. The value is a snapshot and may be stale the moment it returns.
func (s *EventService) Availability(ctx context.Context, eventID string) (int, error) {
	remaining, ok, err := s.cache.Get(ctx, eventID)
	if err != nil {
		s.logger.Warn("availability cache read failed",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
	}
	if ok {
		return remaining, nil
	}

	remaining, err = s.poolRepo.Availability(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("get availability: %w", err)
	}

	if err = s.cache.Set(ctx, eventID, remaining); err != nil {
		s.logger.Warn("availability cache write failed",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
	}

	return remaining, nil
}
