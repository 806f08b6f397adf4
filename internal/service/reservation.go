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

type ReservationService struct {
	reservationRepo ports.ReservationRepo
	eventRepo       ports.EventRepo
	userRepo        ports.UserRepo
	cache           ports.AvailabilityCache
	notifier        ports.ReservationNotifier
	logger          logger.Logger
}

func NewReservationService(
	reservationRepo ports.ReservationRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	cache ports.AvailabilityCache,
	notifier ports.ReservationNotifier,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		eventRepo:       eventRepo,
		userRepo:        userRepo,
		cache:           cache,
		notifier:        notifier,
		logger:          logger,
	}
}

// Reserve takes one ticket of the event for the user. The decrement and the
// reservation insert commit together inside the repository transaction;
// this layer only orchestrates lookups, cache invalidation and the
// fire-and-forget notification.
func (s *ReservationService) Reserve(ctx context.Context, eventID, userID string) (*domain.Reservation, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	now := time.Now().UTC()
	res := &domain.Reservation{
		ID:        uuid.New().String(),
		EventID:   eventID,
		UserID:    userID,
		Status:    domain.ReservationStatusConfirmed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err = s.reservationRepo.Reserve(ctx, res); err != nil {
		return nil, fmt.Errorf("reserve: %w", err)
	}

	s.invalidateAvailability(ctx, eventID)

	s.logger.Info("reservation confirmed",
		logger.String("reservation_id", res.ID),
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
	)

	go s.notifier.NotifyReservationConfirmed(context.WithoutCancel(ctx), user, event)

	return res, nil
}

// Cancel flips the caller's confirmed reservation to cancelled and returns
// the unit to the pool.
func (s *ReservationService) Cancel(ctx context.Context, eventID, userID string) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("check event: %w", err)
	}

	if err = s.reservationRepo.Cancel(ctx, eventID, userID); err != nil {
		return fmt.Errorf("cancel: %w", err)
	}

	s.invalidateAvailability(ctx, eventID)

	s.logger.Info("reservation cancelled",
		logger.String("event_id", eventID),
		logger.String("user_id", userID),
	)

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get user for cancel notification",
			logger.String("user_id", userID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	go s.notifier.NotifyReservationCancelled(context.WithoutCancel(ctx), user, event)

	return nil
}

func (s *ReservationService) ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error) {
	return s.reservationRepo.ListByUser(ctx, userID)
}

// SendDueReminders claims reservations whose event starts within the window
// and notifies each holder. Claiming happens in the repository in a single
// statement, so each reservation is reminded at most once.
func (s *ReservationService) SendDueReminders(ctx context.Context, window time.Duration) ([]*domain.Reservation, error) {
	due, err := s.reservationRepo.ClaimDueReminders(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("claim due reminders: %w", err)
	}

	if len(due) > 0 {
		s.logger.Info("event reminders due",
			logger.Int("count", len(due)),
		)

		go s.notifyReminders(context.WithoutCancel(ctx), due)
	}

	return due, nil
}

func (s *ReservationService) notifyReminders(ctx context.Context, due []*domain.Reservation) {
	for _, res := range due {
		user, err := s.userRepo.GetByID(ctx, res.UserID)
		if err != nil {
			s.logger.Error("failed to get user for reminder",
				logger.String("user_id", res.UserID),
			)
			continue
		}

		event, err := s.eventRepo.GetByID(ctx, res.EventID)
		if err != nil {
			s.logger.Error("failed to get event for reminder",
				logger.String("event_id", res.EventID),
			)
			continue
		}

		s.notifier.NotifyEventReminder(ctx, user, event)
	}
}

func (s *ReservationService) invalidateAvailability(ctx context.Context, eventID string) {
	if err := s.cache.Invalidate(ctx, eventID); err != nil {
		// The cache entry expires on its own TTL; stale reads are tolerated.
		s.logger.Warn("failed to invalidate availability cache",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
	}
}
