package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/p-aks/EventManagement/internal/domain"
)

type reminderSender interface {
	SendDueReminders(ctx context.Context, window time.Duration) ([]*domain.Reservation, error)
}

type Scheduler struct {
	reservationService reminderSender
	interval           time.Duration
	window             time.Duration
	logger             logger.Logger
}

func New(
	reservationService reminderSender,
	interval time.Duration,
	window time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reservationService: reservationService,
		interval:           interval,
		window:             window,
		logger:             logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
		logger.Duration("reminder_window", s.window),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	reminded, err := s.reservationService.SendDueReminders(ctx, s.window)
	if err != nil {
		s.logger.Error("failed to send due reminders",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range reminded {
		s.logger.Info("reminder sent",
			logger.String("reservation_id", r.ID),
			logger.String("user_id", r.UserID),
			logger.String("event_id", r.EventID),
		)
	}
}
