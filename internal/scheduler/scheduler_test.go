package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"

	"github.com/p-aks/EventManagement/internal/domain"
	"github.com/p-aks/EventManagement/internal/scheduler/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_SendsReminders(t *testing.T) {
	sender := mocks.NewMockReminderSender(t)
	log := newTestLogger(t)

	s := New(sender, 50*time.Millisecond, 24*time.Hour, log)

	reminded := []*domain.Reservation{
		{ID: "r1", EventID: "e1", UserID: "u1"},
	}
	sender.EXPECT().SendDueReminders(mock.Anything, 24*time.Hour).Return(reminded, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(sender.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	sender := mocks.NewMockReminderSender(t)
	log := newTestLogger(t)

	s := New(sender, 50*time.Millisecond, 24*time.Hour, log)

	sender.EXPECT().SendDueReminders(mock.Anything, 24*time.Hour).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(sender.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	sender := mocks.NewMockReminderSender(t)
	log := newTestLogger(t)

	s := New(sender, time.Second, 24*time.Hour, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	sender := mocks.NewMockReminderSender(t)
	log := newTestLogger(t)

	s := New(sender, 30*time.Millisecond, time.Hour, log)

	sender.EXPECT().SendDueReminders(mock.Anything, time.Hour).Return(nil, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	calls := len(sender.Calls)
	assert.GreaterOrEqual(t, calls, 3)
}
