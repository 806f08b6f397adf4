package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/p-aks/EventManagement/internal/domain"
	"github.com/p-aks/EventManagement/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type reservationMocks struct {
	reservationRepo *mocks.MockReservationRepo
	eventRepo       *mocks.MockEventRepo
	userRepo        *mocks.MockUserRepo
	cache           *mocks.MockAvailabilityCache
	notifier        *mocks.MockReservationNotifier
}

func newReservationService(t *testing.T) (*ReservationService, reservationMocks) {
	t.Helper()
	m := reservationMocks{
		reservationRepo: mocks.NewMockReservationRepo(t),
		eventRepo:       mocks.NewMockEventRepo(t),
		userRepo:        mocks.NewMockUserRepo(t),
		cache:           mocks.NewMockAvailabilityCache(t),
		notifier:        mocks.NewMockReservationNotifier(t),
	}
	svc := NewReservationService(
		m.reservationRepo, m.eventRepo, m.userRepo,
		m.cache, m.notifier, newTestLogger(t),
	)
	return svc, m
}

func TestReservationService_Reserve_Success(t *testing.T) {
	svc, m := newReservationService(t)

	event := &domain.Event{ID: "e1", Title: "Concert", TicketType: domain.TicketTypePaid}
	user := &domain.User{ID: "u1", Name: "alice"}

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.reservationRepo.EXPECT().Reserve(mock.Anything, mock.Anything).Return(nil)
	m.cache.EXPECT().Invalidate(mock.Anything, "e1").Return(nil)
	m.notifier.EXPECT().NotifyReservationConfirmed(mock.Anything, user, event).Return()

	res, err := svc.Reserve(context.Background(), "e1", "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusConfirmed, res.Status)
	assert.Equal(t, "e1", res.EventID)
	assert.Equal(t, "u1", res.UserID)
	assert.NotEmpty(t, res.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_Reserve_EventNotFound(t *testing.T) {
	svc, m := newReservationService(t)

	m.eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Reserve(context.Background(), "missing", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestReservationService_Reserve_SoldOut(t *testing.T) {
	svc, m := newReservationService(t)

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.reservationRepo.EXPECT().Reserve(mock.Anything, mock.Anything).Return(domain.ErrSoldOut)

	_, err := svc.Reserve(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSoldOut)
}

func TestReservationService_Reserve_AlreadyReserved(t *testing.T) {
	svc, m := newReservationService(t)

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.reservationRepo.EXPECT().Reserve(mock.Anything, mock.Anything).Return(domain.ErrAlreadyReserved)

	_, err := svc.Reserve(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyReserved)
}

func TestReservationService_Reserve_TransientStorageError(t *testing.T) {
	svc, m := newReservationService(t)

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	m.reservationRepo.EXPECT().Reserve(mock.Anything, mock.Anything).
		Return(domain.ErrStorageUnavailable)

	_, err := svc.Reserve(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestReservationService_Reserve_CacheInvalidateFailureTolerated(t *testing.T) {
	svc, m := newReservationService(t)

	event := &domain.Event{ID: "e1"}
	user := &domain.User{ID: "u1"}

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.reservationRepo.EXPECT().Reserve(mock.Anything, mock.Anything).Return(nil)
	m.cache.EXPECT().Invalidate(mock.Anything, "e1").Return(errors.New("redis down"))
	m.notifier.EXPECT().NotifyReservationConfirmed(mock.Anything, user, event).Return()

	res, err := svc.Reserve(context.Background(), "e1", "u1")

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusConfirmed, res.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Cancel_Success(t *testing.T) {
	svc, m := newReservationService(t)

	event := &domain.Event{ID: "e1", Title: "Concert"}
	user := &domain.User{ID: "u1", Name: "alice"}

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	m.reservationRepo.EXPECT().Cancel(mock.Anything, "e1", "u1").Return(nil)
	m.cache.EXPECT().Invalidate(mock.Anything, "e1").Return(nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.notifier.EXPECT().NotifyReservationCancelled(mock.Anything, user, event).Return()

	err := svc.Cancel(context.Background(), "e1", "u1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Cancel_NoActiveReservation(t *testing.T) {
	svc, m := newReservationService(t)

	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	m.reservationRepo.EXPECT().Cancel(mock.Anything, "e1", "u1").Return(domain.ErrNoActiveReservation)

	err := svc.Cancel(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoActiveReservation)
}

func TestReservationService_Cancel_EventNotFound(t *testing.T) {
	svc, m := newReservationService(t)

	m.eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	err := svc.Cancel(context.Background(), "missing", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestReservationService_SendDueReminders_Success(t *testing.T) {
	svc, m := newReservationService(t)

	due := []*domain.Reservation{
		{ID: "r1", EventID: "e1", UserID: "u1"},
		{ID: "r2", EventID: "e2", UserID: "u2"},
	}
	user1 := &domain.User{ID: "u1"}
	user2 := &domain.User{ID: "u2"}
	event1 := &domain.Event{ID: "e1", Title: "Event 1"}
	event2 := &domain.Event{ID: "e2", Title: "Event 2"}

	m.reservationRepo.EXPECT().ClaimDueReminders(mock.Anything, 24*time.Hour).Return(due, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user1, nil)
	m.userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(user2, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event1, nil)
	m.eventRepo.EXPECT().GetByID(mock.Anything, "e2").Return(event2, nil)
	m.notifier.EXPECT().NotifyEventReminder(mock.Anything, user1, event1).Return()
	m.notifier.EXPECT().NotifyEventReminder(mock.Anything, user2, event2).Return()

	result, err := svc.SendDueReminders(context.Background(), 24*time.Hour)

	require.NoError(t, err)
	assert.Len(t, result, 2)

	time.Sleep(100 * time.Millisecond) // goroutine notify
}

func TestReservationService_SendDueReminders_NoneDue(t *testing.T) {
	svc, m := newReservationService(t)

	m.reservationRepo.EXPECT().ClaimDueReminders(mock.Anything, time.Hour).Return(nil, nil)

	result, err := svc.SendDueReminders(context.Background(), time.Hour)

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestReservationService_SendDueReminders_RepoError(t *testing.T) {
	svc, m := newReservationService(t)

	m.reservationRepo.EXPECT().ClaimDueReminders(mock.Anything, time.Hour).
		Return(nil, errors.New("db error"))

	_, err := svc.SendDueReminders(context.Background(), time.Hour)

	require.Error(t, err)
}

// fakeReservationRepo keeps pool accounting in memory for a single event so
// the full reserve/cancel lifecycle can be driven through the service.
type fakeReservationRepo struct {
	mu        sync.Mutex
	remaining int
	total     int
	confirmed map[string]bool
}

func newFakeReservationRepo(total int) *fakeReservationRepo {
	return &fakeReservationRepo{
		remaining: total,
		total:     total,
		confirmed: make(map[string]bool),
	}
}

func (f *fakeReservationRepo) Reserve(_ context.Context, res *domain.Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.confirmed[res.UserID] {
		return domain.ErrAlreadyReserved
	}
	if f.remaining <= 0 {
		return domain.ErrSoldOut
	}
	f.remaining--
	f.confirmed[res.UserID] = true
	return nil
}

func (f *fakeReservationRepo) Cancel(_ context.Context, _, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.confirmed[userID] {
		return domain.ErrNoActiveReservation
	}
	if f.remaining >= f.total {
		return domain.ErrInvariantViolation
	}
	delete(f.confirmed, userID)
	f.remaining++
	return nil
}

func (f *fakeReservationRepo) ListByUser(context.Context, string) ([]*domain.Reservation, error) {
	return nil, nil
}

func (f *fakeReservationRepo) ClaimDueReminders(context.Context, time.Duration) ([]*domain.Reservation, error) {
	return nil, nil
}

func TestReservationService_Lifecycle(t *testing.T) {
	repo := newFakeReservationRepo(2)

	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	cache := mocks.NewMockAvailabilityCache(t)
	notifier := mocks.NewMockReservationNotifier(t)

	event := &domain.Event{ID: "e1", Title: "Meetup"}
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil).Maybe()
	userRepo.EXPECT().GetByID(mock.Anything, mock.Anything).
		Return(&domain.User{ID: "u"}, nil).Maybe()
	cache.EXPECT().Invalidate(mock.Anything, "e1").Return(nil).Maybe()
	notifier.EXPECT().NotifyReservationConfirmed(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	notifier.EXPECT().NotifyReservationCancelled(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	svc := NewReservationService(repo, eventRepo, userRepo, cache, notifier, newTestLogger(t))
	ctx := context.Background()

	_, err := svc.Reserve(ctx, "e1", "u1")
	require.NoError(t, err)

	_, err = svc.Reserve(ctx, "e1", "u1")
	require.ErrorIs(t, err, domain.ErrAlreadyReserved)

	_, err = svc.Reserve(ctx, "e1", "u2")
	require.NoError(t, err)

	_, err = svc.Reserve(ctx, "e1", "u3")
	require.ErrorIs(t, err, domain.ErrSoldOut)

	require.NoError(t, svc.Cancel(ctx, "e1", "u2"))
	require.ErrorIs(t, svc.Cancel(ctx, "e1", "u2"), domain.ErrNoActiveReservation)

	// the freed unit goes to the next caller
	_, err = svc.Reserve(ctx, "e1", "u3")
	require.NoError(t, err)

	_, err = svc.Reserve(ctx, "e1", "u2")
	require.ErrorIs(t, err, domain.ErrSoldOut)

	// cancel and come back
	require.NoError(t, svc.Cancel(ctx, "e1", "u1"))
	_, err = svc.Reserve(ctx, "e1", "u1")
	require.NoError(t, err)

	assert.Equal(t, 0, repo.remaining)
	assert.Len(t, repo.confirmed, 2)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_ListByUser(t *testing.T) {
	svc, m := newReservationService(t)

	reservations := []*domain.Reservation{
		{ID: "r1", EventID: "e1", UserID: "u1", Status: domain.ReservationStatusConfirmed},
		{ID: "r2", EventID: "e2", UserID: "u1", Status: domain.ReservationStatusCancelled},
	}
	m.reservationRepo.EXPECT().ListByUser(mock.Anything, "u1").Return(reservations, nil)

	result, err := svc.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, result, 2)
}
