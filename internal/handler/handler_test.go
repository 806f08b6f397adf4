package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/p-aks/EventManagement/internal/domain"
	"github.com/p-aks/EventManagement/internal/handler/dto"
	hmocks "github.com/p-aks/EventManagement/internal/handler/mocks"
)

const testUserID = "5c0f9d6e-24a0-4c5e-a1f3-9b8d2f1e0a37"

// identity stands in for the auth middleware in tests.
func identity(c *ginext.Context) {
	c.Set("user_id", testUserID)
	c.Set("role", string(domain.RoleOrganizer))
	c.Next()
}

func setupRouter(t *testing.T) (*hmocks.MockEventSvc, *hmocks.MockReservationSvc, *hmocks.MockUserSvc, http.Handler) {
	t.Helper()
	eventSvc := hmocks.NewMockEventSvc(t)
	reservationSvc := hmocks.NewMockReservationSvc(t)
	userSvc := hmocks.NewMockUserSvc(t)

	h := NewHandler(eventSvc, reservationSvc, userSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/auth/signup", h.SignUp)
		api.POST("/auth/login", h.Login)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.GET("/events/:id/availability", h.GetAvailability)
		api.POST("/events", identity, h.CreateEvent)
		api.POST("/events/:id/reserve", identity, h.ReserveEvent)
		api.POST("/events/:id/cancel", identity, h.CancelReservation)
		api.GET("/me/reservations", identity, h.ListMyReservations)
	}

	return eventSvc, reservationSvc, userSvc, r
}

// --- Auth ---

func TestHandler_SignUp_Success(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	user := &domain.User{
		ID:        uuid.New().String(),
		Name:      "Alice",
		Email:     "alice@example.com",
		Role:      domain.RoleAttendee,
		CreatedAt: time.Now(),
	}
	userSvc.EXPECT().Register(mock.Anything, mock.Anything).Return(user, nil)

	body, _ := json.Marshal(dto.SignUpRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "correct-horse",
		Role:     "attendee",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice@example.com", resp.Email)
}

func TestHandler_SignUp_BadRequest(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"name":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SignUp_EmailTaken(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	userSvc.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	body, _ := json.Marshal(dto.SignUpRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "correct-horse",
		Role:     "attendee",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Login_Success(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	user := &domain.User{ID: "u1", Email: "alice@example.com", Role: domain.RoleAttendee, CreatedAt: time.Now()}
	userSvc.EXPECT().Login(mock.Anything, "alice@example.com", "correct-horse").
		Return("signed.jwt.token", user, nil)

	body, _ := json.Marshal(dto.LoginRequest{Email: "alice@example.com", Password: "correct-horse"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.token", resp.Token)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	userSvc.EXPECT().Login(mock.Anything, "alice@example.com", "wrong").
		Return("", nil, domain.ErrInvalidCredentials)

	body, _ := json.Marshal(dto.LoginRequest{Email: "alice@example.com", Password: "wrong"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	startsAt := time.Now().Add(24 * time.Hour)
	event := &domain.Event{
		ID:          uuid.New().String(),
		Title:       "Concert",
		Description: "Live music",
		StartsAt:    startsAt,
		Location:    domain.LocationPhysical,
		TicketType:  domain.TicketTypePaid,
		OrganizerID: testUserID,
		CreatedAt:   time.Now(),
	}

	eventSvc.EXPECT().CreateEvent(mock.Anything, mock.Anything).Return(event, nil)

	body, _ := json.Marshal(dto.CreateEventRequest{
		Title:       "Concert",
		Description: "Live music",
		StartsAt:    startsAt.Format(time.RFC3339),
		Location:    "physical",
		TicketType:  "paid",
		UnitPrice:   2500,
		Quantity:    100,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Concert", resp.Title)
	assert.Equal(t, testUserID, resp.OrganizerID)
}

func TestHandler_CreateEvent_BadRequest(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"title":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"title":"X","starts_at":"not-a-date","location":"physical","ticket_type":"free","quantity":10}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	details := &domain.EventDetails{
		Event:     domain.Event{ID: eventID, Title: "Concert", StartsAt: time.Now(), CreatedAt: time.Now()},
		UnitPrice: 2500,
		Total:     100,
		Remaining: 95,
		Confirmed: 5,
	}

	eventSvc.EXPECT().GetDetails(mock.Anything, eventID).Return(details, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 95, resp.Remaining)
	assert.Equal(t, 5, resp.Confirmed)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().GetDetails(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListEvents_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	events := []*domain.Event{
		{ID: "e1", Title: "Event 1", StartsAt: time.Now(), CreatedAt: time.Now()},
		{ID: "e2", Title: "Event 2", StartsAt: time.Now(), CreatedAt: time.Now()},
	}
	eventSvc.EXPECT().List(mock.Anything).Return(events, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_GetAvailability_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().Availability(mock.Anything, eventID).Return(17, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID+"/availability", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 17, resp.Remaining)
}

// --- Reservations ---

func TestHandler_ReserveEvent_Success(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	reservation := &domain.Reservation{
		ID:        uuid.New().String(),
		EventID:   eventID,
		UserID:    testUserID,
		Status:    domain.ReservationStatusConfirmed,
		CreatedAt: time.Now(),
	}

	reservationSvc.EXPECT().Reserve(mock.Anything, eventID, testUserID).Return(reservation, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/reserve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.Status)
}

func TestHandler_ReserveEvent_InvalidEventID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/bad-id/reserve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ReserveEvent_SoldOut(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	reservationSvc.EXPECT().Reserve(mock.Anything, eventID, testUserID).Return(nil, domain.ErrSoldOut)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/reserve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ReserveEvent_AlreadyReserved(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	reservationSvc.EXPECT().Reserve(mock.Anything, eventID, testUserID).Return(nil, domain.ErrAlreadyReserved)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/reserve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ReserveEvent_StorageUnavailable(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	reservationSvc.EXPECT().Reserve(mock.Anything, eventID, testUserID).
		Return(nil, domain.ErrStorageUnavailable)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/reserve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandler_CancelReservation_Success(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	reservationSvc.EXPECT().Cancel(mock.Anything, eventID, testUserID).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelReservation_NoActive(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	reservationSvc.EXPECT().Cancel(mock.Anything, eventID, testUserID).
		Return(domain.ErrNoActiveReservation)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListMyReservations_Success(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	reservations := []*domain.Reservation{
		{ID: "r1", EventID: "e1", UserID: testUserID, Status: domain.ReservationStatusConfirmed, CreatedAt: time.Now()},
		{ID: "r2", EventID: "e2", UserID: testUserID, Status: domain.ReservationStatusCancelled, CreatedAt: time.Now()},
	}
	reservationSvc.EXPECT().ListByUser(mock.Anything, testUserID).Return(reservations, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/me/reservations", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().GetDetails(mock.Anything, eventID).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
