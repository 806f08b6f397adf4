package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/p-aks/EventManagement/internal/domain"
	"github.com/p-aks/EventManagement/internal/handler/dto"
)

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	List(ctx context.Context) ([]*domain.Event, error)
	Availability(ctx context.Context, eventID string) (int, error)
}

type ReservationSvc interface {
	Reserve(ctx context.Context, eventID, userID string) (*domain.Reservation, error)
	Cancel(ctx context.Context, eventID, userID string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error)
}

type UserSvc interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

type Handler struct {
	eventService       EventSvc
	reservationService ReservationSvc
	userService        UserSvc
}

func NewHandler(eventService EventSvc, reservationService ReservationSvc, userService UserSvc) *Handler {
	return &Handler{
		eventService:       eventService,
		reservationService: reservationService,
		userService:        userService,
	}
}

// Auth

func (h *Handler) SignUp(c *ginext.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.RegisterInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Role:           domain.Role(req.Role),
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Register(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, user, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	})
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid starts_at format, expected RFC3339",
		})
		return
	}

	input := domain.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		StartsAt:    startsAt,
		Location:    domain.Location(req.Location),
		TicketType:  domain.TicketType(req.TicketType),
		UnitPrice:   req.UnitPrice,
		Quantity:    req.Quantity,
		OrganizerID: c.GetString("user_id"),
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetAvailability(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	remaining, err := h.eventService.Availability(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{
		EventID:   id,
		Remaining: remaining,
	})
}

// Reservations

func (h *Handler) ReserveEvent(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	reservation, err := h.reservationService.Reserve(c.Request.Context(), eventID, c.GetString("user_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	if err := h.reservationService.Cancel(c.Request.Context(), eventID, c.GetString("user_id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) ListMyReservations(c *ginext.Context) {
	reservations, err := h.reservationService.ListByUser(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, dto.ToReservationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrSoldOut),
		errors.Is(err, domain.ErrAlreadyReserved),
		errors.Is(err, domain.ErrNoActiveReservation):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "temporarily unavailable, retry later"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
