package dto

import (
	"time"

	"github.com/p-aks/EventManagement/internal/domain"
)

type EventResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartsAt    string `json:"starts_at"`
	Location    string `json:"location"`
	TicketType  string `json:"ticket_type"`
	OrganizerID string `json:"organizer_id"`
	CreatedAt   string `json:"created_at"`
}

type EventDetailsResponse struct {
	Event     EventResponse `json:"event"`
	UnitPrice int64         `json:"unit_price"`
	Total     int           `json:"total_tickets"`
	Remaining int           `json:"remaining_tickets"`
	Confirmed int           `json:"confirmed_reservations"`
}

type AvailabilityResponse struct {
	EventID   string `json:"event_id"`
	Remaining int    `json:"remaining_tickets"`
}

type ReservationResponse struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	UserID    string `json:"user_id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		StartsAt:    e.StartsAt.Format(time.RFC3339),
		Location:    string(e.Location),
		TicketType:  string(e.TicketType),
		OrganizerID: e.OrganizerID,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	return EventDetailsResponse{
		Event:     ToEventResponse(&d.Event),
		UnitPrice: d.UnitPrice,
		Total:     d.Total,
		Remaining: d.Remaining,
		Confirmed: d.Confirmed,
	}
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:        r.ID,
		EventID:   r.EventID,
		UserID:    r.UserID,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
