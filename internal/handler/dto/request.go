package dto

type SignUpRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required"`
	Role           string `json:"role" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	StartsAt    string `json:"starts_at" binding:"required"`
	Location    string `json:"location" binding:"required"`
	TicketType  string `json:"ticket_type" binding:"required"`
	UnitPrice   int64  `json:"unit_price"`
	Quantity    int    `json:"quantity" binding:"required,gt=0"`
}
