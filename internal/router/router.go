package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/p-aks/EventManagement/internal/auth"
	"github.com/p-aks/EventManagement/internal/domain"
	"github.com/p-aks/EventManagement/internal/middleware"
)

type Handler interface {
	SignUp(c *ginext.Context)
	Login(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	GetAvailability(c *ginext.Context)
	ReserveEvent(c *ginext.Context)
	CancelReservation(c *ginext.Context)
	ListMyReservations(c *ginext.Context)
}

func InitRouter(mode string, h Handler, tokens *auth.TokenManager, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	authRequired := middleware.Auth(tokens)
	organizerOnly := middleware.RequireRole(string(domain.RoleOrganizer))

	api := router.Group("/api")
	{
		// Auth
		api.POST("/auth/signup", h.SignUp)
		api.POST("/auth/login", h.Login)

		// Events
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.GET("/events/:id/availability", h.GetAvailability)
		api.POST("/events", authRequired, organizerOnly, h.CreateEvent)

		// Reservations
		api.POST("/events/:id/reserve", authRequired, h.ReserveEvent)
		api.POST("/events/:id/cancel", authRequired, h.CancelReservation)
		api.GET("/me/reservations", authRequired, h.ListMyReservations)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
