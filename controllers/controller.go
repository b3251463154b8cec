package controllers

import (
	"errors"
	"net/http"
	"time"

	"debatearena/config"
	"debatearena/services"

	"github.com/gin-gonic/gin"
)

// Controller translates HTTP requests into core commands and core results
// back into JSON. It holds no lifecycle state of its own.
type Controller struct {
	Svc       *services.DebateService
	Cfg       config.ArenaConfig
	StartedAt time.Time
}

// NewController wires a controller to the service.
func NewController(svc *services.DebateService, cfg config.ArenaConfig) *Controller {
	return &Controller{Svc: svc, Cfg: cfg, StartedAt: time.Now()}
}

// respondError maps each core error kind to its HTTP status. Every kind is
// a user-facing validation failure; nothing here is retryable.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrNotAuthorized):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrInvalidState):
		status = http.StatusConflict
	case errors.Is(err, services.ErrSelfChallenge),
		errors.Is(err, services.ErrInvalidOpponent),
		errors.Is(err, services.ErrConcurrencyLimit),
		errors.Is(err, services.ErrInvalidWinner):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// actorID returns the user ID set by the actor middleware.
func actorID(c *gin.Context) string {
	return c.GetString("userID")
}
