package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/salcho-dev/devlog/backend/internal/models"
	"github.com/salcho-dev/devlog/backend/internal/repositories"
)

const visitorCookieName = "visitor_id"

// VisitHandler handles visit logging and visitor statistics
type VisitHandler struct {
	visitRepository repositories.VisitRepository
}

// NewVisitHandler creates a new VisitHandler
func NewVisitHandler(visitRepo repositories.VisitRepository) *VisitHandler {
	return &VisitHandler{visitRepository: visitRepo}
}

// RegisterVisitRoutes registers visit-related routes
func (h *VisitHandler) RegisterVisitRoutes(g *echo.Group) {
	g.POST("/visits", h.LogVisit)
	g.GET("/stats/visitors", h.GetVisitorStats)
}

// LogVisit records today's visit for the caller. The visitor id rides a
// long-lived cookie and is minted on the first visit.
func (h *VisitHandler) LogVisit(c echo.Context) error {
	var req models.LogVisitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	visitorID := ""
	if cookie, err := c.Cookie(visitorCookieName); err == nil && cookie.Value != "" {
		visitorID = cookie.Value
	}
	if visitorID == "" {
		visitorID = uuid.NewString()
		c.SetCookie(&http.Cookie{
			Name:     visitorCookieName,
			Value:    visitorID,
			Path:     "/",
			Expires:  time.Now().AddDate(1, 0, 0),
			HttpOnly: true,
		})
	}

	if err := h.visitRepository.LogVisit(c.Request().Context(), visitorID, req.Path); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

// GetVisitorStats returns today's and yesterday's unique visitor counts
func (h *VisitHandler) GetVisitorStats(c echo.Context) error {
	stats, err := h.visitRepository.VisitorStats(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, stats)
}
