package reveal

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// Handler serves the reveal beacon and view state endpoints.
type Handler struct {
	views *Views
}

// NewHandler creates a handler for the given page views.
func NewHandler(views *Views) *Handler {
	return &Handler{views: views}
}

// BeaconRequest is what the page script sends when a section intersects
// the viewport.
type BeaconRequest struct {
	View    string  `json:"view"`
	Section string  `json:"section"`
	Ratio   float64 `json:"ratio"`
}

// BeaconResponse echoes the section's state after the observation.
type BeaconResponse struct {
	Section  string `json:"section"`
	Visible  bool   `json:"visible"`
	Revealed bool   `json:"revealed"`
}

const maxViewIDLen = 64

// Collect feeds one intersection observation into the page view's tracker.
func (h *Handler) Collect(c echo.Context) error {
	var req BeaconRequest
	if err := c.Bind(&req); err != nil {
		return c.String(http.StatusBadRequest, "Invalid request")
	}
	if req.View == "" || len(req.View) > maxViewIDLen || req.Ratio < 0 || req.Ratio > 1 {
		return c.String(http.StatusBadRequest, "Invalid request")
	}
	if !KnownSection(req.Section) {
		return c.String(http.StatusBadRequest, "Unknown section")
	}
	t, ok := h.views.Get(req.View)
	if !ok {
		return c.NoContent(http.StatusNotFound)
	}
	revealed, err := t.Observe(req.Section, req.Ratio)
	if err != nil {
		return c.String(http.StatusBadRequest, "Unknown section")
	}
	return c.JSON(http.StatusOK, BeaconResponse{
		Section:  req.Section,
		Visible:  t.Visible(req.Section),
		Revealed: revealed,
	})
}

// State returns the visibility of every section of a page view.
func (h *Handler) State(c echo.Context) error {
	t, ok := h.views.Get(c.Param("view"))
	if !ok {
		return c.NoContent(http.StatusNotFound)
	}
	return c.JSON(http.StatusOK, t.State())
}

// RegisterRoutes mounts the endpoints under /api/reveal. The beacon is
// rate limited per client IP.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	limiter := middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(10),
			Burst:     30,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.NoContent(http.StatusTooManyRequests)
		},
	})
	g := e.Group("/api/reveal")
	g.POST("", h.Collect, limiter)
	g.GET("/:view", h.State)
}
