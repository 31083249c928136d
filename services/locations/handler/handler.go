package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/twende/twende/internal/pkg/middleware"
	"github.com/twende/twende/internal/pkg/models"
	"github.com/twende/twende/services/locations"
	httphandler "github.com/twende/twende/services/locations/handler/http"
)

// Handler combines the entry points of the locations service
type Handler struct {
	cfg           *models.Config
	locationsHTTP *httphandler.LocationsHandler
}

// NewHandler creates a combined locations handler
func NewHandler(cfg *models.Config, locationUC locations.LocationUC) *Handler {
	return &Handler{
		cfg:           cfg,
		locationsHTTP: httphandler.NewLocationsHandler(locationUC),
	}
}

// RegisterRoutes wires the location endpoints onto the Echo instance.
// The city list is public reference data; everything user-scoped
// requires a token.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/locations")
	group.GET("/cities", h.locationsHTTP.ListCities)

	authed := group.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))
	authed.GET("/geocode", h.locationsHTTP.Geocode)
	authed.GET("/recent", h.locationsHTTP.GetRecentLocations)
	authed.POST("/recent", h.locationsHTTP.RecordSearch)
}
