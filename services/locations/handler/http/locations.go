package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/twende/twende/internal/pkg/middleware"
	"github.com/twende/twende/internal/pkg/models"
	nrpkg "github.com/twende/twende/internal/pkg/newrelic"
	"github.com/twende/twende/internal/utils"
	"github.com/twende/twende/services/locations"
)

// LocationsHandler handles HTTP requests for location operations
type LocationsHandler struct {
	locationUC locations.LocationUC
}

// NewLocationsHandler creates a new location HTTP handler
func NewLocationsHandler(locationUC locations.LocationUC) *LocationsHandler {
	return &LocationsHandler{
		locationUC: locationUC,
	}
}

// ListCities returns the selectable cities
func (h *LocationsHandler) ListCities(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Locations.ListCities")

	cities, err := h.locationUC.ListCities(c.Request().Context())
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Cities retrieved successfully", cities)
}

// Geocode resolves an address to coordinates and records the search
func (h *LocationsHandler) Geocode(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Locations.Geocode")

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	address := c.QueryParam("address")
	if address == "" {
		return utils.BadRequestResponse(c, "address is required")
	}

	point, err := h.locationUC.Geocode(c.Request().Context(), address)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	if err := h.locationUC.RecordSearch(c.Request().Context(), userID, *point); err != nil {
		// Recents are best-effort, the resolved point still goes back
		nrpkg.NoticeTransactionError(txn, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Address resolved successfully", point)
}

// GetRecentLocations returns the caller's recent searches
func (h *LocationsHandler) GetRecentLocations(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Locations.GetRecentLocations")

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	recents := h.locationUC.GetRecentLocations(c.Request().Context(), userID)

	return utils.SuccessResponse(c, http.StatusOK, "Recent locations retrieved successfully", recents)
}

// RecordSearch stores a location the client resolved some other way
func (h *LocationsHandler) RecordSearch(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Locations.RecordSearch")

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var point models.LocationPoint
	if err := c.Bind(&point); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.locationUC.RecordSearch(c.Request().Context(), userID, point); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location recorded", nil)
}
