package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/twende/twende/internal/pkg/logger"
	"github.com/twende/twende/internal/pkg/middleware"
	"github.com/twende/twende/internal/pkg/models"
	nrpkg "github.com/twende/twende/internal/pkg/newrelic"
	"github.com/twende/twende/internal/utils"
	"github.com/twende/twende/services/rides"
	"github.com/twende/twende/services/rides/pipeline"
)

// RidesHandler handles HTTP requests for ride operations
type RidesHandler struct {
	rideUC rides.RideUC
}

// NewRidesHandler creates a new ride HTTP handler
func NewRidesHandler(rideUC rides.RideUC) *RidesHandler {
	return &RidesHandler{
		rideUC: rideUC,
	}
}

// SearchRides handles the ride search request
func (h *RidesHandler) SearchRides(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.SearchRides")

	criteria := models.SearchCriteria{
		OriginSubstring:      c.QueryParam("origin"),
		DestinationSubstring: c.QueryParam("destination"),
	}

	if raw := c.QueryParam("date"); raw != "" {
		date, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid date, expected YYYY-MM-DD")
		}
		criteria.Date = &date
	}

	filters, err := parseFilters(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	sortKey := pipeline.ParseSortKey(c.QueryParam("sort"))

	result, err := h.rideUC.SearchRides(c.Request().Context(), criteria, filters, sortKey)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		logger.Error("Ride search failed", logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rides retrieved successfully", result)
}

// CreateRide handles the driver's ride posting request
func (h *RidesHandler) CreateRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.CreateRide")

	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.RideCreateRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	ride, err := h.rideUC.CreateRide(c.Request().Context(), driverID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ride created successfully", ride)
}

// GetRide returns a single ride with its driver projection
func (h *RidesHandler) GetRide(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.GetRide")

	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	ride, err := h.rideUC.GetRide(c.Request().Context(), rideID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride retrieved successfully", ride)
}

// UpdateRideStatus handles driver-initiated ride lifecycle transitions
func (h *RidesHandler) UpdateRideStatus(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Rides.UpdateRideStatus")

	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	var req struct {
		Status models.RideStatus `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	ride, err := h.rideUC.UpdateRideStatus(c.Request().Context(), rideID, driverID, req.Status)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride status updated", ride)
}

func parseFilters(c echo.Context) (pipeline.FilterSpec, error) {
	var filters pipeline.FilterSpec

	if raw := c.QueryParam("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filters, errors.New("invalid min_price")
		}
		filters.MinPrice = &v
	}
	if raw := c.QueryParam("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filters, errors.New("invalid max_price")
		}
		filters.MaxPrice = &v
	}
	if raw := c.QueryParam("min_seats"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return filters, errors.New("invalid min_seats")
		}
		filters.MinSeats = &v
	}

	return filters, nil
}
