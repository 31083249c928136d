package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/twende/twende/internal/pkg/logger"
	"github.com/twende/twende/internal/pkg/middleware"
	"github.com/twende/twende/internal/pkg/models"
	nrpkg "github.com/twende/twende/internal/pkg/newrelic"
	"github.com/twende/twende/internal/utils"
	"github.com/twende/twende/services/bookings"
)

// BookingsHandler handles HTTP requests for booking operations
type BookingsHandler struct {
	bookingUC bookings.BookingUC
}

// NewBookingsHandler creates a new booking HTTP handler
func NewBookingsHandler(bookingUC bookings.BookingUC) *BookingsHandler {
	return &BookingsHandler{
		bookingUC: bookingUC,
	}
}

// CreateBooking handles the passenger's seat request
func (h *BookingsHandler) CreateBooking(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Bookings.CreateBooking")

	passengerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.BookingCreateRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.RideID == uuid.Nil {
		return utils.BadRequestResponse(c, "ride_id is required")
	}

	booking, err := h.bookingUC.CreateBooking(c.Request().Context(), passengerID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		logger.Error("Booking creation failed",
			logger.String("passenger_id", passengerID.String()),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Booking created successfully", booking)
}

// GetBooking returns a single booking owned by the caller
func (h *BookingsHandler) GetBooking(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Bookings.GetBooking")

	passengerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	booking, err := h.bookingUC.GetBooking(c.Request().Context(), bookingID, passengerID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking retrieved successfully", booking)
}

// ListBookings returns the caller's bookings, newest first
func (h *BookingsHandler) ListBookings(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Bookings.ListBookings")

	passengerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	bookingList, err := h.bookingUC.ListPassengerBookings(c.Request().Context(), passengerID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved successfully", bookingList)
}

// PayBooking handles the mobile money payment for a pending booking
func (h *BookingsHandler) PayBooking(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Bookings.PayBooking")

	passengerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	var req models.BookingPayRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Phone == "" {
		return utils.BadRequestResponse(c, "phone is required")
	}

	booking, err := h.bookingUC.PayBooking(c.Request().Context(), bookingID, passengerID, req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		logger.Error("Booking payment failed",
			logger.String("booking_id", bookingID.String()),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking paid successfully", booking)
}

// ConfirmBooking lets the ride's driver accept a paid booking. Only
// used when auto-confirmation is disabled.
func (h *BookingsHandler) ConfirmBooking(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Bookings.ConfirmBooking")

	driverID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	booking, err := h.bookingUC.ConfirmBooking(c.Request().Context(), bookingID, driverID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking confirmed", booking)
}

// CancelBooking cancels a pending or paid booking
func (h *BookingsHandler) CancelBooking(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Bookings.CancelBooking")

	passengerID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	bookingID, err := uuid.Parse(c.Param("bookingID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid booking ID")
	}

	booking, err := h.bookingUC.CancelBooking(c.Request().Context(), bookingID, passengerID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking cancelled", booking)
}
