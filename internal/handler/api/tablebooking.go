package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	reqdto "anchor-gateway/internal/handler/dto/request"
	"anchor-gateway/internal/handler/httperr"
	"anchor-gateway/internal/infra/anchor"
	"anchor-gateway/internal/pkg/config"
	"anchor-gateway/internal/usecase"
)

type TableBookingHandler struct {
	bookingUseCase usecase.TableBookingUseCase
	contact        config.ContactConfig
}

func NewTableBookingHandler(bookingUseCase usecase.TableBookingUseCase, cfg config.Config) *TableBookingHandler {
	return &TableBookingHandler{
		bookingUseCase: bookingUseCase,
		contact:        cfg.Contact,
	}
}

// @Summary Create table booking
// @Description Create a table booking via the canonical snake_case contract
// @Tags table-bookings
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Deduplication key for client retries"
// @Param request body reqdto.CreateTableBookingRequest true "Booking request"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/table-bookings/create [post]
func (h *TableBookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateTableBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.bookingUseCase.CreateBooking(c.Request.Context(), req.ToDomain(), c.GetHeader("Idempotency-Key"))
	if err != nil {
		h.abortTranslated(c, err)
		return
	}

	// The external booking object is the success contract; forward it as-is.
	c.Data(http.StatusOK, "application/json", result.Raw)
}

// @Summary Check table availability
// @Description Check slot availability for a date, short-circuiting to unavailable when the kitchen is closed for food bookings
// @Tags table-bookings
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param party_size query int false "Party size"
// @Param time query string false "Specific time slot (HH:MM)"
// @Param duration query string false "Duration in minutes"
// @Param booking_type query string false "regular, sunday_lunch or food"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Router /api/table-bookings/availability [get]
func (h *TableBookingHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("missing date"), "Date parameter required", nil)
		return
	}

	q := anchor.AvailabilityQuery{
		Date:      date,
		PartySize: queryInt(c, "party_size", 2),
		Time:      c.Query("time"),
		Duration:  c.Query("duration"),
	}

	avail, err := h.bookingUseCase.CheckAvailability(c.Request.Context(), q, c.Query("booking_type"))
	if err != nil {
		h.abortTranslated(c, err)
		return
	}

	if len(avail.Raw) > 0 {
		c.Data(http.StatusOK, "application/json", avail.Raw)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": avail})
}

// @Summary Get table booking
// @Description Look up a booking by reference, proxied from the external system
// @Tags table-bookings
// @Produce json
// @Param reference path string true "Booking reference"
// @Success 200 {object} map[string]any
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/table-bookings/{reference} [get]
func (h *TableBookingHandler) Get(c *gin.Context) {
	raw, err := h.bookingUseCase.GetBooking(c.Request.Context(), c.Param("reference"))
	if err != nil {
		h.abortLookup(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}

// @Summary Cancel table booking
// @Description Cancel a booking by reference
// @Tags table-bookings
// @Produce json
// @Param reference path string true "Booking reference"
// @Success 200 {object} map[string]any
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/table-bookings/{reference} [delete]
func (h *TableBookingHandler) Cancel(c *gin.Context) {
	raw, err := h.bookingUseCase.CancelBooking(c.Request.Context(), c.Param("reference"))
	if err != nil {
		h.abortLookup(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}

// @Summary Sunday lunch menu
// @Description Current Sunday lunch menu, with a static fallback when the external system has none published
// @Tags table-bookings
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/table-bookings/menu/sunday-lunch [get]
func (h *TableBookingHandler) SundayLunchMenu(c *gin.Context) {
	raw, err := h.bookingUseCase.SundayLunchMenu(c.Request.Context())
	if err != nil {
		msg := fmt.Sprintf(
			"We couldn't load the Sunday lunch menu. Please call us at %s for menu information.",
			h.contact.Phone)
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, msg, nil)
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}

func (h *TableBookingHandler) abortTranslated(c *gin.Context, err error) {
	t := httperr.Translate(err, h.contact)
	httperr.AbortWithCorrelation(c, t.Status, err, t.Message, t.Detail, t.CorrelationID)
}

// abortLookup narrows reference lookups: a missing booking stays a 404 with
// a check-your-reference hint instead of the generic translation.
func (h *TableBookingHandler) abortLookup(c *gin.Context, err error) {
	var apiErr *anchor.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		httperr.AbortWithCorrelation(c, http.StatusNotFound, err,
			"Booking not found. Please check your reference number.", nil, apiErr.CorrelationID)
		return
	}
	h.abortTranslated(c, err)
}

func queryInt(c *gin.Context, key string, fallback int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
