package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"anchor-gateway/internal/domain/booking"
	"anchor-gateway/internal/domain/schedule"
	reqdto "anchor-gateway/internal/handler/dto/request"
	resdto "anchor-gateway/internal/handler/dto/response"
	"anchor-gateway/internal/handler/httperr"
	"anchor-gateway/internal/infra/anchor"
	"anchor-gateway/internal/pkg/clock"
	"anchor-gateway/internal/pkg/config"
	"anchor-gateway/internal/pkg/errs"
	"anchor-gateway/internal/usecase"
)

// AgentHandler serves conversational AI agents. Responses are flat,
// self-describing JSON: an agent relays the error and suggestion strings
// straight to the caller, so every failure carries actionable text.
type AgentHandler struct {
	bookingUseCase usecase.TableBookingUseCase
	clock          clock.Clock
	contact        config.ContactConfig
}

func NewAgentHandler(bookingUseCase usecase.TableBookingUseCase, clk clock.Clock, cfg config.Config) *AgentHandler {
	return &AgentHandler{
		bookingUseCase: bookingUseCase,
		clock:          clk,
		contact:        cfg.Contact,
	}
}

// @Summary Create booking via AI agent
// @Description Create a table booking from agent JSON; dates may be natural language ("tomorrow", "next friday")
// @Tags agent
// @Accept json
// @Produce json
// @Param request body reqdto.AgentBookingRequest true "Agent booking request"
// @Success 200 {object} resdto.AgentBookingResponse
// @Failure 400 {object} resdto.AgentErrorResponse
// @Failure 500 {object} resdto.AgentErrorResponse
// @Router /api/booking/agent [post]
func (h *AgentHandler) CreateBooking(c *gin.Context) {
	var req reqdto.AgentBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abortAgent(c, http.StatusBadRequest, "Invalid request format", "")
		return
	}

	if missing := req.MissingFields(); len(missing) > 0 {
		h.abortAgent(c, http.StatusBadRequest,
			"Missing required fields: "+strings.Join(missing, ", "), "")
		return
	}
	if missing := req.MissingCustomerFields(); len(missing) > 0 {
		h.abortAgent(c, http.StatusBadRequest,
			"Missing customer fields: "+strings.Join(missing, ", "), "")
		return
	}

	date, err := schedule.NormalizeDate(h.clock.Now(), req.Date)
	if err != nil {
		h.abortAgent(c, http.StatusBadRequest, fmt.Sprintf(
			"Unable to parse date: %s. Please use YYYY-MM-DD format or natural language like \"tomorrow\" or \"next Sunday\"",
			req.Date), "")
		return
	}

	bookingType := booking.InferType(booking.Type(req.Type), date)
	domainReq := req.ToDomain(date, bookingType)

	result, err := h.bookingUseCase.CreateBooking(c.Request.Context(), domainReq, "")
	if err != nil {
		h.abortAgentErr(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.NewAgentBookingResponse(result, domainReq))
}

// @Summary Check availability via AI agent
// @Description Day-level availability summary; the date may be natural language
// @Tags agent
// @Produce json
// @Param date query string true "Date (ISO or natural language)"
// @Param partySize query int false "Party size (default 2)"
// @Success 200 {object} resdto.AgentAvailabilityResponse
// @Failure 400 {object} resdto.AgentErrorResponse
// @Failure 500 {object} resdto.AgentErrorResponse
// @Router /api/booking/agent [get]
func (h *AgentHandler) CheckAvailability(c *gin.Context) {
	rawDate := c.Query("date")
	if rawDate == "" {
		h.abortAgent(c, http.StatusBadRequest, "Date parameter required", "")
		return
	}

	date, err := schedule.NormalizeDate(h.clock.Now(), rawDate)
	if err != nil {
		h.abortAgent(c, http.StatusBadRequest, fmt.Sprintf("Unable to parse date: %s", rawDate), "")
		return
	}

	q := anchor.AvailabilityQuery{
		Date:      date,
		Time:      "12:00", // day-level check, any slot works
		PartySize: queryInt(c, "partySize", 2),
	}

	avail, err := h.bookingUseCase.CheckAvailability(c.Request.Context(), q, "")
	if err != nil {
		h.abortAgentErr(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.NewAgentAvailabilityResponse(date, avail))
}

// abortAgentErr renders a pipeline error in the agent envelope, reusing the
// shared translation table for status and message.
func (h *AgentHandler) abortAgentErr(c *gin.Context, err error) {
	t := httperr.Translate(err, h.contact)

	suggestion := ""
	if t.Status >= http.StatusInternalServerError || errors.Is(err, errs.ErrAnchorNotConfigured) {
		suggestion = fmt.Sprintf(
			"Please verify all fields are correct or call the restaurant at %s", h.contact.Phone)
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(t.Status, resdto.AgentErrorResponse{
		Success:       false,
		Error:         t.Message,
		Suggestion:    suggestion,
		CorrelationID: t.CorrelationID,
	})
}

func (h *AgentHandler) abortAgent(c *gin.Context, status int, msg, suggestion string) {
	c.AbortWithStatusJSON(status, resdto.AgentErrorResponse{
		Success:    false,
		Error:      msg,
		Suggestion: suggestion,
	})
}
