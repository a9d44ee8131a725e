package api

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	reqdto "anchor-gateway/internal/handler/dto/request"
	resdto "anchor-gateway/internal/handler/dto/response"
	"anchor-gateway/internal/handler/httperr"
	"anchor-gateway/internal/pkg/config"
	"anchor-gateway/internal/usecase"
)

// SubmitHandler takes booking-wizard submissions. The wizard posts JSON,
// but the no-script fallback posts a plain form, so both encodings are
// accepted and the failure path differs: JSON callers get structured
// errors, form callers get redirected back to the booking page.
type SubmitHandler struct {
	bookingUseCase usecase.TableBookingUseCase
	contact        config.ContactConfig
	pages          config.PagesConfig
}

func NewSubmitHandler(bookingUseCase usecase.TableBookingUseCase, cfg config.Config) *SubmitHandler {
	return &SubmitHandler{
		bookingUseCase: bookingUseCase,
		contact:        cfg.Contact,
		pages:          cfg.Pages,
	}
}

// @Summary Submit wizard booking
// @Description Accepts application/json or application/x-www-form-urlencoded; form submissions redirect instead of returning JSON
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitBookingRequest true "Wizard booking"
// @Success 200 {object} resdto.SubmitBookingResponse
// @Failure 400 {object} resdto.AgentErrorResponse
// @Router /api/booking/submit [post]
func (h *SubmitHandler) Submit(c *gin.Context) {
	contentType := c.ContentType()
	isJSON := strings.Contains(contentType, "application/json")

	var req reqdto.SubmitBookingRequest
	switch {
	case isJSON:
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format"})
			return
		}
	case strings.Contains(contentType, "application/x-www-form-urlencoded"):
		req = reqdto.SubmitFromForm(c)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid content type"})
		return
	}

	if missing := req.MissingFields(); len(missing) > 0 {
		if !isJSON {
			h.redirectBack(c, "missing_fields")
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing required fields"})
		return
	}

	domainReq := req.ToDomain()
	result, err := h.bookingUseCase.CreateBooking(c.Request.Context(), domainReq, domainReq.IdempotencyKey())
	if err != nil {
		if !isJSON {
			h.redirectBack(c, "submission_failed")
			return
		}
		t := httperr.Translate(err, h.contact)
		_ = c.Error(err)
		c.AbortWithStatusJSON(t.Status, resdto.AgentErrorResponse{
			Success:       false,
			Error:         t.Message,
			CorrelationID: t.CorrelationID,
		})
		return
	}

	if !isJSON {
		h.redirectConfirmed(c, result.Reference())
		return
	}
	c.JSON(http.StatusOK, resdto.NewSubmitBookingResponse(result, domainReq))
}

func (h *SubmitHandler) redirectBack(c *gin.Context, reason string) {
	c.Redirect(http.StatusFound, h.pages.BookingFormPath+"?error="+url.QueryEscape(reason))
}

func (h *SubmitHandler) redirectConfirmed(c *gin.Context, reference string) {
	c.Redirect(http.StatusFound, h.pages.ConfirmationPath+"?ref="+url.QueryEscape(reference))
}
