package quote

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"campground/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/quotes", h.Quote)
}

func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	checkIn, err1 := time.Parse("2006-01-02", req.CheckInDate)
	checkOut, err2 := time.Parse("2006-01-02", req.CheckOutDate)
	if err1 != nil || err2 != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Dates must be YYYY-MM-DD")
		return
	}

	q, err := h.service.Quote(c.Request.Context(), req.SiteID, checkIn, checkOut)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_in_date must be before check_out_date")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Site not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute quote")
		}
		return
	}

	response.Success(c, http.StatusOK, QuoteResponse{
		Nights:   q.Nights,
		Subtotal: q.Subtotal.StringFixed(2),
		Discount: q.Discount.StringFixed(2),
		Total:    q.Total.StringFixed(2),
		Currency: q.Currency,
	})
}
