package booking

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"campground/internal/pkg/refund"
	"campground/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.POST("/bookings/:id/cancel", h.CancelBooking)
	rg.GET("/bookings", h.ListMyBookings)
	rg.GET("/bookings/:id", h.GetBooking)
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), c.GetInt64("user_id"), id)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this booking")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load booking")
		}
		return
	}

	response.Success(c, http.StatusOK, b)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
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

	b, err := h.service.CreateBooking(c.Request.Context(), CreateBookingParams{
		CustomerID:   c.GetInt64("user_id"),
		CampID:       req.CampID,
		SiteID:       req.SiteID,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		HeadCount:    req.HeadCount,
		Provider:     req.Provider,
		ProviderTxID: req.ProviderTxID,
	})
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking request")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Camp or site not found")
		case ErrAlreadyReserved:
			response.Error(c, http.StatusConflict, "ALREADY_RESERVED", "One or more nights are already reserved")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, CreateBookingResponse{
		BookingID:   b.ID,
		BookingCode: b.BookingCode,
		Status:      string(b.Status),
		Total:       b.Total.StringFixed(2),
		Currency:    b.Currency,
	})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	idempotencyKey := c.GetHeader("Idempotency-Key")
	if idempotencyKey == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Idempotency-Key header is required")
		return
	}

	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	cancelDate := time.Now().UTC()
	if req.CancelDate != "" {
		cancelDate, err = time.Parse("2006-01-02", req.CancelDate)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "cancel_date must be YYYY-MM-DD")
			return
		}
	}

	ref, err := h.service.CancelBooking(c.Request.Context(), c.GetInt64("user_id"), bookingID, idempotencyKey, req.Reason, cancelDate)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid cancellation request")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this booking")
		case ErrInvalidState:
			response.Error(c, http.StatusConflict, "INVALID_STATE", "Booking is not cancellable")
		case refund.ErrInvalidPolicy:
			response.Error(c, http.StatusBadRequest, "INVALID_POLICY", "Refund policy snapshot is malformed")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to cancel booking")
		}
		return
	}

	response.Success(c, http.StatusOK, RefundResponse{
		RefundID:        ref.ID,
		Status:          string(ref.Status),
		RequestedAmount: ref.RequestedAmount.StringFixed(2),
		ApprovedAmount:  ref.ApprovedAmount.StringFixed(2),
		Currency:        ref.Currency,
	})
}

func (h *Handler) ListMyBookings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	rows, err := h.service.ListMyBookings(c.Request.Context(), c.GetInt64("user_id"), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": rows})
}
