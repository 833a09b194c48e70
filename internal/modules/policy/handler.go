package policy

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"campground/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes expects rg to be guarded by the OWNER role middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/camps/:id/refund-policies", h.Activate)
	rg.GET("/camps/:id/refund-policies", h.ListVersions)
}

type activateRequest struct {
	RuleJSON json.RawMessage `json:"rule_json" binding:"required"`
}

func (h *Handler) Activate(c *gin.Context) {
	campID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid camp ID")
		return
	}

	var req activateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	pv, err := h.service.Activate(c.Request.Context(), c.GetInt64("user_id"), campID, req.RuleJSON)
	if err != nil {
		switch err {
		case ErrInvalidPolicy:
			response.Error(c, http.StatusBadRequest, "INVALID_POLICY", "rule_json must be valid JSON")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Camp not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this camp")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to activate policy")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"id":        pv.ID,
		"camp_id":   pv.CampID,
		"version":   pv.Version,
		"is_active": pv.IsActive,
		"rule_json": json.RawMessage(pv.RuleJSON),
	})
}

func (h *Handler) ListVersions(c *gin.Context) {
	campID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid camp ID")
		return
	}

	versions, err := h.service.ListVersions(c.Request.Context(), c.GetInt64("user_id"), campID)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Camp not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this camp")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list policy versions")
		}
		return
	}

	response.Success(c, http.StatusOK, versions)
}
