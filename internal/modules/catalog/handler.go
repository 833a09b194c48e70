package catalog

import (
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

// RegisterPublicRoutes exposes read-only catalog browsing.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/camps", h.ListCamps)
	rg.GET("/camps/:id", h.GetCamp)
	rg.GET("/camps/:id/sites", h.ListSites)
}

// RegisterOwnerRoutes expects rg to be guarded by the OWNER role middleware.
func (h *Handler) RegisterOwnerRoutes(rg *gin.RouterGroup) {
	rg.POST("/camps", h.CreateCamp)
	rg.GET("/camps", h.ListMyCamps)
	rg.POST("/camps/:id/sites", h.CreateSite)
}

func (h *Handler) CreateCamp(c *gin.Context) {
	var req CreateCampRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	camp, err := h.service.CreateCamp(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid camp data")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create camp")
		return
	}

	response.Success(c, http.StatusCreated, camp)
}

func (h *Handler) ListMyCamps(c *gin.Context) {
	camps, err := h.service.ListMyCamps(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list camps")
		return
	}
	response.Success(c, http.StatusOK, camps)
}

func (h *Handler) CreateSite(c *gin.Context) {
	campID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid camp ID")
		return
	}

	var req CreateSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	site, err := h.service.CreateSite(c.Request.Context(), c.GetInt64("user_id"), campID, req)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Camp not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this camp")
		case ErrDuplicateSite:
			response.Error(c, http.StatusConflict, "DUPLICATE_SITE", "Site name already used in this camp")
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid site data")
		case ErrInvalidPrice:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "base_price must be a non-negative decimal")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create site")
		}
		return
	}

	response.Success(c, http.StatusCreated, site)
}

func (h *Handler) ListCamps(c *gin.Context) {
	camps, err := h.service.ListCamps(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list camps")
		return
	}
	response.Success(c, http.StatusOK, camps)
}

func (h *Handler) GetCamp(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid camp ID")
		return
	}

	camp, err := h.service.GetCamp(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Camp not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load camp")
		return
	}

	response.Success(c, http.StatusOK, camp)
}

func (h *Handler) ListSites(c *gin.Context) {
	campID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid camp ID")
		return
	}

	sites, err := h.service.ListSites(c.Request.Context(), campID)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Camp not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list sites")
		return
	}

	response.Success(c, http.StatusOK, sites)
}
