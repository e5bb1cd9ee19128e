package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/enrollment-service/internal/services"
	"github.com/SAP-F-2025/enrollment-service/internal/utils"
	"github.com/SAP-F-2025/enrollment-service/internal/validator"
)

type ClassHandler struct {
	BaseHandler
	catalogService services.CatalogService
	validator      *validator.Validator
}

func NewClassHandler(catalogService services.CatalogService, v *validator.Validator, logger utils.Logger) *ClassHandler {
	return &ClassHandler{
		BaseHandler:    NewBaseHandler(logger),
		catalogService: catalogService,
		validator:      v,
	}
}

// ListClasses returns the full catalog.
func (h *ClassHandler) ListClasses(c *gin.Context) {
	classes, err := h.catalogService.ListClasses(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

// GetClass fetches one class by record id.
func (h *ClassHandler) GetClass(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	class, err := h.catalogService.GetClass(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

// ListClassesByEmail returns an instructor's own classes. An owner with
// no classes is a 404 here, unlike the ledger's by-student listing.
func (h *ClassHandler) ListClassesByEmail(c *gin.Context) {
	email := c.Param("email")

	classes, err := h.catalogService.ListClassesByOwner(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No classes found for this email"})
			return
		}
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, classes)
}

// CreateClass inserts a class submission unconditionally.
func (h *ClassHandler) CreateClass(c *gin.Context) {
	var req validator.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	result, err := h.catalogService.CreateClass(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateStatus sets the moderation status. The vocabulary is a frontend
// convention and is not checked here.
func (h *ClassHandler) UpdateStatus(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var req validator.UpdateClassStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	result, err := h.catalogService.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DecrementSeats takes one seat when a student selects the class.
func (h *ClassHandler) DecrementSeats(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	result, err := h.catalogService.DecrementSeats(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// IncrementSeats returns one seat when a selection is removed.
func (h *ClassHandler) IncrementSeats(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	result, err := h.catalogService.IncrementSeats(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ReplaceClass upserts the four editable fields under the given id.
func (h *ClassHandler) ReplaceClass(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var req validator.ReplaceClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	result, err := h.catalogService.ReplaceClass(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
