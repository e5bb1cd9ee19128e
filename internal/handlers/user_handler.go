package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/enrollment-service/internal/services"
	"github.com/SAP-F-2025/enrollment-service/internal/utils"
	"github.com/SAP-F-2025/enrollment-service/internal/validator"
)

type UserHandler struct {
	BaseHandler
	directoryService services.DirectoryService
	validator        *validator.Validator
}

func NewUserHandler(directoryService services.DirectoryService, v *validator.Validator, logger utils.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler:      NewBaseHandler(logger),
		directoryService: directoryService,
		validator:        v,
	}
}

// ListUsers returns the full directory.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.directoryService.ListUsers(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// ListInstructors returns only instructor accounts.
func (h *UserHandler) ListInstructors(c *gin.Context) {
	instructors, err := h.directoryService.ListInstructors(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, instructors)
}

// GetRoleFlags answers the role-flag triple for the authenticated user.
// A nonexistent email is a success response with an inline error field,
// which is what the frontend's role hooks expect.
func (h *UserHandler) GetRoleFlags(c *gin.Context) {
	email := c.Param("email")

	flags, found, err := h.directoryService.GetRoleFlags(c.Request.Context(), email)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{"error": "No user found with that email."})
		return
	}

	c.JSON(http.StatusOK, flags)
}

// RegisterUser records a first sign-in. Repeated registrations of the same
// email are acknowledged without touching the existing record.
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var req validator.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	result, created, err := h.directoryService.Register(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateRole promotes a user to admin or instructor by record id.
func (h *UserHandler) UpdateRole(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var req validator.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}
	if errs := h.validator.Validate(&req); errs != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: errs.Error()})
		return
	}

	h.LogRequest(c, "Updating user role", "user_id", id, "role", req.Role)

	result, err := h.directoryService.SetRole(c.Request.Context(), id, req.Role)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
