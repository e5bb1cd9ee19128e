package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/enrollment-service/internal/services"
	"github.com/SAP-F-2025/enrollment-service/internal/utils"
	"github.com/SAP-F-2025/enrollment-service/internal/validator"
)

type TokenHandler struct {
	BaseHandler
	tokenService services.TokenService
	validator    *validator.Validator
}

func NewTokenHandler(tokenService services.TokenService, v *validator.Validator, logger utils.Logger) *TokenHandler {
	return &TokenHandler{
		BaseHandler:  NewBaseHandler(logger),
		tokenService: tokenService,
		validator:    v,
	}
}

// CreateToken signs the posted identity claim into a bearer token. The
// endpoint is open: callers exchange their frontend session identity for
// an API token here.
func (h *TokenHandler) CreateToken(c *gin.Context) {
	var req validator.TokenRequest
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

	token, err := h.tokenService.Issue(req.Email)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
