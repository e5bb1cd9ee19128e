package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/enrollment-service/internal/services"
	"github.com/SAP-F-2025/enrollment-service/internal/utils"
	"github.com/SAP-F-2025/enrollment-service/internal/validator"
)

type PaymentHandler struct {
	BaseHandler
	paymentService services.PaymentService
}

func NewPaymentHandler(paymentService services.PaymentService, logger utils.Logger) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler:    NewBaseHandler(logger),
		paymentService: paymentService,
	}
}

// CreatePaymentIntent exchanges a price for a processor client secret.
// A missing or non-positive price answers 200 with an empty body; the
// checkout frontend treats the absent clientSecret as its failure signal.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req validator.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	if req.Price <= 0 {
		c.Status(http.StatusOK)
		return
	}

	secret, err := h.paymentService.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}
