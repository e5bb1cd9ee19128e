package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/enrollment-service/internal/repositories"
	"github.com/SAP-F-2025/enrollment-service/internal/services"
	"github.com/SAP-F-2025/enrollment-service/internal/utils"
	"github.com/SAP-F-2025/enrollment-service/internal/validator"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type SelectionHandler struct {
	BaseHandler
	ledgerService services.LedgerService
	exportService services.ExportService
	validator     *validator.Validator
}

func NewSelectionHandler(ledgerService services.LedgerService, exportService services.ExportService, v *validator.Validator, logger utils.Logger) *SelectionHandler {
	return &SelectionHandler{
		BaseHandler:   NewBaseHandler(logger),
		ledgerService: ledgerService,
		exportService: exportService,
		validator:     v,
	}
}

// ListSelections returns the full ledger.
func (h *SelectionHandler) ListSelections(c *gin.Context) {
	selections, err := h.ledgerService.ListSelections(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, selections)
}

// ListPopular returns the paid-enrollment popularity ranking.
func (h *SelectionHandler) ListPopular(c *gin.Context) {
	popular, err := h.ledgerService.ListPopular(c.Request.Context(), repositories.DefaultPopularLimit)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, popular)
}

// ListPaidByInstructor returns an instructor's paid enrollments.
func (h *SelectionHandler) ListPaidByInstructor(c *gin.Context) {
	email := c.Param("email")

	selections, err := h.ledgerService.ListPaidByInstructor(c.Request.Context(), email)
	if err != nil {
		h.LogError(c, err, "Failed to fetch paid enrollments", "email", email)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, selections)
}

// ListByStudent returns a student's cart. An empty cart is an empty list,
// not an error.
func (h *SelectionHandler) ListByStudent(c *gin.Context) {
	email := c.Param("email")

	selections, err := h.ledgerService.ListByStudent(c.Request.Context(), email)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, selections)
}

// CreateSelection records a class choice. Duplicates are legal.
func (h *SelectionHandler) CreateSelection(c *gin.Context) {
	var req validator.CreateSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	result, err := h.ledgerService.CreateSelection(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// AttachTransaction records the payment confirmation on a selection.
func (h *SelectionHandler) AttachTransaction(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	var req validator.AttachTransactionRequest
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

	result, err := h.ledgerService.AttachTransaction(c.Request.Context(), id, req.TransactionID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteSelection removes a cart entry by record id.
func (h *SelectionHandler) DeleteSelection(c *gin.Context) {
	id := h.parseIDParam(c, "id")
	if id == 0 {
		return
	}

	result, err := h.ledgerService.DeleteSelection(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ExportSelections streams the ledger as an XLSX attachment.
func (h *SelectionHandler) ExportSelections(c *gin.Context) {
	content, filename, err := h.exportService.ExportSelections(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, content)
}
