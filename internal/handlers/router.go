package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/enrollment-service/internal/services"
	"github.com/SAP-F-2025/enrollment-service/internal/utils"
	"github.com/SAP-F-2025/enrollment-service/internal/validator"
)

type HandlerManager struct {
	serviceManager   services.ServiceManager
	tokenHandler     *TokenHandler
	userHandler      *UserHandler
	classHandler     *ClassHandler
	selectionHandler *SelectionHandler
	paymentHandler   *PaymentHandler
	authMiddleware   *AuthMiddleware
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	validator *validator.Validator,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		serviceManager:   serviceManager,
		tokenHandler:     NewTokenHandler(serviceManager.Token(), validator, logger),
		userHandler:      NewUserHandler(serviceManager.Directory(), validator, logger),
		classHandler:     NewClassHandler(serviceManager.Catalog(), validator, logger),
		selectionHandler: NewSelectionHandler(serviceManager.Ledger(), serviceManager.Export(), validator, logger),
		paymentHandler:   NewPaymentHandler(serviceManager.Payment(), logger),
		authMiddleware:   NewAuthMiddleware(serviceManager.Token()),
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "enrollment service is running")
	})

	router.GET("/health", func(c *gin.Context) {
		if err := hm.serviceManager.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	router.POST("/jwt", hm.tokenHandler.CreateToken)
	router.POST("/create-payment-intent", hm.paymentHandler.CreatePaymentIntent)

	// User directory
	users := router.Group("/users")
	{
		users.GET("", hm.userHandler.ListUsers)
		users.GET("/instructors", hm.userHandler.ListInstructors)
		users.GET("/role/:email",
			hm.authMiddleware.RequireToken(),
			hm.authMiddleware.RequireSameEmail("email"),
			hm.userHandler.GetRoleFlags)
		users.POST("", hm.userHandler.RegisterUser)
		users.PATCH("/role/:id", hm.userHandler.UpdateRole)
	}

	// Class catalog
	router.GET("/class/:id", hm.classHandler.GetClass)
	classes := router.Group("/classes")
	{
		classes.GET("", hm.classHandler.ListClasses)
		classes.GET("/:email", hm.classHandler.ListClassesByEmail)
		classes.POST("", hm.classHandler.CreateClass)
		classes.PATCH("/:id", hm.classHandler.UpdateStatus)
		classes.PATCH("/seats/:id", hm.classHandler.DecrementSeats)
		classes.PATCH("/increaseSeats/:id", hm.classHandler.IncrementSeats)
		classes.PUT("/:id", hm.classHandler.ReplaceClass)
	}

	// Enrollment ledger
	selected := router.Group("/selected")
	{
		selected.GET("", hm.selectionHandler.ListSelections)
		selected.GET("/popular", hm.selectionHandler.ListPopular)
		selected.GET("/export", hm.selectionHandler.ExportSelections)
		selected.GET("/paid/:email", hm.selectionHandler.ListPaidByInstructor)
		selected.GET("/:email", hm.selectionHandler.ListByStudent)
		selected.POST("", hm.selectionHandler.CreateSelection)
		selected.PATCH("/:id", hm.selectionHandler.AttachTransaction)
		selected.DELETE("/:id", hm.selectionHandler.DeleteSelection)
	}
}
