package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/enrollment-service/internal/events"
	"github.com/SAP-F-2025/enrollment-service/internal/repositories"
	"github.com/SAP-F-2025/enrollment-service/internal/validator"
)

// ServiceManagerConfig holds configuration for the service manager.
type ServiceManagerConfig struct {
	TokenSecret      string
	TokenTTL         time.Duration
	PaymentSecretKey string

	// IntentClient overrides the Stripe client; tests inject a fake here.
	IntentClient IntentClient
}

// serviceManager implements ServiceManager.
type serviceManager struct {
	db        *gorm.DB
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
	config    ServiceManagerConfig

	directoryService DirectoryService
	catalogService   CatalogService
	ledgerService    LedgerService
	tokenService     TokenService
	paymentService   PaymentService
	exportService    ExportService

	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

// NewServiceManager creates a service manager with all dependencies.
func NewServiceManager(db *gorm.DB, repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.EventPublisher, config ServiceManagerConfig) ServiceManager {
	return &serviceManager{
		db:        db,
		repo:      repo,
		logger:    logger,
		validator: v,
		publisher: publisher,
		config:    config,
	}
}

// NewDefaultServiceManager creates a service manager with the default
// 7-day token lifetime and the real Stripe client.
func NewDefaultServiceManager(db *gorm.DB, repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.EventPublisher, tokenSecret, paymentSecretKey string) ServiceManager {
	return NewServiceManager(db, repo, logger, v, publisher, ServiceManagerConfig{
		TokenSecret:      tokenSecret,
		TokenTTL:         DefaultTokenTTL,
		PaymentSecretKey: paymentSecretKey,
	})
}

func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if sm.repo == nil {
		return fmt.Errorf("repository is required")
	}

	intentClient := sm.config.IntentClient
	if intentClient == nil {
		intentClient = NewStripeIntentClient(sm.config.PaymentSecretKey)
	}

	sm.directoryService = NewDirectoryService(sm.repo, sm.logger, sm.validator)
	sm.catalogService = NewCatalogService(sm.repo, sm.logger, sm.validator)
	sm.ledgerService = NewLedgerService(sm.repo, sm.logger, sm.validator, sm.publisher)
	sm.tokenService = NewTokenService(sm.config.TokenSecret, sm.config.TokenTTL)
	sm.paymentService = NewPaymentService(intentClient, sm.logger, sm.publisher)
	sm.exportService = NewExportService(sm.repo, sm.logger)

	sm.initialized = true
	sm.logger.Info("services initialized")
	return nil
}

func (sm *serviceManager) Directory() DirectoryService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.directoryService
}

func (sm *serviceManager) Catalog() CatalogService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.catalogService
}

func (sm *serviceManager) Ledger() LedgerService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.ledgerService
}

func (sm *serviceManager) Token() TokenService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.tokenService
}

func (sm *serviceManager) Payment() PaymentService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.paymentService
}

func (sm *serviceManager) Export() ExportService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.exportService
}

func (sm *serviceManager) HealthCheck(ctx context.Context) error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		return fmt.Errorf("services not initialized")
	}
	if sm.shutdown {
		return fmt.Errorf("services are shut down")
	}
	return sm.repo.Ping(ctx)
}

func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.shutdown {
		return nil
	}
	sm.shutdown = true

	if sm.publisher != nil {
		if err := sm.publisher.Close(); err != nil {
			sm.logger.Error("failed to close event publisher", "error", err)
		}
	}

	sm.logger.Info("services shut down")
	return nil
}
