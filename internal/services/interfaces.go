package services

import (
	"context"
	"errors"

	"github.com/SAP-F-2025/enrollment-service/internal/models"
	"github.com/SAP-F-2025/enrollment-service/internal/validator"
)

// ===== SERVICE ERRORS =====

var (
	ErrValidationFailed = errors.New("validation failed")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("resource not found")
)

// ===== SERVICE INTERFACES =====

// DirectoryService covers the user directory.
type DirectoryService interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	ListInstructors(ctx context.Context) ([]*models.User, error)

	// GetRoleFlags classifies the user's role. A missing user is reported
	// through found=false, never as an error: callers serialize an explicit
	// not-found payload with a success status.
	GetRoleFlags(ctx context.Context, email string) (flags *models.RoleFlags, found bool, err error)

	// Register is idempotent by email: an existing record is never
	// overwritten and created=false is returned.
	Register(ctx context.Context, req *validator.RegisterUserRequest) (result *models.InsertResult, created bool, err error)

	// SetRole rejects any role outside {admin, instructor} with
	// ErrValidationFailed and performs no mutation in that case.
	SetRole(ctx context.Context, id uint, role string) (*models.UpdateResult, error)
}

// CatalogService covers the class catalog.
type CatalogService interface {
	ListClasses(ctx context.Context) ([]*models.Class, error)
	GetClass(ctx context.Context, id uint) (*models.Class, error)

	// ListClassesByOwner returns ErrValidationFailed for an empty email and
	// ErrNotFound when the owner has no classes (the empty result is
	// absence for this listing, unlike the ledger's by-student listing).
	ListClassesByOwner(ctx context.Context, email string) ([]*models.Class, error)

	CreateClass(ctx context.Context, req *validator.CreateClassRequest) (*models.InsertResult, error)

	// SetStatus sets whatever it is given; the status vocabulary is a
	// collaborator convention, not enforced here.
	SetStatus(ctx context.Context, id uint, status string) (*models.UpdateResult, error)

	// DecrementSeats subtracts exactly one seat atomically, with no floor.
	DecrementSeats(ctx context.Context, id uint) (*models.UpdateResult, error)

	// IncrementSeats returns one seat, the compensation when a student
	// removes a cart entry. Not transactional with the ledger delete.
	IncrementSeats(ctx context.Context, id uint) (*models.UpdateResult, error)

	ReplaceClass(ctx context.Context, id uint, req *validator.ReplaceClassRequest) (*models.UpdateResult, error)
}

// LedgerService covers the enrollment ledger.
type LedgerService interface {
	ListSelections(ctx context.Context) ([]*models.Selection, error)
	ListPopular(ctx context.Context, limit int) ([]*models.PopularClass, error)
	ListPaidByInstructor(ctx context.Context, email string) ([]*models.Selection, error)

	// ListByStudent returns an empty success list for a student with no
	// selections; this asymmetry with the catalog's by-owner listing is
	// part of the contract.
	ListByStudent(ctx context.Context, email string) ([]*models.Selection, error)

	CreateSelection(ctx context.Context, req *validator.CreateSelectionRequest) (*models.InsertResult, error)

	// AttachTransaction promotes a selection to paid; ErrNotFound when no
	// record matches the id.
	AttachTransaction(ctx context.Context, id uint, transactionID string) (*models.UpdateResult, error)

	// DeleteSelection removes by record id. There is no ownership check;
	// the frontend only offers deletion of the caller's own entries.
	DeleteSelection(ctx context.Context, id uint) (*models.DeleteResult, error)
}

// TokenService signs and verifies identity claims.
type TokenService interface {
	// Issue signs a bearer token embedding the email claim.
	Issue(email string) (string, error)

	// Verify checks signature and expiry and returns the embedded email.
	// Failures are reported as ErrUnauthorized.
	Verify(token string) (string, error)
}

// PaymentService is the checkout gateway adapter.
type PaymentService interface {
	// CreateIntent converts price to minor currency units and requests a
	// card-only usd payment intent, returning its client secret.
	CreateIntent(ctx context.Context, price float64) (clientSecret string, err error)
}

// ExportService produces admin reports from the ledger.
type ExportService interface {
	// ExportSelections renders the full ledger as an XLSX workbook.
	ExportSelections(ctx context.Context) (content []byte, filename string, err error)
}

// ===== SERVICE MANAGER =====

type ServiceManager interface {
	Directory() DirectoryService
	Catalog() CatalogService
	Ledger() LedgerService
	Token() TokenService
	Payment() PaymentService
	Export() ExportService

	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
