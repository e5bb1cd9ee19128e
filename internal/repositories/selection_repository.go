package repositories

import (
	"context"

	"github.com/SAP-F-2025/enrollment-service/internal/models"
)

// SelectionRepository covers the enrollment ledger collection.
type SelectionRepository interface {
	// List returns every selection, unordered.
	List(ctx context.Context) ([]*models.Selection, error)

	// ListByStudent filters by student identity. Empty results are an empty
	// slice, not an error.
	ListByStudent(ctx context.Context, email string) ([]*models.Selection, error)

	// ListPaidByInstructor filters by instructor identity and payment
	// confirmation presence.
	ListPaidByInstructor(ctx context.Context, email string) ([]*models.Selection, error)

	// Popular aggregates paid selections by class name, ordered by count
	// descending, truncated to limit. Tie order is unspecified.
	Popular(ctx context.Context, limit int) ([]*models.PopularClass, error)

	// Create inserts a selection unconditionally; duplicates are legal.
	Create(ctx context.Context, selection *models.Selection) error

	// AttachTransaction records the payment confirmation on a selection.
	AttachTransaction(ctx context.Context, id uint, transactionID string) (*models.UpdateResult, error)

	// Delete removes a selection by record id.
	Delete(ctx context.Context, id uint) (*models.DeleteResult, error)
}
