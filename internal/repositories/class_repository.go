package repositories

import (
	"context"

	"github.com/SAP-F-2025/enrollment-service/internal/models"
)

// ClassRepository covers the class catalog collection.
type ClassRepository interface {
	// List returns every class record, unordered.
	List(ctx context.Context) ([]*models.Class, error)

	// GetByID fetches a single class.
	GetByID(ctx context.Context, id uint) (*models.Class, error)

	// ListByEmail filters the catalog by owner identity. An empty result is
	// returned as an empty slice; absence semantics belong to the caller.
	ListByEmail(ctx context.Context, email string) ([]*models.Class, error)

	// Create inserts a class unconditionally.
	Create(ctx context.Context, class *models.Class) error

	// UpdateStatus sets the status field unconditionally.
	UpdateStatus(ctx context.Context, id uint, status string) (*models.UpdateResult, error)

	// AdjustSeats applies the store's atomic increment primitive to the
	// seat count. Negative deltas have no floor check.
	AdjustSeats(ctx context.Context, id uint, delta int) (*models.UpdateResult, error)

	// Replace upserts exactly the four replaceable fields, creating the
	// record under the given id when it does not exist.
	Replace(ctx context.Context, id uint, fields ClassReplace) (*models.UpdateResult, error)
}
