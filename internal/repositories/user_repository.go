package repositories

import (
	"context"

	"github.com/SAP-F-2025/enrollment-service/internal/models"
)

// UserRepository covers the user directory collection.
type UserRepository interface {
	// List returns every user record, unordered.
	List(ctx context.Context) ([]*models.User, error)

	// ListByRole filters the directory to a single role.
	ListByRole(ctx context.Context, role models.UserRole) ([]*models.User, error)

	// GetByEmail looks a user up by identity. Returns gorm.ErrRecordNotFound
	// wrapped when no record exists.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// ExistsByEmail reports whether a record with the identity exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create inserts a new record. The caller is responsible for the
	// exists-check; this layer does not enforce idempotence beyond the
	// unique index on email.
	Create(ctx context.Context, user *models.User) error

	// UpdateRole sets the role on the record with the given id. Role
	// vocabulary is validated upstream.
	UpdateRole(ctx context.Context, id uint, role models.UserRole) (*models.UpdateResult, error)
}
