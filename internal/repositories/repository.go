package repositories

import "context"

// Repository aggregates the per-collection repository interfaces.
type Repository interface {
	// User directory
	User() UserRepository

	// Class catalog
	Class() ClassRepository

	// Enrollment ledger
	Selection() SelectionRepository

	// Transaction support
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	// Health check
	Ping(ctx context.Context) error

	// Close connections
	Close() error
}

// RepositoryManager manages repository lifecycle.
type RepositoryManager interface {
	// Initialize repositories with store connections
	Initialize() error

	// Get repository instance
	GetRepository() Repository

	// Health check for all repositories
	HealthCheck(ctx context.Context) error

	// Graceful shutdown
	Shutdown(ctx context.Context) error
}
