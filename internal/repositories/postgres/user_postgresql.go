package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/SAP-F-2025/enrollment-service/internal/cache"
	"github.com/SAP-F-2025/enrollment-service/internal/models"
	"github.com/SAP-F-2025/enrollment-service/internal/repositories"
)

type userRepository struct {
	db          *gorm.DB
	cacheHelper *cache.CacheHelper
}

func NewUserPostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.UserRepository {
	return &userRepository{
		db:          db,
		cacheHelper: cache.NewCacheHelper(redisClient, cache.DirectoryCacheConfig.Prefix),
	}
}

func (r *userRepository) List(ctx context.Context) ([]*models.User, error) {
	// Find leaves the slice untouched on zero rows; callers serialize
	// these, so empty must stay a JSON array, not null.
	users := make([]*models.User, 0)

	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *userRepository) ListByRole(ctx context.Context, role models.UserRole) ([]*models.User, error) {
	users := make([]*models.User, 0)

	if err := r.db.WithContext(ctx).
		Where("role = ?", role).
		Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users by role: %w", err)
	}
	return users, nil
}

// GetByEmail serves hot identity lookups from the cache when Redis is
// attached. Only hits are cached; absence always goes to the database.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	if err := r.cacheHelper.Get(ctx, email, &user); err == nil {
		return &user, nil
	}

	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := r.cacheHelper.Set(ctx, email, &user, cache.DirectoryCacheConfig.TTL); err != nil {
		slog.WarnContext(ctx, "Failed to cache user lookup", "error", err, "email", email)
	}
	return &user, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64

	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return count > 0, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	cache.SafeDelete(ctx, r.cacheHelper, user.Email)
	return nil
}

func (r *userRepository) UpdateRole(ctx context.Context, id uint, role models.UserRole) (*models.UpdateResult, error) {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("role", role)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update user role: %w", result.Error)
	}

	// Role updates arrive by id, so the cached email entry for the user
	// cannot be targeted directly.
	cache.SafeInvalidatePattern(ctx, r.cacheHelper, "*")

	return &models.UpdateResult{
		MatchedCount:  result.RowsAffected,
		ModifiedCount: result.RowsAffected,
	}, nil
}
