package postgres

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/SAP-F-2025/enrollment-service/internal/cache"
	"github.com/SAP-F-2025/enrollment-service/internal/models"
	"github.com/SAP-F-2025/enrollment-service/internal/repositories"
)

type selectionRepository struct {
	db          *gorm.DB
	cacheHelper *cache.CacheHelper
}

func NewSelectionPostgreSQL(db *gorm.DB, redisClient *redis.Client) repositories.SelectionRepository {
	return &selectionRepository{
		db:          db,
		cacheHelper: cache.NewCacheHelper(redisClient, cache.PopularCacheConfig.Prefix),
	}
}

func (r *selectionRepository) List(ctx context.Context) ([]*models.Selection, error) {
	// Initialized so zero rows serialize as an empty JSON array.
	selections := make([]*models.Selection, 0)

	if err := r.db.WithContext(ctx).Find(&selections).Error; err != nil {
		return nil, fmt.Errorf("failed to list selections: %w", err)
	}
	return selections, nil
}

func (r *selectionRepository) ListByStudent(ctx context.Context, email string) ([]*models.Selection, error) {
	selections := make([]*models.Selection, 0)

	if err := r.db.WithContext(ctx).
		Where("student_email = ?", email).
		Find(&selections).Error; err != nil {
		return nil, fmt.Errorf("failed to list selections by student: %w", err)
	}
	return selections, nil
}

func (r *selectionRepository) ListPaidByInstructor(ctx context.Context, email string) ([]*models.Selection, error) {
	selections := make([]*models.Selection, 0)

	if err := r.db.WithContext(ctx).
		Where("email = ? AND transaction_id IS NOT NULL", email).
		Find(&selections).Error; err != nil {
		return nil, fmt.Errorf("failed to list paid selections: %w", err)
	}
	return selections, nil
}

// Popular groups paid selections by class name and orders by count. The
// representative image/price per group use MIN, standing in for the
// arbitrary pick the Mongo pipeline made with $first. Results are served from the
// cache when Redis is attached; mutations invalidate the key.
func (r *selectionRepository) Popular(ctx context.Context, limit int) ([]*models.PopularClass, error) {
	if limit <= 0 {
		limit = repositories.DefaultPopularLimit
	}

	cacheKey := fmt.Sprintf("top:%d", limit)

	popular := make([]*models.PopularClass, 0)
	err := r.cacheHelper.GetOrSet(ctx, cacheKey, &popular, cache.PopularCacheConfig.TTL, func() (interface{}, error) {
		rows := make([]*models.PopularClass, 0)
		if err := r.db.WithContext(ctx).
			Model(&models.Selection{}).
			Select("class_name, COUNT(*) AS count, MIN(image) AS image, MIN(price) AS price").
			Where("transaction_id IS NOT NULL").
			Group("class_name").
			Order("count DESC").
			Limit(limit).
			Scan(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to aggregate popular classes: %w", err)
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return popular, nil
}

func (r *selectionRepository) Create(ctx context.Context, selection *models.Selection) error {
	if err := r.db.WithContext(ctx).Create(selection).Error; err != nil {
		return fmt.Errorf("failed to create selection: %w", err)
	}

	cache.SafeInvalidatePattern(ctx, r.cacheHelper, "top:*")
	return nil
}

func (r *selectionRepository) AttachTransaction(ctx context.Context, id uint, transactionID string) (*models.UpdateResult, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Selection{}).
		Where("id = ?", id).
		Update("transaction_id", transactionID)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to attach transaction: %w", result.Error)
	}

	cache.SafeInvalidatePattern(ctx, r.cacheHelper, "top:*")

	return &models.UpdateResult{
		MatchedCount:  result.RowsAffected,
		ModifiedCount: result.RowsAffected,
	}, nil
}

func (r *selectionRepository) Delete(ctx context.Context, id uint) (*models.DeleteResult, error) {
	result := r.db.WithContext(ctx).Delete(&models.Selection{}, id)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to delete selection: %w", result.Error)
	}

	cache.SafeInvalidatePattern(ctx, r.cacheHelper, "top:*")

	return &models.DeleteResult{
		DeletedCount: result.RowsAffected,
		Acknowledged: true,
	}, nil
}
