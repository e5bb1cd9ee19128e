package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/enrollment-service/internal/models"
	"github.com/SAP-F-2025/enrollment-service/internal/repositories"
)

type classRepository struct {
	db *gorm.DB
}

func NewClassPostgreSQL(db *gorm.DB) repositories.ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) List(ctx context.Context) ([]*models.Class, error) {
	// Initialized so zero rows serialize as an empty JSON array.
	classes := make([]*models.Class, 0)

	if err := r.db.WithContext(ctx).Find(&classes).Error; err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}
	return classes, nil
}

func (r *classRepository) GetByID(ctx context.Context, id uint) (*models.Class, error) {
	var class models.Class

	if err := r.db.WithContext(ctx).First(&class, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get class: %w", err)
	}
	return &class, nil
}

func (r *classRepository) ListByEmail(ctx context.Context, email string) ([]*models.Class, error) {
	classes := make([]*models.Class, 0)

	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Find(&classes).Error; err != nil {
		return nil, fmt.Errorf("failed to list classes by owner: %w", err)
	}
	return classes, nil
}

func (r *classRepository) Create(ctx context.Context, class *models.Class) error {
	if err := r.db.WithContext(ctx).Create(class).Error; err != nil {
		return fmt.Errorf("failed to create class: %w", err)
	}
	return nil
}

func (r *classRepository) UpdateStatus(ctx context.Context, id uint, status string) (*models.UpdateResult, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Class{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update class status: %w", result.Error)
	}

	return &models.UpdateResult{
		MatchedCount:  result.RowsAffected,
		ModifiedCount: result.RowsAffected,
	}, nil
}

// AdjustSeats relies on the database's atomic column arithmetic, the same
// guarantee $inc gave on the old document store. There is
// deliberately no floor: concurrent selections may drive seats negative.
func (r *classRepository) AdjustSeats(ctx context.Context, id uint, delta int) (*models.UpdateResult, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Class{}).
		Where("id = ?", id).
		Update("seats", gorm.Expr("seats + ?", delta))
	if result.Error != nil {
		return nil, fmt.Errorf("failed to adjust class seats: %w", result.Error)
	}

	return &models.UpdateResult{
		MatchedCount:  result.RowsAffected,
		ModifiedCount: result.RowsAffected,
	}, nil
}

// Replace writes exactly the four replaceable fields. When no record with
// the id exists, one is created under that id (upsert semantics); owner
// identity and status are never touched by this path.
func (r *classRepository) Replace(ctx context.Context, id uint, fields repositories.ClassReplace) (*models.UpdateResult, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Class{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"class_name": fields.ClassName,
			"image":      fields.Image,
			"seats":      fields.Seats,
			"price":      fields.Price,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to replace class: %w", result.Error)
	}

	if result.RowsAffected > 0 {
		return &models.UpdateResult{
			MatchedCount:  result.RowsAffected,
			ModifiedCount: result.RowsAffected,
		}, nil
	}

	class := models.Class{
		ID:        id,
		ClassName: fields.ClassName,
		Image:     fields.Image,
		Seats:     fields.Seats,
		Price:     fields.Price,
	}
	if err := r.db.WithContext(ctx).Create(&class).Error; err != nil {
		return nil, fmt.Errorf("failed to upsert class: %w", err)
	}

	upserted := class.ID
	return &models.UpdateResult{
		MatchedCount:  0,
		ModifiedCount: 0,
		UpsertedID:    &upserted,
	}, nil
}
