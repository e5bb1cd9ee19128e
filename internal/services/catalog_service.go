package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/enrollment-service/internal/models"
	"github.com/SAP-F-2025/enrollment-service/internal/repositories"
	"github.com/SAP-F-2025/enrollment-service/internal/validator"
)

type catalogService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewCatalogService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator) CatalogService {
	return &catalogService{
		repo:      repo,
		logger:    logger,
		validator: v,
	}
}

func (s *catalogService) ListClasses(ctx context.Context) ([]*models.Class, error) {
	classes, err := s.repo.Class().List(ctx)
	if err != nil {
		return nil, err
	}
	if classes == nil {
		classes = []*models.Class{}
	}
	return classes, nil
}

func (s *catalogService) GetClass(ctx context.Context, id uint) (*models.Class, error) {
	class, err := s.repo.Class().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: class %d", ErrNotFound, id)
		}
		return nil, err
	}
	return class, nil
}

func (s *catalogService) ListClassesByOwner(ctx context.Context, email string) ([]*models.Class, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidationFailed)
	}

	classes, err := s.repo.Class().ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	// An empty result set is absence for this listing.
	if len(classes) == 0 {
		return nil, fmt.Errorf("%w: no classes for %s", ErrNotFound, email)
	}
	return classes, nil
}

func (s *catalogService) CreateClass(ctx context.Context, req *validator.CreateClassRequest) (*models.InsertResult, error) {
	status := req.Status
	if status == "" {
		status = models.ClassStatusPending
	}

	class := &models.Class{
		ClassName:      req.ClassName,
		Image:          req.Image,
		InstructorName: req.InstructorName,
		Email:          req.Email,
		Seats:          req.Seats,
		Price:          req.Price,
		Status:         status,
	}
	if err := s.repo.Class().Create(ctx, class); err != nil {
		return nil, fmt.Errorf("failed to create class: %w", err)
	}

	s.logger.Info("class created", "class_id", class.ID, "owner", req.Email)
	return &models.InsertResult{InsertedID: class.ID, Acknowledged: true}, nil
}

func (s *catalogService) SetStatus(ctx context.Context, id uint, status string) (*models.UpdateResult, error) {
	result, err := s.repo.Class().UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info("class status updated", "class_id", id, "status", status)
	return result, nil
}

func (s *catalogService) DecrementSeats(ctx context.Context, id uint) (*models.UpdateResult, error) {
	return s.repo.Class().AdjustSeats(ctx, id, -1)
}

func (s *catalogService) IncrementSeats(ctx context.Context, id uint) (*models.UpdateResult, error) {
	return s.repo.Class().AdjustSeats(ctx, id, 1)
}

func (s *catalogService) ReplaceClass(ctx context.Context, id uint, req *validator.ReplaceClassRequest) (*models.UpdateResult, error) {
	result, err := s.repo.Class().Replace(ctx, id, repositories.ClassReplace{
		ClassName: req.ClassName,
		Image:     req.Image,
		Seats:     req.Seats,
		Price:     req.Price,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("class replaced", "class_id", id, "upserted", result.UpsertedID != nil)
	return result, nil
}
