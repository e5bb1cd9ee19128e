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

type directoryService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
}

func NewDirectoryService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator) DirectoryService {
	return &directoryService{
		repo:      repo,
		logger:    logger,
		validator: v,
	}
}

func (s *directoryService) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.repo.User().List(ctx)
	if err != nil {
		return nil, err
	}
	return nonNilUsers(users), nil
}

func (s *directoryService) ListInstructors(ctx context.Context) ([]*models.User, error) {
	users, err := s.repo.User().ListByRole(ctx, models.RoleInstructor)
	if err != nil {
		return nil, err
	}
	return nonNilUsers(users), nil
}

// nonNilUsers keeps empty listings serializing as [] regardless of how
// the backing store represents zero rows.
func nonNilUsers(users []*models.User) []*models.User {
	if users == nil {
		return []*models.User{}
	}
	return users
}

func (s *directoryService) GetRoleFlags(ctx context.Context, email string) (*models.RoleFlags, bool, error) {
	user, err := s.repo.User().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to look up role flags: %w", err)
	}

	flags := user.Flags()
	return &flags, true, nil
}

func (s *directoryService) Register(ctx context.Context, req *validator.RegisterUserRequest) (*models.InsertResult, bool, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, false, fmt.Errorf("%w: %s", ErrValidationFailed, errs.Error())
	}

	exists, err := s.repo.User().ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		s.logger.Info("registration skipped, user exists", "email", req.Email)
		return nil, false, nil
	}

	// Registration never rejects; roles outside the vocabulary (and the
	// empty string) are stored as student.
	role := models.UserRole(req.Role)
	if !validator.IsKnownRole(req.Role) {
		role = models.RoleStudent
	}

	user := &models.User{
		Name:  req.Name,
		Email: req.Email,
		Photo: req.Photo,
		Role:  role,
	}
	if err := s.repo.User().Create(ctx, user); err != nil {
		return nil, false, fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.Info("user registered", "email", req.Email, "role", role)
	return &models.InsertResult{InsertedID: user.ID, Acknowledged: true}, true, nil
}

func (s *directoryService) SetRole(ctx context.Context, id uint, role string) (*models.UpdateResult, error) {
	if !validator.IsAssignableRole(role) {
		return nil, fmt.Errorf("%w: role must be admin or instructor", ErrValidationFailed)
	}

	result, err := s.repo.User().UpdateRole(ctx, id, models.UserRole(role))
	if err != nil {
		return nil, fmt.Errorf("failed to set role: %w", err)
	}

	s.logger.Info("user role updated", "user_id", id, "role", role)
	return result, nil
}
