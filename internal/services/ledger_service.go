package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/enrollment-service/internal/events"
	"github.com/SAP-F-2025/enrollment-service/internal/models"
	"github.com/SAP-F-2025/enrollment-service/internal/repositories"
	"github.com/SAP-F-2025/enrollment-service/internal/validator"
)

type ledgerService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.EventPublisher
}

func NewLedgerService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.EventPublisher) LedgerService {
	return &ledgerService{
		repo:      repo,
		logger:    logger,
		validator: v,
		publisher: publisher,
	}
}

func (s *ledgerService) ListSelections(ctx context.Context) ([]*models.Selection, error) {
	selections, err := s.repo.Selection().List(ctx)
	if err != nil {
		return nil, err
	}
	return nonNilSelections(selections), nil
}

func (s *ledgerService) ListPopular(ctx context.Context, limit int) ([]*models.PopularClass, error) {
	popular, err := s.repo.Selection().Popular(ctx, limit)
	if err != nil {
		return nil, err
	}
	if popular == nil {
		popular = []*models.PopularClass{}
	}
	return popular, nil
}

func (s *ledgerService) ListPaidByInstructor(ctx context.Context, email string) ([]*models.Selection, error) {
	selections, err := s.repo.Selection().ListPaidByInstructor(ctx, email)
	if err != nil {
		return nil, err
	}
	return nonNilSelections(selections), nil
}

func (s *ledgerService) ListByStudent(ctx context.Context, email string) ([]*models.Selection, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidationFailed)
	}

	// An empty result is an empty success list here, unlike the catalog's
	// by-owner listing.
	selections, err := s.repo.Selection().ListByStudent(ctx, email)
	if err != nil {
		return nil, err
	}
	return nonNilSelections(selections), nil
}

// nonNilSelections keeps empty listings serializing as [] regardless of
// how the backing store represents zero rows.
func nonNilSelections(selections []*models.Selection) []*models.Selection {
	if selections == nil {
		return []*models.Selection{}
	}
	return selections
}

func (s *ledgerService) CreateSelection(ctx context.Context, req *validator.CreateSelectionRequest) (*models.InsertResult, error) {
	selection := &models.Selection{
		StudentEmail: req.StudentEmail,
		Email:        req.Email,
		ClassName:    req.ClassName,
		Image:        req.Image,
		Price:        req.Price,
	}
	if err := s.repo.Selection().Create(ctx, selection); err != nil {
		return nil, fmt.Errorf("failed to create selection: %w", err)
	}

	s.publish(ctx, &events.EnrollmentEvent{
		Type:         events.EventSelectionCreated,
		SelectionID:  selection.ID,
		StudentEmail: selection.StudentEmail,
		ClassName:    selection.ClassName,
		Price:        selection.Price,
	})

	return &models.InsertResult{InsertedID: selection.ID, Acknowledged: true}, nil
}

func (s *ledgerService) AttachTransaction(ctx context.Context, id uint, transactionID string) (*models.UpdateResult, error) {
	if transactionID == "" {
		return nil, fmt.Errorf("%w: transactionId is required", ErrValidationFailed)
	}

	result, err := s.repo.Selection().AttachTransaction(ctx, id, transactionID)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, fmt.Errorf("%w: selection %d", ErrNotFound, id)
	}

	s.publish(ctx, &events.EnrollmentEvent{
		Type:          events.EventTransactionAttached,
		SelectionID:   id,
		TransactionID: transactionID,
	})

	return result, nil
}

func (s *ledgerService) DeleteSelection(ctx context.Context, id uint) (*models.DeleteResult, error) {
	result, err := s.repo.Selection().Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, &events.EnrollmentEvent{
		Type:        events.EventSelectionRemoved,
		SelectionID: id,
	})

	return result, nil
}

// publish is fire-and-forget: a broker outage must never fail a request.
func (s *ledgerService) publish(ctx context.Context, event *events.EnrollmentEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish enrollment event", "type", event.Type, "error", err)
	}
}
