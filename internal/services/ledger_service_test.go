package services

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/SAP-F-2025/enrollment-service/internal/events"
	"github.com/SAP-F-2025/enrollment-service/internal/models"
	"github.com/SAP-F-2025/enrollment-service/internal/repositories"
	"github.com/SAP-F-2025/enrollment-service/internal/validator"
)

func TestNewLedgerService(t *testing.T) {
	type args struct {
		repo      repositories.Repository
		logger    *slog.Logger
		validator *validator.Validator
		publisher events.EventPublisher
	}
	tests := []struct {
		name string
		args args
		want LedgerService
	}{
		{name: "ok"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			NewLedgerService(tt.args.repo, tt.args.logger, tt.args.validator, tt.args.publisher)
		})
	}
}

func newLedgerForTest() (LedgerService, *MockRepository, *events.MockEventPublisher) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	repo := NewMockRepository()
	publisher := events.NewMockEventPublisher(logger)
	return NewLedgerService(repo, logger, validator.New(), publisher), repo, publisher
}

func txn(id string) *string { return &id }

func TestLedgerService_ListByStudent(t *testing.T) {
	service, repo, _ := newLedgerForTest()
	ctx := context.Background()

	repo.selections.Selections = []*models.Selection{
		{ID: 1, StudentEmail: "kid@example.com", ClassName: "Drawing"},
		{ID: 2, StudentEmail: "other@example.com", ClassName: "Pottery"},
	}

	t.Run("student with selections", func(t *testing.T) {
		selections, err := service.ListByStudent(ctx, "kid@example.com")
		if err != nil {
			t.Fatalf("listing failed: %v", err)
		}
		if len(selections) != 1 {
			t.Fatalf("expected 1 selection, got %d", len(selections))
		}
	})

	t.Run("empty email rejected", func(t *testing.T) {
		_, err := service.ListByStudent(ctx, "")
		if !errors.Is(err, ErrValidationFailed) {
			t.Fatalf("expected ErrValidationFailed, got %v", err)
		}
	})

	t.Run("no selections is an empty success list", func(t *testing.T) {
		selections, err := service.ListByStudent(ctx, "ghost@example.com")
		if err != nil {
			t.Fatalf("empty ledger must not be an error: %v", err)
		}
		if selections == nil || len(selections) != 0 {
			t.Fatalf("expected empty list, got %v", selections)
		}
	})
}

func TestLedgerService_ListPopular(t *testing.T) {
	service, repo, _ := newLedgerForTest()

	// B has 3 paid, A has 2 paid, C has 1 paid, D exists only unpaid.
	repo.selections.Selections = []*models.Selection{
		{ID: 1, ClassName: "A", Image: "a.png", Price: 10, TransactionID: txn("t1")},
		{ID: 2, ClassName: "B", Image: "b.png", Price: 20, TransactionID: txn("t2")},
		{ID: 3, ClassName: "B", Image: "b.png", Price: 20, TransactionID: txn("t3")},
		{ID: 4, ClassName: "C", Image: "c.png", Price: 30, TransactionID: txn("t4")},
		{ID: 5, ClassName: "B", Image: "b.png", Price: 20, TransactionID: txn("t5")},
		{ID: 6, ClassName: "A", Image: "a.png", Price: 10, TransactionID: txn("t6")},
		{ID: 7, ClassName: "D", Image: "d.png", Price: 40},
	}

	popular, err := service.ListPopular(context.Background(), repositories.DefaultPopularLimit)
	if err != nil {
		t.Fatalf("ListPopular failed: %v", err)
	}
	if len(popular) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(popular))
	}
	if popular[0].ClassName != "B" || popular[0].Count != 3 {
		t.Errorf("expected B first with count 3, got %+v", popular[0])
	}
	if popular[1].ClassName != "A" || popular[1].Count != 2 {
		t.Errorf("expected A second with count 2, got %+v", popular[1])
	}
	if popular[2].ClassName != "C" || popular[2].Count != 1 {
		t.Errorf("expected C third with count 1, got %+v", popular[2])
	}
	for _, row := range popular {
		if row.ClassName == "D" {
			t.Error("unpaid class must not appear in popularity")
		}
	}
}

func TestLedgerService_EmptyListingsAreNotNil(t *testing.T) {
	service, _, _ := newLedgerForTest()
	ctx := context.Background()

	selections, err := service.ListSelections(ctx)
	if err != nil {
		t.Fatalf("ListSelections failed: %v", err)
	}
	if selections == nil {
		t.Error("ListSelections returned nil for an empty ledger")
	}

	popular, err := service.ListPopular(ctx, repositories.DefaultPopularLimit)
	if err != nil {
		t.Fatalf("ListPopular failed: %v", err)
	}
	if popular == nil {
		t.Error("ListPopular returned nil for an empty ledger")
	}

	paid, err := service.ListPaidByInstructor(ctx, "teach@example.com")
	if err != nil {
		t.Fatalf("ListPaidByInstructor failed: %v", err)
	}
	if paid == nil {
		t.Error("ListPaidByInstructor returned nil for an empty ledger")
	}
}

func TestLedgerService_CreateSelection_PublishesEvent(t *testing.T) {
	service, repo, publisher := newLedgerForTest()

	result, err := service.CreateSelection(context.Background(), &validator.CreateSelectionRequest{
		StudentEmail: "kid@example.com",
		Email:        "teach@example.com",
		ClassName:    "Drawing",
		Price:        49.99,
	})
	if err != nil {
		t.Fatalf("CreateSelection failed: %v", err)
	}
	if !result.Acknowledged || result.InsertedID == 0 {
		t.Fatalf("unexpected insert result: %+v", result)
	}
	if len(repo.selections.Selections) != 1 {
		t.Fatalf("selection not stored")
	}
	if repo.selections.Selections[0].TransactionID != nil {
		t.Error("a new selection must start unpaid")
	}

	published := publisher.GetPublishedEvents()
	if len(published) != 1 {
		t.Fatalf("expected 1 event, got %d", len(published))
	}
	event := published[0]
	if event.Type != events.EventSelectionCreated {
		t.Errorf("wrong event type: %s", event.Type)
	}
	if event.StudentEmail != "kid@example.com" || event.ClassName != "Drawing" {
		t.Errorf("event payload mismatch: %+v", event)
	}
	if event.ID == "" || event.OccurredAt.IsZero() {
		t.Error("event missing id or timestamp")
	}
}

func TestLedgerService_AttachTransaction(t *testing.T) {
	service, repo, publisher := newLedgerForTest()
	ctx := context.Background()

	repo.selections.Selections = []*models.Selection{
		{ID: 3, StudentEmail: "kid@example.com", ClassName: "Drawing"},
	}

	t.Run("attaches and publishes", func(t *testing.T) {
		result, err := service.AttachTransaction(ctx, 3, "pi_abc123")
		if err != nil {
			t.Fatalf("AttachTransaction failed: %v", err)
		}
		if result.ModifiedCount != 1 {
			t.Errorf("unexpected result: %+v", result)
		}
		if !repo.selections.Selections[0].Paid() {
			t.Error("selection not marked paid")
		}

		published := publisher.GetPublishedEvents()
		if len(published) != 1 || published[0].Type != events.EventTransactionAttached {
			t.Fatalf("expected one transaction_attached event, got %v", published)
		}
		if published[0].TransactionID != "pi_abc123" {
			t.Errorf("event missing transaction id: %+v", published[0])
		}
	})

	t.Run("missing selection", func(t *testing.T) {
		_, err := service.AttachTransaction(ctx, 99, "pi_missing")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("empty transaction id", func(t *testing.T) {
		_, err := service.AttachTransaction(ctx, 3, "")
		if !errors.Is(err, ErrValidationFailed) {
			t.Fatalf("expected ErrValidationFailed, got %v", err)
		}
	})
}

func TestLedgerService_DeleteSelection(t *testing.T) {
	service, repo, publisher := newLedgerForTest()
	ctx := context.Background()

	repo.selections.Selections = []*models.Selection{
		{ID: 1, StudentEmail: "kid@example.com", ClassName: "Drawing"},
	}

	result, err := service.DeleteSelection(ctx, 1)
	if err != nil {
		t.Fatalf("DeleteSelection failed: %v", err)
	}
	if result.DeletedCount != 1 {
		t.Errorf("unexpected result: %+v", result)
	}
	if len(repo.selections.Selections) != 0 {
		t.Error("selection not removed")
	}

	published := publisher.GetPublishedEvents()
	if len(published) != 1 || published[0].Type != events.EventSelectionRemoved {
		t.Fatalf("expected one selection.removed event, got %v", published)
	}

	// Deleting an absent record still succeeds with a zero count.
	result, err = service.DeleteSelection(ctx, 1)
	if err != nil {
		t.Fatalf("repeat delete failed: %v", err)
	}
	if result.DeletedCount != 0 {
		t.Errorf("expected zero deletions, got %+v", result)
	}
}

func TestLedgerService_ListPaidByInstructor(t *testing.T) {
	service, repo, _ := newLedgerForTest()

	repo.selections.Selections = []*models.Selection{
		{ID: 1, Email: "teach@example.com", ClassName: "Drawing", TransactionID: txn("t1")},
		{ID: 2, Email: "teach@example.com", ClassName: "Painting"},
		{ID: 3, Email: "other@example.com", ClassName: "Pottery", TransactionID: txn("t2")},
	}

	selections, err := service.ListPaidByInstructor(context.Background(), "teach@example.com")
	if err != nil {
		t.Fatalf("ListPaidByInstructor failed: %v", err)
	}
	if len(selections) != 1 || selections[0].ID != 1 {
		t.Fatalf("expected only the paid selection for the instructor, got %v", selections)
	}
}
