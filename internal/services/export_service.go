package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/SAP-F-2025/enrollment-service/internal/repositories"
)

const exportSheet = "Selections"

type exportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{
		repo:   repo,
		logger: logger,
	}
}

// ExportSelections renders the full enrollment ledger as an XLSX workbook,
// one row per selection, for admin reporting.
func (s *exportService) ExportSelections(ctx context.Context) ([]byte, string, error) {
	selections, err := s.repo.Selection().List(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load ledger for export: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, "", fmt.Errorf("failed to prepare export sheet: %w", err)
	}

	headers := []string{"ID", "Student Email", "Instructor Email", "Class Name", "Price", "Transaction ID", "Paid", "Created At"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return nil, "", err
		}
	}

	for row, sel := range selections {
		txn := ""
		if sel.TransactionID != nil {
			txn = *sel.TransactionID
		}
		values := []interface{}{
			sel.ID,
			sel.StudentEmail,
			sel.Email,
			sel.ClassName,
			sel.Price,
			txn,
			sel.Paid(),
			sel.CreatedAt.Format(time.RFC3339),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, "", err
			}
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return nil, "", err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to render export: %w", err)
	}

	filename := fmt.Sprintf("selections-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	s.logger.Info("ledger exported", "rows", len(selections), "filename", filename)

	return buf.Bytes(), filename, nil
}
