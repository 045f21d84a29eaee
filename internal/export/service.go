package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/fleetware/transport-ops/internal/repository"
)

// Service is a tiny façade over the toll repository that produces XLSX
// bytes for finance exports.
type Service struct {
	tolls  repository.TollRepository
	logger *slog.Logger
}

func NewService(tolls repository.TollRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{tolls: tolls, logger: logger}
}

// ExportTollsXLSX returns an XLSX workbook (as bytes) for the date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> every toll.
func (s *Service) ExportTollsXLSX(ctx context.Context, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}

	tolls, err := s.tolls.ListByDateRange(ctx, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query tolls: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Tolls"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Transaction Date",
		"Tolling Point",
		"Etag ID",
		"Net Amount",
		"Process Status",
		"Capture ID",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, t := range tolls {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, t.TransactionDate.Format("2006-01-02 15:04:05"))
		write(2, t.TollingPoint)
		write(3, t.EtagID)
		write(4, t.NetAmount)
		write(5, t.ProcessStatus)
		write(6, t.CaptureID.String())

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 20) // date
	_ = f.SetColWidth(sheet, "B", "B", 32) // tolling point
	_ = f.SetColWidth(sheet, "C", "C", 16) // etag
	_ = f.SetColWidth(sheet, "D", "E", 14) // amount, status
	_ = f.SetColWidth(sheet, "F", "F", 40) // capture id

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(tolls),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
