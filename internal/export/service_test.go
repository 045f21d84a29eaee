package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/fleetware/transport-ops/internal/entity"
)

type fakeTollRepo struct {
	tolls []*entity.Toll
	from  *time.Time
	to    *time.Time
}

func (f *fakeTollRepo) Insert(_ context.Context, t *entity.Toll) (*entity.Toll, error) {
	return t, nil
}
func (f *fakeTollRepo) ListByCapture(context.Context, uuid.UUID) ([]*entity.Toll, error) {
	return f.tolls, nil
}
func (f *fakeTollRepo) ListByDateRange(_ context.Context, from, to *time.Time) ([]*entity.Toll, error) {
	f.from = from
	f.to = to
	return f.tolls, nil
}

func TestExportTollsXLSX(t *testing.T) {
	driverID := uuid.New()
	repo := &fakeTollRepo{tolls: []*entity.Toll{
		{
			ID:              uuid.New(),
			TransactionDate: time.Date(2026, 3, 1, 8, 15, 0, 0, time.UTC),
			TollingPoint:    "Harbour Bridge",
			EtagID:          "E100",
			NetAmount:       4.5,
			CaptureID:       uuid.New(),
			DriverID:        &driverID,
			ProcessStatus:   "PENDING",
		},
		{
			ID:              uuid.New(),
			TransactionDate: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
			TollingPoint:    "Tunnel",
			EtagID:          "E200",
			NetAmount:       6.2,
			CaptureID:       uuid.New(),
			ProcessStatus:   "PENDING",
		},
	}}
	svc := NewService(repo, nil)

	raw, err := svc.ExportTollsXLSX(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("ExportTollsXLSX: %v", err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer wb.Close()

	rows, err := wb.GetRows("Tolls")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}
	if rows[0][0] != "Transaction Date" || rows[0][2] != "Etag ID" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][1] != "Harbour Bridge" || rows[1][2] != "E100" {
		t.Errorf("row 1 = %v", rows[1])
	}
	if rows[2][1] != "Tunnel" {
		t.Errorf("row 2 = %v", rows[2])
	}
}

func TestExportDateWindowNormalisation(t *testing.T) {
	repo := &fakeTollRepo{}
	svc := NewService(repo, nil)

	from := time.Date(2026, 3, 1, 14, 30, 0, 0, time.Local)
	to := time.Date(2026, 3, 5, 2, 0, 0, 0, time.Local)
	if _, err := svc.ExportTollsXLSX(context.Background(), &from, &to); err != nil {
		t.Fatalf("ExportTollsXLSX: %v", err)
	}

	if repo.from == nil || !repo.from.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("from = %v, want start of day UTC", repo.from)
	}
	if repo.to == nil || !repo.to.Equal(time.Date(2026, 3, 5, 23, 59, 59, 0, time.UTC)) {
		t.Errorf("to = %v, want end of day UTC", repo.to)
	}
}

func TestExportOpenEndedWindowDefaultsToToday(t *testing.T) {
	repo := &fakeTollRepo{}
	svc := NewService(repo, nil)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if _, err := svc.ExportTollsXLSX(context.Background(), &from, nil); err != nil {
		t.Fatalf("ExportTollsXLSX: %v", err)
	}
	if repo.to == nil {
		t.Fatal("open-ended from must close the window at today")
	}
	now := time.Now().UTC()
	if repo.to.Day() != now.Day() || repo.to.Hour() != 23 {
		t.Errorf("to = %v", repo.to)
	}
}
