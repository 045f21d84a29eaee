package trips

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/fleetware/transport-ops/constants"
	"github.com/fleetware/transport-ops/internal/common"
	"github.com/fleetware/transport-ops/internal/entity"
	"github.com/fleetware/transport-ops/internal/repository"
)

type fakeTripRepo struct {
	statuses []constants.TripStatus
	update   *repository.TripUpdate
	drops    []int
	dropsSet bool
}

func (f *fakeTripRepo) CreateDraft(context.Context, uuid.UUID, uuid.UUID) (*entity.Trip, error) {
	return nil, errors.New("not used")
}
func (f *fakeTripRepo) GetByID(context.Context, uuid.UUID) (*entity.Trip, error) {
	return nil, errors.New("not used")
}
func (f *fakeTripRepo) SetStatus(_ context.Context, _ uuid.UUID, status constants.TripStatus) error {
	f.statuses = append(f.statuses, status)
	return nil
}
func (f *fakeTripRepo) UpdateFields(_ context.Context, _ uuid.UUID, upd repository.TripUpdate) error {
	f.update = &upd
	return nil
}
func (f *fakeTripRepo) ReplaceDrops(_ context.Context, _ uuid.UUID, readings []int) error {
	f.drops = readings
	f.dropsSet = true
	return nil
}

type fakeDNCRepo struct {
	noteNumber string
}

func (f *fakeDNCRepo) Create(context.Context, uuid.UUID, string) (*entity.DeliveryNoteCapture, error) {
	return nil, errors.New("not used")
}
func (f *fakeDNCRepo) GetByID(context.Context, uuid.UUID) (*entity.DeliveryNoteCapture, error) {
	return nil, errors.New("not used")
}
func (f *fakeDNCRepo) SetStatus(context.Context, uuid.UUID, constants.CaptureStatus) error {
	return nil
}
func (f *fakeDNCRepo) MarkFailed(context.Context, uuid.UUID, string) error { return nil }
func (f *fakeDNCRepo) SetOptimizedPath(context.Context, uuid.UUID, string) error {
	return nil
}
func (f *fakeDNCRepo) SetDeliveryNoteNumber(_ context.Context, _ uuid.UUID, number string) error {
	f.noteNumber = number
	return nil
}
func (f *fakeDNCRepo) SetTripID(context.Context, uuid.UUID, uuid.UUID) error { return nil }

func lastTripStatus(f *fakeTripRepo) constants.TripStatus {
	if len(f.statuses) == 0 {
		return ""
	}
	return f.statuses[len(f.statuses)-1]
}

func TestProjectorMapsResponse(t *testing.T) {
	trips := &fakeTripRepo{}
	captures := &fakeDNCRepo{}
	p := NewProjector(trips, captures, nil)

	response := map[string]any{
		"date":                 "2026-04-12",
		"truck_number":         " T-42 ",
		"delivery_note_number": "DN-9001",
		"odo_start":            float64(120400),
		"odo_end":              "120,655",
		"time_start":           "06:30",
		"time_end":             "15:10",
		"drop_details_odo":     []any{float64(120450), "120500", float64(120600)},
	}

	if err := p.Project(context.Background(), uuid.New(), uuid.New(), response); err != nil {
		t.Fatalf("Project: %v", err)
	}

	upd := trips.update
	if upd == nil {
		t.Fatal("UpdateFields never called")
	}
	if upd.Date == nil || !upd.Date.Equal(time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("date = %v", upd.Date)
	}
	if upd.TruckNumber == nil || *upd.TruckNumber != "T-42" {
		t.Errorf("truck_number = %v, want trimmed T-42", upd.TruckNumber)
	}
	if upd.OdoStart == nil || *upd.OdoStart != 120400 {
		t.Errorf("odo_start = %v", upd.OdoStart)
	}
	if upd.OdoEnd == nil || *upd.OdoEnd != 120655 {
		t.Errorf("odo_end = %v, want comma-stripped 120655", upd.OdoEnd)
	}
	if upd.TimeStart == nil || *upd.TimeStart != "06:30" {
		t.Errorf("time_start = %v", upd.TimeStart)
	}

	if !trips.dropsSet {
		t.Fatal("ReplaceDrops never called")
	}
	wantDrops := []int{120450, 120500, 120600}
	if len(trips.drops) != len(wantDrops) {
		t.Fatalf("drops = %v", trips.drops)
	}
	for i, want := range wantDrops {
		if trips.drops[i] != want {
			t.Errorf("drops[%d] = %d, want %d (order must follow the response)", i, trips.drops[i], want)
		}
	}

	if lastTripStatus(trips) != constants.TripAwaitingApproval {
		t.Errorf("trip status = %v", trips.statuses)
	}
	if captures.noteNumber != "DN-9001" {
		t.Errorf("note number writeback = %q", captures.noteNumber)
	}
}

func TestProjectorPartialResponse(t *testing.T) {
	trips := &fakeTripRepo{}
	captures := &fakeDNCRepo{}
	p := NewProjector(trips, captures, nil)

	response := map[string]any{"truck_number": "T-1"}
	if err := p.Project(context.Background(), uuid.New(), uuid.New(), response); err != nil {
		t.Fatalf("Project: %v", err)
	}

	upd := trips.update
	if upd.Date != nil || upd.OdoStart != nil || upd.OdoEnd != nil {
		t.Errorf("absent fields must stay nil: %+v", upd)
	}
	if trips.dropsSet {
		t.Error("absent drop_details_odo must not touch drops")
	}
	if captures.noteNumber != "" {
		t.Errorf("unexpected note writeback %q", captures.noteNumber)
	}
	if lastTripStatus(trips) != constants.TripAwaitingApproval {
		t.Errorf("trip status = %v", trips.statuses)
	}
}

func TestProjectorRejectsReversedOdometer(t *testing.T) {
	trips := &fakeTripRepo{}
	p := NewProjector(trips, &fakeDNCRepo{}, nil)

	response := map[string]any{
		"odo_start": float64(200),
		"odo_end":   float64(100),
	}
	err := p.Project(context.Background(), uuid.New(), uuid.New(), response)
	if !errors.Is(err, common.ErrDocumentProcessing) {
		t.Fatalf("err = %v, want ErrDocumentProcessing", err)
	}
	if lastTripStatus(trips) != constants.TripError {
		t.Errorf("trip status = %v, want ERROR", trips.statuses)
	}
	if trips.update != nil {
		t.Error("invalid update must not be written")
	}
}

func TestProjectorBadDateFails(t *testing.T) {
	trips := &fakeTripRepo{}
	p := NewProjector(trips, &fakeDNCRepo{}, nil)

	err := p.Project(context.Background(), uuid.New(), uuid.New(), map[string]any{"date": "12/04/2026"})
	if err == nil {
		t.Fatal("expected error for non-ISO date")
	}
	if lastTripStatus(trips) != constants.TripError {
		t.Errorf("trip status = %v, want ERROR", trips.statuses)
	}
}

func TestProjectorEmptyDropsClears(t *testing.T) {
	trips := &fakeTripRepo{}
	p := NewProjector(trips, &fakeDNCRepo{}, nil)

	response := map[string]any{"drop_details_odo": []any{}}
	if err := p.Project(context.Background(), uuid.New(), uuid.New(), response); err != nil {
		t.Fatalf("Project: %v", err)
	}
	if !trips.dropsSet {
		t.Fatal("empty list must still replace drops")
	}
	if len(trips.drops) != 0 {
		t.Errorf("drops = %v, want empty", trips.drops)
	}
}

func TestCoerceInt(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    int
		wantErr bool
	}{
		{"float64", float64(123), 123, false},
		{"plain string", "456", 456, false},
		{"comma string", "1,234,567", 1234567, false},
		{"padded string", "  789 ", 789, false},
		{"empty string", "", 0, true},
		{"letters", "abc", 0, true},
		{"bool", true, 0, true},
		{"nil handled upstream", nil, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := coerceInt(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("want error, got %d", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("coerceInt: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}
