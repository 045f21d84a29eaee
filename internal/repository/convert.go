package repository

import (
	"github.com/fleetware/transport-ops/constants"
	"github.com/fleetware/transport-ops/gen/ent"
	"github.com/fleetware/transport-ops/internal/entity"
)

func toDeliveryNoteCapture(row *ent.DeliveryNoteCapture) *entity.DeliveryNoteCapture {
	return &entity.DeliveryNoteCapture{
		ID:                 row.ID,
		DriverID:           row.DriverID,
		FilePath:           row.FilePath,
		OptimizedPath:      row.OptimizedPath,
		DeliveryNoteNumber: row.DeliveryNoteNumber,
		TripID:             row.TripID,
		Status:             constants.CaptureStatus(row.Status),
		ErrorMessage:       row.ErrorMessage,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
}

func toTollCapture(row *ent.TollCapture) *entity.TollCapture {
	return &entity.TollCapture{
		ID:            row.ID,
		DriverID:      row.DriverID,
		AssetID:       row.AssetID,
		FilePath:      row.FilePath,
		TotalRecords:  row.TotalRecords,
		ProgressCount: row.ProgressCount,
		Status:        constants.CaptureStatus(row.Status),
		ErrorMessage:  row.ErrorMessage,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func toTrip(row *ent.Trip, drops []*ent.TripDrop) *entity.Trip {
	t := &entity.Trip{
		ID:                 row.ID,
		DriverID:           row.DriverID,
		CaptureID:          row.CaptureID,
		Date:               row.Date,
		TruckNumber:        row.TruckNumber,
		DeliveryNoteNumber: row.DeliveryNoteNumber,
		OdoStart:           row.OdoStart,
		OdoEnd:             row.OdoEnd,
		TimeStart:          row.TimeStart,
		TimeEnd:            row.TimeEnd,
		Status:             constants.TripStatus(row.Status),
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
	for _, d := range drops {
		t.Drops = append(t.Drops, entity.TripDrop{
			ID:         d.ID,
			TripID:     d.TripID,
			Seq:        d.Seq,
			OdoReading: d.OdoReading,
		})
	}
	return t
}

func toTollPageResult(row *ent.TollPageResult) *entity.TollPageResult {
	return &entity.TollPageResult{
		ID:           row.ID,
		CaptureID:    row.CaptureID,
		PageNumber:   row.PageNumber,
		Base64Image:  row.Base64Image,
		Status:       constants.PageResultStatus(row.Status),
		ErrorMessage: row.ErrorMessage,
		CreatedAt:    row.CreatedAt,
	}
}

func toTollsStaging(row *ent.TollsStaging) *entity.TollsStaging {
	return &entity.TollsStaging{
		ID:           row.ID,
		CaptureID:    row.CaptureID,
		PageResultID: row.PageResultID,
		AIResponse:   row.AiResponse,
		Status:       constants.StagingStatus(row.Status),
		ErrorMessage: row.ErrorMessage,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func toToll(row *ent.Toll) *entity.Toll {
	return &entity.Toll{
		ID:              row.ID,
		TransactionDate: row.TransactionDate,
		TollingPoint:    row.TollingPoint,
		EtagID:          row.EtagID,
		NetAmount:       row.NetAmount,
		CaptureID:       row.CaptureID,
		PageResultID:    row.PageResultID,
		AssetID:         row.AssetID,
		DriverID:        row.DriverID,
		ProcessStatus:   row.ProcessStatus,
		ExpenseID:       row.ExpenseID,
		CreatedAt:       row.CreatedAt,
	}
}

func toAsset(row *ent.TransportationAsset) *entity.TransportationAsset {
	return &entity.TransportationAsset{
		ID:          row.ID,
		TruckNumber: row.TruckNumber,
		EtagID:      row.EtagID,
		Active:      row.Active,
		CreatedAt:   row.CreatedAt,
	}
}

func toOCRSetting(row *ent.OCRSetting) *entity.OCRSetting {
	return &entity.OCRSetting{
		ID:             row.ID,
		Function:       constants.CaptureKind(row.Function),
		PromptTemplate: row.PromptTemplate,
		JSONExample:    row.JSONExample,
		UpdatedAt:      row.UpdatedAt,
	}
}
