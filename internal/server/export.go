package server

import (
	"context"
	"strings"
	"time"

	v1 "github.com/fleetware/transport-ops/gen/proto/transport/v1"
	"github.com/fleetware/transport-ops/internal/common"
)

// ExportTolls returns the tolls in the date window as an XLSX workbook.
// Dates are YYYY-MM-DD; only from -> from..today, only to -> begin..to,
// neither -> everything.
func (s *TransportService) ExportTolls(ctx context.Context, req *v1.ExportTollsRequest) (*v1.ExportTollsResponse, error) {
	var fromPtr, toPtr *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := time.Parse("2006-01-02", fd)
		if err != nil {
			return nil, common.InvalidArgumentError("from_date must be YYYY-MM-DD")
		}
		fromPtr = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := time.Parse("2006-01-02", td)
		if err != nil {
			return nil, common.InvalidArgumentError("to_date must be YYYY-MM-DD")
		}
		toPtr = &t
	}

	xlsx, err := s.exporter.ExportTollsXLSX(ctx, fromPtr, toPtr)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "err", err)
		return nil, common.InternalError(err.Error())
	}
	return &v1.ExportTollsResponse{Xlsx: xlsx}, nil
}
