package tolls

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fleetware/transport-ops/constants"
	"github.com/fleetware/transport-ops/internal/async"
	"github.com/fleetware/transport-ops/internal/common"
	"github.com/fleetware/transport-ops/internal/entity"
	"github.com/fleetware/transport-ops/internal/provider"
	"github.com/fleetware/transport-ops/internal/repository"
)

// Projector turns one staged model response into Toll rows. The staging
// row is claimed with a conditional move to Processing before any insert;
// rows another run owns are skipped, and uniqueness on
// (transaction_date, etag_id) makes re-runs converge instead of
// duplicating. A bad entry skips, a bad response fails the staging row.
type Projector struct {
	staging  repository.TollsStagingRepository
	tolls    repository.TollRepository
	captures repository.TollCaptureRepository
	assets   repository.AssetRepository
	logger   *slog.Logger
}

func NewProjector(
	staging repository.TollsStagingRepository,
	tolls repository.TollRepository,
	captures repository.TollCaptureRepository,
	assets repository.AssetRepository,
	logger *slog.Logger,
) *Projector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Projector{staging: staging, tolls: tolls, captures: captures, assets: assets, logger: logger}
}

// HandleJob adapts Project to the queue handler signature.
func (p *Projector) HandleJob(ctx context.Context, job async.Job) error {
	payload, ok := job.Payload.(async.TollCreatePayload)
	if !ok {
		return fmt.Errorf("unexpected payload %T for %s job", job.Payload, job.Kind)
	}
	return p.Project(ctx, payload.StagingID)
}

func (p *Projector) Project(ctx context.Context, stagingID uuid.UUID) error {
	st, err := p.staging.GetByID(ctx, stagingID)
	if err != nil {
		return common.DocumentProcessingError("load staging row", err)
	}
	claimed, err := p.staging.Claim(ctx, st.ID)
	if err != nil {
		return err
	}
	if !claimed {
		// Another run owns this row, or it already completed. Uniqueness on
		// the toll table is the backstop either way.
		p.logger.Info("tolls.staging_already_claimed", "staging_id", st.ID, "status", st.Status)
		return nil
	}

	if err := p.project(ctx, st); err != nil {
		if merr := p.staging.MarkFailed(ctx, st.ID, err.Error()); merr != nil {
			p.logger.Error("tolls.staging_fail_transition_failed", "staging_id", st.ID, "err", merr)
		}
		return err
	}
	return p.staging.SetStatus(ctx, st.ID, constants.StagingCompleted)
}

func (p *Projector) project(ctx context.Context, st *entity.TollsStaging) error {
	entries, err := coerceEntries(st.AIResponse)
	if err != nil {
		return common.DocumentProcessingError("parse staged response", err)
	}

	cap, err := p.captures.GetByID(ctx, st.CaptureID)
	if err != nil {
		return common.DocumentProcessingError("load toll capture", err)
	}

	inserted, skipped := 0, 0
	for i, entry := range entries {
		// Advisory shape check; buildToll still coerces and rejects on its
		// own terms.
		if raw, merr := json.Marshal(entry); merr == nil {
			if verr := provider.ValidateAgainstSchema(provider.BuildTollEntrySchema(), raw); verr != nil {
				p.logger.Warn("tolls.entry_shape_mismatch",
					"staging_id", st.ID, "entry", i, "err", verr)
			}
		}
		toll, err := p.buildToll(ctx, st, cap, entry)
		if err != nil {
			p.logger.Error("tolls.entry_rejected",
				"staging_id", st.ID, "entry", i, "err", err)
			continue
		}
		if _, err := p.tolls.Insert(ctx, toll); err != nil {
			if errors.Is(err, common.ErrDuplicate) {
				skipped++
				p.logger.Info("tolls.duplicate_skipped",
					"staging_id", st.ID, "etag_id", toll.EtagID,
					"transaction_date", toll.TransactionDate)
				continue
			}
			p.logger.Error("tolls.entry_insert_failed",
				"staging_id", st.ID, "entry", i, "err", err)
			continue
		}
		inserted++
	}

	p.logger.Info("tolls.projected",
		"staging_id", st.ID, "entries", len(entries),
		"inserted", inserted, "duplicates", skipped)
	return nil
}

// buildToll maps one entry, inheriting driver and asset from the capture
// when the entry's etag resolves to nothing.
func (p *Projector) buildToll(ctx context.Context, st *entity.TollsStaging, cap *entity.TollCapture, entry map[string]any) (*entity.Toll, error) {
	date, err := parseTollDate(stringField(entry, "transaction_date"))
	if err != nil {
		return nil, err
	}
	etag := stringField(entry, "etag_id")
	if etag == "" {
		return nil, errors.New("entry has no etag_id")
	}
	amount, err := coerceFloat(entry["net_amount"])
	if err != nil {
		return nil, fmt.Errorf("net_amount: %w", err)
	}

	toll := &entity.Toll{
		TransactionDate: date,
		TollingPoint:    stringField(entry, "tolling_point"),
		EtagID:          etag,
		NetAmount:       amount,
		CaptureID:       st.CaptureID,
		PageResultID:    st.PageResultID,
		DriverID:        &cap.DriverID,
		AssetID:         cap.AssetID,
		ProcessStatus:   constants.TollProcessPending,
	}

	asset, err := p.assets.GetByEtag(ctx, etag)
	if err != nil {
		return nil, err
	}
	if asset != nil {
		toll.AssetID = &asset.ID
	}
	return toll, nil
}

// coerceEntries accepts the three shapes models return: a bare list, an
// object with a transactions array, or a single entry object.
func coerceEntries(raw json.RawMessage) ([]map[string]any, error) {
	if len(raw) == 0 {
		return nil, errors.New("empty response")
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, err
	}

	switch v := parsed.(type) {
	case []any:
		return entryList(v)
	case map[string]any:
		if txns, ok := v["transactions"].([]any); ok {
			return entryList(txns)
		}
		return []map[string]any{v}, nil
	default:
		return nil, fmt.Errorf("unexpected response shape %T", parsed)
	}
}

func entryList(items []any) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("entry %d is %T, want object", i, item)
		}
		out = append(out, m)
	}
	return out, nil
}

const (
	tollDateTimeLayout = "2006-01-02 15:04:05"
	tollDateLayout     = "2006-01-02"
)

func parseTollDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("entry has no transaction_date")
	}
	if t, err := time.Parse(tollDateTimeLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(tollDateLayout, s)
}

// coerceFloat accepts the number-or-string amounts models emit.
func coerceFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(strings.TrimPrefix(n, "$")), 64)
	case nil:
		return 0, errors.New("missing value")
	default:
		return 0, fmt.Errorf("unexpected type %T", v)
	}
}

func stringField(entry map[string]any, key string) string {
	s, _ := entry[key].(string)
	return strings.TrimSpace(s)
}
