package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/statline/statline/constants"
	"github.com/statline/statline/gen/ent"
	entextraction "github.com/statline/statline/gen/ent/extraction"
)

// FinishedExtraction carries everything recorded when a run completes.
type FinishedExtraction struct {
	Output     json.RawMessage
	Issues     json.RawMessage
	Confidence float32
	Band       string
	Success    bool
	IRMethod   string
	LayoutHash string
}

type ExtractionRepository interface {
	Start(ctx context.Context, processorID uuid.UUID, filename, format string) (*ent.Extraction, error)
	MarkIRBuilt(ctx context.Context, id uuid.UUID, method, layoutHash string) error
	FinishSuccess(ctx context.Context, id uuid.UUID, fin FinishedExtraction) error
	FinishFailure(ctx context.Context, id uuid.UUID, message string) error
	ListByProcessor(ctx context.Context, processorID uuid.UUID, limit int) ([]*ent.Extraction, error)
	ListSince(ctx context.Context, since time.Time) ([]*ent.Extraction, error)
}

type extractionRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractionRepository(entc *ent.Client, log *slog.Logger) ExtractionRepository {
	return &extractionRepo{ent: entc, log: log}
}

func (r *extractionRepo) Start(ctx context.Context, processorID uuid.UUID, filename, format string) (*ent.Extraction, error) {
	row, err := r.ent.Extraction.
		Create().
		SetProcessorID(processorID).
		SetFilename(filename).
		SetFormat(format).
		SetStatus(string(constants.ExtractionRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("extraction start failed", "processor_id", processorID, "err", err)
		return nil, err
	}
	r.log.Info("extraction started",
		"extraction_id", row.ID, "processor_id", processorID, "filename", filename, "format", format)
	return row, nil
}

func (r *extractionRepo) MarkIRBuilt(ctx context.Context, id uuid.UUID, method, layoutHash string) error {
	_, err := r.ent.Extraction.
		UpdateOneID(id).
		SetStatus(string(constants.ExtractionIROK)).
		SetIrMethod(method).
		SetLayoutHash(layoutHash).
		Save(ctx)
	if err != nil {
		r.log.Error("extraction mark(IR_OK) failed", "extraction_id", id, "err", err)
	}
	return err
}

func (r *extractionRepo) FinishSuccess(ctx context.Context, id uuid.UUID, fin FinishedExtraction) error {
	row, err := r.ent.Extraction.Get(ctx, id)
	if err != nil {
		return err
	}
	now := time.Now()
	upd := r.ent.Extraction.
		UpdateOneID(id).
		SetStatus(string(constants.ExtractionDone)).
		SetOutput(fin.Output).
		SetConfidence(fin.Confidence).
		SetBand(fin.Band).
		SetSuccess(fin.Success).
		SetNeedsReview(fin.Band != string(constants.BandHigh)).
		SetFinishedAt(now).
		SetDurationMs(now.Sub(row.StartedAt).Milliseconds())
	if fin.Issues != nil {
		upd.SetIssues(fin.Issues)
	}
	if fin.IRMethod != "" {
		upd.SetIrMethod(fin.IRMethod)
	}
	if fin.LayoutHash != "" {
		upd.SetLayoutHash(fin.LayoutHash)
	}
	if _, err := upd.Save(ctx); err != nil {
		r.log.Error("extraction finish(DONE) failed", "extraction_id", id, "err", err)
		return err
	}
	r.log.Info("extraction finished",
		"extraction_id", id, "confidence", fin.Confidence, "band", fin.Band, "success", fin.Success)
	return nil
}

func (r *extractionRepo) FinishFailure(ctx context.Context, id uuid.UUID, message string) error {
	_, err := r.ent.Extraction.
		UpdateOneID(id).
		SetStatus(string(constants.ExtractionFailed)).
		SetErrorMessage(message).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("extraction finish(FAILED) failed", "extraction_id", id, "err", err)
		return err
	}
	r.log.Warn("extraction failed", "extraction_id", id, "error", message)
	return nil
}

func (r *extractionRepo) ListByProcessor(ctx context.Context, processorID uuid.UUID, limit int) ([]*ent.Extraction, error) {
	q := r.ent.Extraction.
		Query().
		Where(entextraction.ProcessorIDEQ(processorID)).
		Order(ent.Desc(entextraction.FieldStartedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q.All(ctx)
}

func (r *extractionRepo) ListSince(ctx context.Context, since time.Time) ([]*ent.Extraction, error) {
	q := r.ent.Extraction.
		Query().
		Order(ent.Desc(entextraction.FieldStartedAt))
	if !since.IsZero() {
		q = q.Where(entextraction.StartedAtGTE(since))
	}
	return q.All(ctx)
}
