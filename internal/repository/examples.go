package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/statline/statline/gen/ent"
	entexample "github.com/statline/statline/gen/ent/example"
)

// NewExample carries the training pair for one processor.
type NewExample struct {
	ProcessorID     uuid.UUID
	Filename        string
	LayoutHash      string
	IR              json.RawMessage
	DesiredOutput   json.RawMessage
	SynthesisReport json.RawMessage
}

type ExampleRepository interface {
	Create(ctx context.Context, ex NewExample) (*ent.Example, error)
	ListByProcessor(ctx context.Context, processorID uuid.UUID) ([]*ent.Example, error)
}

type exampleRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExampleRepository(entc *ent.Client, log *slog.Logger) ExampleRepository {
	return &exampleRepo{ent: entc, log: log}
}

func (r *exampleRepo) Create(ctx context.Context, ex NewExample) (*ent.Example, error) {
	create := r.ent.Example.
		Create().
		SetProcessorID(ex.ProcessorID).
		SetFilename(ex.Filename).
		SetLayoutHash(ex.LayoutHash).
		SetIrJSON(ex.IR).
		SetDesiredOutput(ex.DesiredOutput)
	if ex.SynthesisReport != nil {
		create.SetSynthesisReport(ex.SynthesisReport)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.log.Error("example create failed", "processor_id", ex.ProcessorID, "err", err)
		return nil, err
	}
	r.log.Info("example stored",
		"example_id", row.ID, "processor_id", ex.ProcessorID, "filename", ex.Filename)
	return row, nil
}

func (r *exampleRepo) ListByProcessor(ctx context.Context, processorID uuid.UUID) ([]*ent.Example, error) {
	return r.ent.Example.
		Query().
		Where(entexample.ProcessorIDEQ(processorID)).
		Order(ent.Asc(entexample.FieldCreatedAt)).
		All(ctx)
}
