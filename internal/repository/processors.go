package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/statline/statline/gen/ent"
	entprocessor "github.com/statline/statline/gen/ent/processor"
	"github.com/statline/statline/internal/processor"
)

// ProcessorRepository stores versioned processors. Rules are persisted as
// their JSON serialization; the typed model owns the shape.
type ProcessorRepository interface {
	Create(ctx context.Context, p *processor.Processor) (*ent.Processor, error)
	GetByID(ctx context.Context, id uuid.UUID) (*processor.Processor, error)
	GetByName(ctx context.Context, name string) (*processor.Processor, error)
	FindByLayoutHash(ctx context.Context, layoutHash string) (*processor.Processor, error)
	List(ctx context.Context, documentType string) ([]*processor.Processor, error)
	RecordResult(ctx context.Context, id uuid.UUID, success bool) error
}

type processorRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewProcessorRepository(entc *ent.Client, log *slog.Logger) ProcessorRepository {
	return &processorRepo{ent: entc, log: log}
}

func (r *processorRepo) Create(ctx context.Context, p *processor.Processor) (*ent.Processor, error) {
	rules, err := json.Marshal(p.RuleSet)
	if err != nil {
		return nil, err
	}
	create := r.ent.Processor.
		Create().
		SetID(p.ID).
		SetName(p.Name).
		SetDocumentType(p.DocumentType).
		SetVersion(p.Version).
		SetLayoutHash(p.LayoutHash).
		SetRules(rules)
	if p.Template != "" {
		create.SetTemplate(p.Template)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.log.Error("processor create failed", "name", p.Name, "err", err)
		return nil, err
	}
	r.log.Info("processor created",
		"processor_id", row.ID, "name", p.Name, "version", p.Version, "layout_hash", p.LayoutHash)
	return row, nil
}

func (r *processorRepo) GetByID(ctx context.Context, id uuid.UUID) (*processor.Processor, error) {
	row, err := r.ent.Processor.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return decodeProcessor(row)
}

func (r *processorRepo) GetByName(ctx context.Context, name string) (*processor.Processor, error) {
	row, err := r.ent.Processor.
		Query().
		Where(entprocessor.NameEQ(name)).
		Order(ent.Desc(entprocessor.FieldVersion)).
		First(ctx)
	if err != nil {
		return nil, err
	}
	return decodeProcessor(row)
}

func (r *processorRepo) FindByLayoutHash(ctx context.Context, layoutHash string) (*processor.Processor, error) {
	row, err := r.ent.Processor.
		Query().
		Where(entprocessor.LayoutHashEQ(layoutHash)).
		Order(ent.Desc(entprocessor.FieldUpdatedAt)).
		First(ctx)
	if err != nil {
		return nil, err
	}
	return decodeProcessor(row)
}

func (r *processorRepo) List(ctx context.Context, documentType string) ([]*processor.Processor, error) {
	q := r.ent.Processor.Query()
	if documentType != "" {
		q = q.Where(entprocessor.DocumentTypeEQ(documentType))
	}
	rows, err := q.Order(ent.Asc(entprocessor.FieldName), ent.Desc(entprocessor.FieldVersion)).All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*processor.Processor, 0, len(rows))
	for _, row := range rows {
		p, err := decodeProcessor(row)
		if err != nil {
			r.log.Warn("processor row undecodable, skipping", "processor_id", row.ID, "err", err)
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *processorRepo) RecordResult(ctx context.Context, id uuid.UUID, success bool) error {
	upd := r.ent.Processor.UpdateOneID(id)
	if success {
		upd.AddSuccessCount(1)
	} else {
		upd.AddFailureCount(1)
	}
	if _, err := upd.Save(ctx); err != nil {
		r.log.Error("processor counter update failed", "processor_id", id, "err", err)
		return err
	}
	return nil
}

func decodeProcessor(row *ent.Processor) (*processor.Processor, error) {
	var rules processor.RuleSet
	if err := json.Unmarshal(row.Rules, &rules); err != nil {
		return nil, err
	}
	p := &processor.Processor{
		ID:           row.ID,
		Name:         row.Name,
		DocumentType: row.DocumentType,
		Version:      row.Version,
		LayoutHash:   row.LayoutHash,
		RuleSet:      rules,
		SuccessCount: row.SuccessCount,
		FailureCount: row.FailureCount,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
	if row.Template != nil {
		p.Template = *row.Template
	}
	return p, nil
}
