// Package pipeline wires the core engine to persistence: learning a
// processor from one example, and applying a stored processor to a new
// document, each recorded as it goes.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/statline/statline/internal/ir"
	"github.com/statline/statline/internal/processor"
	"github.com/statline/statline/internal/repository"
	"github.com/statline/statline/internal/synthesis"
)

// DocumentBuilder turns raw document bytes into a Document IR.
// *ir.Builder is the production implementation.
type DocumentBuilder interface {
	Build(ctx context.Context, data []byte, filename string) (*ir.Document, error)
}

// LearnRequest is one example document plus the output it should produce.
type LearnRequest struct {
	Filename      string
	Document      []byte
	DesiredOutput []byte
	DocumentType  string
	ProcessorName string
}

// LearnResult is the stored processor plus the synthesis self-check.
type LearnResult struct {
	Processor *processor.Processor
	Report    *synthesis.Report
}

type LearnPipeline struct {
	Builder  DocumentBuilder
	Synth    *synthesis.Synthesizer
	Procs    repository.ProcessorRepository
	Examples repository.ExampleRepository
	Log      *slog.Logger
}

func NewLearnPipeline(builder DocumentBuilder, synth *synthesis.Synthesizer, procs repository.ProcessorRepository, examples repository.ExampleRepository, log *slog.Logger) *LearnPipeline {
	if log == nil {
		log = slog.Default()
	}
	return &LearnPipeline{Builder: builder, Synth: synth, Procs: procs, Examples: examples, Log: log}
}

// Run builds the IR, synthesizes rules, persists the processor and the
// example it was learned from. Synthesis failure persists nothing.
func (p *LearnPipeline) Run(ctx context.Context, req LearnRequest) (*LearnResult, error) {
	doc, err := p.Builder.Build(ctx, req.Document, req.Filename)
	if err != nil {
		p.Log.Error("pipeline.learn.ingest_failed", "filename", req.Filename, "err", err)
		return nil, fmt.Errorf("build ir: %w", err)
	}
	p.Log.Info("pipeline.learn.ir_built",
		"filename", req.Filename,
		"pages", doc.PageCount,
		"blocks", len(doc.Blocks),
		"method", doc.Method,
		"layout_hash", doc.LayoutHash,
	)

	proc, report, err := p.Synth.Synthesize(ctx, doc, req.DesiredOutput, req.DocumentType, req.ProcessorName)
	if err != nil {
		p.Log.Error("pipeline.learn.synthesis_failed", "filename", req.Filename, "err", err)
		return nil, err
	}

	if _, err := p.Procs.Create(ctx, proc); err != nil {
		return nil, fmt.Errorf("store processor: %w", err)
	}

	irJSON, err := doc.ToJSON()
	if err != nil {
		return nil, fmt.Errorf("serialize ir: %w", err)
	}
	reportJSON, _ := json.Marshal(report)
	if _, err := p.Examples.Create(ctx, repository.NewExample{
		ProcessorID:     proc.ID,
		Filename:        req.Filename,
		LayoutHash:      doc.LayoutHash,
		IR:              irJSON,
		DesiredOutput:   req.DesiredOutput,
		SynthesisReport: reportJSON,
	}); err != nil {
		return nil, fmt.Errorf("store example: %w", err)
	}

	return &LearnResult{Processor: proc, Report: report}, nil
}
