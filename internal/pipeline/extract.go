package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/statline/statline/constants"
	"github.com/statline/statline/internal/execute"
	"github.com/statline/statline/internal/ir"
	"github.com/statline/statline/internal/processor"
	"github.com/statline/statline/internal/repository"
)

// ExtractRequest applies a stored processor to one document. The processor
// is picked by ID, then by name, then by the document's layout signature.
type ExtractRequest struct {
	Filename      string
	Document      []byte
	ProcessorID   uuid.UUID
	ProcessorName string
	Strict        bool
}

type ExtractResult struct {
	ExtractionID uuid.UUID
	Processor    *processor.Processor
	Document     *ir.Document
	Result       *execute.Result
}

type ExtractPipeline struct {
	Builder DocumentBuilder
	Exec    *execute.Executor
	Procs   repository.ProcessorRepository
	Extr    repository.ExtractionRepository
	Log     *slog.Logger
}

func NewExtractPipeline(builder DocumentBuilder, exec *execute.Executor, procs repository.ProcessorRepository, extr repository.ExtractionRepository, log *slog.Logger) *ExtractPipeline {
	if log == nil {
		log = slog.Default()
	}
	return &ExtractPipeline{Builder: builder, Exec: exec, Procs: procs, Extr: extr, Log: log}
}

func (p *ExtractPipeline) Run(ctx context.Context, req ExtractRequest) (*ExtractResult, error) {
	format := constants.FormatForExt(filepath.Ext(req.Filename))
	if format == "" {
		return nil, fmt.Errorf("unsupported format: %s", filepath.Ext(req.Filename))
	}

	var (
		proc *processor.Processor
		doc  *ir.Document
		err  error
	)
	switch {
	case req.ProcessorID != uuid.Nil:
		proc, err = p.Procs.GetByID(ctx, req.ProcessorID)
	case req.ProcessorName != "":
		proc, err = p.Procs.GetByName(ctx, req.ProcessorName)
	default:
		// no explicit processor: build first and match on layout signature
		doc, err = p.Builder.Build(ctx, req.Document, req.Filename)
		if err != nil {
			return nil, fmt.Errorf("build ir: %w", err)
		}
		proc, err = p.Procs.FindByLayoutHash(ctx, doc.LayoutHash)
		if err != nil {
			return nil, fmt.Errorf("no processor for layout %s: %w", doc.LayoutHash, err)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("load processor: %w", err)
	}

	// legacy rows may carry calcs that no longer parse; quarantine, don't reject
	compiled, err := processor.CompileLenient(proc)
	if err != nil {
		return nil, err
	}

	rec, err := p.Extr.Start(ctx, proc.ID, req.Filename, format)
	if err != nil {
		return nil, err
	}

	if doc == nil {
		doc, err = p.Builder.Build(ctx, req.Document, req.Filename)
		if err != nil {
			_ = p.Extr.FinishFailure(ctx, rec.ID, err.Error())
			_ = p.Procs.RecordResult(ctx, proc.ID, false)
			return nil, fmt.Errorf("build ir: %w", err)
		}
	}
	if err := p.Extr.MarkIRBuilt(ctx, rec.ID, doc.Method, doc.LayoutHash); err != nil {
		return nil, err
	}
	if proc.LayoutHash != "" && doc.LayoutHash != proc.LayoutHash {
		p.Log.Warn("pipeline.extract.layout_drift",
			"extraction_id", rec.ID,
			"processor_id", proc.ID,
			"expected", proc.LayoutHash,
			"got", doc.LayoutHash,
		)
	}

	res, err := p.Exec.Execute(doc, compiled, execute.Options{Strict: req.Strict})
	if err != nil {
		_ = p.Extr.FinishFailure(ctx, rec.ID, err.Error())
		_ = p.Procs.RecordResult(ctx, proc.ID, false)
		return nil, err
	}

	output, err := json.Marshal(res.Data)
	if err != nil {
		return nil, fmt.Errorf("serialize output: %w", err)
	}
	var issues json.RawMessage
	if len(res.Issues) > 0 {
		issues, _ = json.Marshal(res.Issues)
	}
	if err := p.Extr.FinishSuccess(ctx, rec.ID, repository.FinishedExtraction{
		Output:     output,
		Issues:     issues,
		Confidence: float32(res.Confidence),
		Band:       string(res.Band),
		Success:    res.Success,
		IRMethod:   doc.Method,
		LayoutHash: doc.LayoutHash,
	}); err != nil {
		return nil, err
	}
	if err := p.Procs.RecordResult(ctx, proc.ID, res.Success); err != nil {
		return nil, err
	}

	p.Log.Info("pipeline.extract.done",
		"extraction_id", rec.ID,
		"processor_id", proc.ID,
		"confidence", res.Confidence,
		"band", res.Band,
		"success", res.Success,
		"issues", len(res.Issues),
	)
	return &ExtractResult{
		ExtractionID: rec.ID,
		Processor:    proc,
		Document:     doc,
		Result:       res,
	}, nil
}
