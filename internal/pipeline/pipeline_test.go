package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/statline/statline/gen/ent"
	"github.com/statline/statline/internal/execute"
	"github.com/statline/statline/internal/ir"
	"github.com/statline/statline/internal/llm"
	"github.com/statline/statline/internal/processor"
	"github.com/statline/statline/internal/repository"
	"github.com/statline/statline/internal/synthesis"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubBuilder hands back a canned IR so no OCR toolchain is needed.
type stubBuilder struct {
	doc   *ir.Document
	err   error
	calls int
}

func (s *stubBuilder) Build(_ context.Context, _ []byte, _ string) (*ir.Document, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.doc, nil
}

type fakeLLM struct {
	rules processor.RuleSet
	err   error
}

func (f *fakeLLM) SynthesizeRules(_ context.Context, _ llm.SynthesisRequest) (processor.RuleSet, []byte, error) {
	return f.rules, []byte(`{}`), f.err
}

type fakeProcs struct {
	byID     map[uuid.UUID]*processor.Processor
	byName   map[string]*processor.Processor
	byLayout map[string]*processor.Processor
	created  []*processor.Processor
	results  []bool
}

func newFakeProcs(procs ...*processor.Processor) *fakeProcs {
	f := &fakeProcs{
		byID:     map[uuid.UUID]*processor.Processor{},
		byName:   map[string]*processor.Processor{},
		byLayout: map[string]*processor.Processor{},
	}
	for _, p := range procs {
		f.byID[p.ID] = p
		f.byName[p.Name] = p
		if p.LayoutHash != "" {
			f.byLayout[p.LayoutHash] = p
		}
	}
	return f
}

var errNotFound = errors.New("not found")

func (f *fakeProcs) Create(_ context.Context, p *processor.Processor) (*ent.Processor, error) {
	f.created = append(f.created, p)
	f.byID[p.ID] = p
	return &ent.Processor{ID: p.ID}, nil
}

func (f *fakeProcs) GetByID(_ context.Context, id uuid.UUID) (*processor.Processor, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

func (f *fakeProcs) GetByName(_ context.Context, name string) (*processor.Processor, error) {
	p, ok := f.byName[name]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

func (f *fakeProcs) FindByLayoutHash(_ context.Context, layoutHash string) (*processor.Processor, error) {
	p, ok := f.byLayout[layoutHash]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

func (f *fakeProcs) List(_ context.Context, _ string) ([]*processor.Processor, error) {
	return nil, nil
}

func (f *fakeProcs) RecordResult(_ context.Context, _ uuid.UUID, success bool) error {
	f.results = append(f.results, success)
	return nil
}

type fakeExamples struct {
	created []repository.NewExample
}

func (f *fakeExamples) Create(_ context.Context, ex repository.NewExample) (*ent.Example, error) {
	f.created = append(f.created, ex)
	return &ent.Example{ID: uuid.New()}, nil
}

func (f *fakeExamples) ListByProcessor(_ context.Context, _ uuid.UUID) ([]*ent.Example, error) {
	return nil, nil
}

type fakeExtractions struct {
	started   int
	irBuilt   int
	successes []repository.FinishedExtraction
	failures  []string
}

func (f *fakeExtractions) Start(_ context.Context, _ uuid.UUID, _, _ string) (*ent.Extraction, error) {
	f.started++
	return &ent.Extraction{ID: uuid.New(), StartedAt: time.Now()}, nil
}

func (f *fakeExtractions) MarkIRBuilt(_ context.Context, _ uuid.UUID, _, _ string) error {
	f.irBuilt++
	return nil
}

func (f *fakeExtractions) FinishSuccess(_ context.Context, _ uuid.UUID, fin repository.FinishedExtraction) error {
	f.successes = append(f.successes, fin)
	return nil
}

func (f *fakeExtractions) FinishFailure(_ context.Context, _ uuid.UUID, message string) error {
	f.failures = append(f.failures, message)
	return nil
}

func (f *fakeExtractions) ListByProcessor(_ context.Context, _ uuid.UUID, _ int) ([]*ent.Extraction, error) {
	return nil, nil
}

func (f *fakeExtractions) ListSince(_ context.Context, _ time.Time) ([]*ent.Extraction, error) {
	return nil, nil
}

func gameDoc() *ir.Document {
	return &ir.Document{
		Filename:  "game.pdf",
		PageCount: 1,
		Pages:     []ir.PageDim{{Index: 0, Width: 2550, Height: 3300}},
		Blocks: []ir.Block{
			{ID: "b0", Text: "FINAL SCORE", BBox: ir.BBox{X0: 0.10, Y0: 0.05, X1: 0.30, Y1: 0.08}, Confidence: 0.95, Type: ir.BlockText},
			{ID: "b1", Text: "62-58", BBox: ir.BBox{X0: 0.32, Y0: 0.05, X1: 0.40, Y1: 0.08}, Confidence: 0.95, Type: ir.BlockText},
		},
		RawText:    "FINAL SCORE 62-58",
		LayoutHash: "abc123",
		Method:     "pdf-ocr",
	}
}

func scoreRules() processor.RuleSet {
	return processor.RuleSet{
		Anchors: []processor.Anchor{
			{Name: "score_label", Patterns: []string{"FINAL SCORE"}, Required: true},
		},
		ExtractionOps: []processor.ExtractionOp{
			{Field: "final_score", Source: "anchor.score_label.text"},
		},
	}
}

func storedProcessor() *processor.Processor {
	return &processor.Processor{
		ID:           uuid.New(),
		Name:         "tribune_final",
		DocumentType: "basketball_box_score",
		Version:      1,
		LayoutHash:   "abc123",
		RuleSet:      scoreRules(),
	}
}

func TestLearnRunPersistsProcessorAndExample(t *testing.T) {
	builder := &stubBuilder{doc: gameDoc()}
	procs := newFakeProcs()
	examples := &fakeExamples{}
	synth := synthesis.NewSynthesizer(&fakeLLM{rules: scoreRules()}, testLogger())
	p := NewLearnPipeline(builder, synth, procs, examples, testLogger())

	res, err := p.Run(context.Background(), LearnRequest{
		Filename:      "game.pdf",
		Document:      []byte("%PDF-"),
		DesiredOutput: []byte(`{"final_score":"FINAL SCORE"}`),
		DocumentType:  "basketball_box_score",
		ProcessorName: "tribune_final",
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(procs.created) != 1 {
		t.Fatalf("created %d processors, want 1", len(procs.created))
	}
	if res.Processor.LayoutHash != "abc123" {
		t.Errorf("LayoutHash = %q", res.Processor.LayoutHash)
	}
	if res.Report == nil || res.Report.LowSimilarity {
		t.Errorf("report = %+v, want a passing self-check", res.Report)
	}
	if len(examples.created) != 1 {
		t.Fatalf("created %d examples, want 1", len(examples.created))
	}
	ex := examples.created[0]
	if ex.ProcessorID != res.Processor.ID {
		t.Errorf("example ProcessorID = %v, want %v", ex.ProcessorID, res.Processor.ID)
	}
	if ex.LayoutHash != "abc123" {
		t.Errorf("example LayoutHash = %q", ex.LayoutHash)
	}
	if len(ex.IR) == 0 || len(ex.SynthesisReport) == 0 {
		t.Error("example missing IR or synthesis report")
	}
}

func TestLearnRunSynthesisFailurePersistsNothing(t *testing.T) {
	builder := &stubBuilder{doc: gameDoc()}
	procs := newFakeProcs()
	examples := &fakeExamples{}
	synth := synthesis.NewSynthesizer(&fakeLLM{err: errors.New("model unavailable")}, testLogger())
	p := NewLearnPipeline(builder, synth, procs, examples, testLogger())

	_, err := p.Run(context.Background(), LearnRequest{
		Filename:      "game.pdf",
		Document:      []byte("%PDF-"),
		DesiredOutput: []byte(`{}`),
		DocumentType:  "basketball_box_score",
		ProcessorName: "p",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(procs.created) != 0 || len(examples.created) != 0 {
		t.Errorf("persisted procs=%d examples=%d after failed synthesis, want none",
			len(procs.created), len(examples.created))
	}
}

func TestLearnRunIngestFailure(t *testing.T) {
	builder := &stubBuilder{err: errors.New("no text")}
	synth := synthesis.NewSynthesizer(&fakeLLM{rules: scoreRules()}, testLogger())
	p := NewLearnPipeline(builder, synth, newFakeProcs(), &fakeExamples{}, testLogger())

	_, err := p.Run(context.Background(), LearnRequest{
		Filename: "game.pdf", Document: []byte("x"), DesiredOutput: []byte(`{}`),
		DocumentType: "basketball_box_score", ProcessorName: "p",
	})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestExtractRunByID(t *testing.T) {
	proc := storedProcessor()
	builder := &stubBuilder{doc: gameDoc()}
	procs := newFakeProcs(proc)
	extr := &fakeExtractions{}
	p := NewExtractPipeline(builder, execute.NewExecutor(testLogger()), procs, extr, testLogger())

	res, err := p.Run(context.Background(), ExtractRequest{
		Filename:    "game.pdf",
		Document:    []byte("%PDF-"),
		ProcessorID: proc.ID,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Result.Data["final_score"] != "FINAL SCORE" {
		t.Errorf("final_score = %v", res.Result.Data["final_score"])
	}
	if extr.started != 1 || extr.irBuilt != 1 || len(extr.successes) != 1 {
		t.Errorf("lifecycle: started=%d ir_built=%d successes=%d", extr.started, extr.irBuilt, len(extr.successes))
	}
	if len(extr.failures) != 0 {
		t.Errorf("unexpected failures: %v", extr.failures)
	}
	if len(procs.results) != 1 || !procs.results[0] {
		t.Errorf("RecordResult calls = %v, want one success", procs.results)
	}
	fin := extr.successes[0]
	if !fin.Success || fin.LayoutHash != "abc123" || fin.IRMethod != "pdf-ocr" {
		t.Errorf("finished record = %+v", fin)
	}
}

func TestExtractRunResolvesByLayoutHash(t *testing.T) {
	proc := storedProcessor()
	builder := &stubBuilder{doc: gameDoc()}
	procs := newFakeProcs(proc)
	extr := &fakeExtractions{}
	p := NewExtractPipeline(builder, execute.NewExecutor(testLogger()), procs, extr, testLogger())

	res, err := p.Run(context.Background(), ExtractRequest{
		Filename: "game.pdf",
		Document: []byte("%PDF-"),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Processor.ID != proc.ID {
		t.Errorf("resolved processor %v, want %v", res.Processor.ID, proc.ID)
	}
	// the IR from resolution is reused, not rebuilt
	if builder.calls != 1 {
		t.Errorf("builder called %d times, want 1", builder.calls)
	}
}

func TestExtractRunUnknownProcessor(t *testing.T) {
	builder := &stubBuilder{doc: gameDoc()}
	extr := &fakeExtractions{}
	p := NewExtractPipeline(builder, execute.NewExecutor(testLogger()), newFakeProcs(), extr, testLogger())

	_, err := p.Run(context.Background(), ExtractRequest{
		Filename:    "game.pdf",
		Document:    []byte("%PDF-"),
		ProcessorID: uuid.New(),
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if extr.started != 0 {
		t.Errorf("started %d extraction records for an unknown processor, want 0", extr.started)
	}
}

func TestExtractRunIngestFailureRecorded(t *testing.T) {
	proc := storedProcessor()
	builder := &stubBuilder{err: errors.New("no text")}
	procs := newFakeProcs(proc)
	extr := &fakeExtractions{}
	p := NewExtractPipeline(builder, execute.NewExecutor(testLogger()), procs, extr, testLogger())

	_, err := p.Run(context.Background(), ExtractRequest{
		Filename:    "game.pdf",
		Document:    []byte("%PDF-"),
		ProcessorID: proc.ID,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(extr.failures) != 1 {
		t.Fatalf("failures = %v, want 1", extr.failures)
	}
	if len(procs.results) != 1 || procs.results[0] {
		t.Errorf("RecordResult calls = %v, want one failure", procs.results)
	}
}

func TestExtractRunUnsupportedFormat(t *testing.T) {
	p := NewExtractPipeline(&stubBuilder{doc: gameDoc()}, execute.NewExecutor(testLogger()),
		newFakeProcs(), &fakeExtractions{}, testLogger())

	_, err := p.Run(context.Background(), ExtractRequest{
		Filename: "scores.docx",
		Document: []byte("x"),
	})
	if err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}
