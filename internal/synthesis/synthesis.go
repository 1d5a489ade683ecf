// Package synthesis turns one example document plus its desired output into
// a stored processor by asking a rule synthesizer for an extraction rule
// spec and self-checking the result against the example.
package synthesis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/statline/statline/constants"
	"github.com/statline/statline/internal/common"
	"github.com/statline/statline/internal/execute"
	"github.com/statline/statline/internal/ir"
	"github.com/statline/statline/internal/llm"
	"github.com/statline/statline/internal/processor"
)

const (
	// Bounded IR summary sent to the model. The full IR never fits.
	maxSummaryBlocks    = 200
	maxBlockTextChars   = 60
	maxRawExcerptChars  = 3000
	similarityThreshold = 0.8
)

// Report records the self-check outcome for one synthesis call. Low
// similarity means the fresh rules do not reproduce the operator's desired
// output on the very document they were learned from.
type Report struct {
	Similarity    float64         `json:"similarity"`
	LowSimilarity bool            `json:"low_similarity"`
	Confidence    float64         `json:"confidence"`
	Band          string          `json:"band"`
	Issues        []execute.Issue `json:"issues,omitempty"`
	RawResponse   []byte          `json:"-"`
}

type Synthesizer struct {
	client llm.RuleSynthesizer
	exec   *execute.Executor
	log    *slog.Logger
}

func NewSynthesizer(client llm.RuleSynthesizer, logger *slog.Logger) *Synthesizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Synthesizer{
		client: client,
		exec:   execute.NewExecutor(logger),
		log:    logger,
	}
}

// Synthesize asks the rule synthesizer for a rule spec describing doc, parses
// and validates it into a Processor, and executes the fresh Processor against
// the same document to measure how closely it reproduces desiredOutput.
// The Processor is returned unpersisted; storage is the caller's concern.
func (s *Synthesizer) Synthesize(ctx context.Context, doc *ir.Document, desiredOutput []byte, documentType, name string) (*processor.Processor, *Report, error) {
	start := time.Now()

	docType, ok := constants.CanonicalizeDocumentType(documentType)
	if !ok {
		return nil, nil, common.NewAppError(common.CodeSynthesisParse,
			fmt.Sprintf("unknown document type %q", documentType), nil)
	}
	var desired any
	if err := json.Unmarshal(desiredOutput, &desired); err != nil {
		return nil, nil, common.NewAppError(common.CodeSynthesisParse, "desired output is not valid json", err)
	}

	req := llm.SynthesisRequest{
		DocumentType:   string(docType),
		ProcessorName:  name,
		BlockSummary:   BuildBlockSummary(doc, maxSummaryBlocks),
		RawTextExcerpt: truncate(doc.RawText, maxRawExcerptChars),
		DesiredOutput:  string(desiredOutput),
	}

	s.log.Info("synthesis.start",
		"name", name,
		"document_type", docType,
		"blocks", len(doc.Blocks),
		"layout_hash", doc.LayoutHash,
	)

	rules, raw, err := s.client.SynthesizeRules(ctx, req)
	if err != nil {
		s.log.Error("synthesis.model_error", "name", name, "error", err)
		return nil, nil, common.NewAppError(common.CodeSynthesisParse, "rule synthesis failed", err)
	}

	now := time.Now().UTC()
	proc := &processor.Processor{
		ID:           uuid.New(),
		Name:         name,
		DocumentType: string(docType),
		Version:      1,
		LayoutHash:   doc.LayoutHash,
		RuleSet:      rules,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := proc.Validate(); err != nil {
		s.log.Error("synthesis.invalid_rules", "name", name, "error", err)
		return nil, nil, common.NewAppError(common.CodeSynthesisParse, "synthesized rules are invalid", err)
	}

	report, err := s.selfCheck(proc, doc, desired)
	if err != nil {
		return nil, nil, err
	}
	report.RawResponse = raw

	s.log.Info("synthesis.done",
		"name", name,
		"processor_id", proc.ID,
		"anchors", len(proc.Anchors),
		"regions", len(proc.Regions),
		"ops", len(proc.ExtractionOps),
		"similarity", report.Similarity,
		"confidence", report.Confidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return proc, report, nil
}

// selfCheck runs the fresh processor against the example it was learned
// from. Divergence is reported, never auto-retried here.
func (s *Synthesizer) selfCheck(proc *processor.Processor, doc *ir.Document, desired any) (*Report, error) {
	compiled, err := processor.Compile(proc)
	if err != nil {
		return nil, common.NewAppError(common.CodeSynthesisParse, "compile synthesized rules", err)
	}
	res, err := s.exec.Execute(doc, compiled, execute.Options{})
	if err != nil {
		return nil, common.NewAppError(common.CodeSynthesisParse, "self-check execution", err)
	}

	sim := OutputSimilarity(desired, res.Data)
	report := &Report{
		Similarity:    sim,
		LowSimilarity: sim < similarityThreshold,
		Confidence:    res.Confidence,
		Band:          string(res.Band),
		Issues:        res.Issues,
	}
	if report.LowSimilarity {
		s.log.Warn("synthesis.low_similarity",
			"processor_id", proc.ID,
			"similarity", sim,
			"threshold", similarityThreshold,
		)
	}
	return report, nil
}

// BuildBlockSummary renders up to maxBlocks blocks in reading order as one
// line each: id, page, bbox, type, text.
func BuildBlockSummary(doc *ir.Document, maxBlocks int) string {
	blocks := make([]ir.Block, len(doc.Blocks))
	copy(blocks, doc.Blocks)
	ir.SortReadingOrder(blocks)
	if maxBlocks > 0 && len(blocks) > maxBlocks {
		blocks = blocks[:maxBlocks]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "pages=%d blocks=%d layout=%s\n", doc.PageCount, len(doc.Blocks), doc.LayoutHash)
	for _, blk := range blocks {
		fmt.Fprintf(&b, "%s p%d [%.2f,%.2f,%.2f,%.2f] %s %s\n",
			blk.ID, blk.BBox.Page,
			blk.BBox.X0, blk.BBox.Y0, blk.BBox.X1, blk.BBox.Y1,
			blk.Type, truncate(blk.Text, maxBlockTextChars))
	}
	return b.String()
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "…"
}
