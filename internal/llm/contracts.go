package llm

import (
	"context"

	"github.com/statline/statline/internal/processor"
)

// SynthesisRequest carries everything the model needs to propose extraction
// rules for one example document. BlockSummary and RawTextExcerpt are
// pre-bounded by the caller; the desired output is the ground truth the
// operator typed in.
type SynthesisRequest struct {
	DocumentType   string
	ProcessorName  string
	BlockSummary   string
	RawTextExcerpt string
	DesiredOutput  string // JSON the processor should reproduce
}

// RuleSynthesizer is the interface the learning pipeline depends on. The
// returned RuleSet has been schema-validated but not yet structurally
// validated against the document.
type RuleSynthesizer interface {
	SynthesizeRules(ctx context.Context, req SynthesisRequest) (processor.RuleSet, []byte /*rawJSON*/, error)
}
