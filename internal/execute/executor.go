package execute

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/statline/statline/constants"
	"github.com/statline/statline/internal/common"
	"github.com/statline/statline/internal/fieldpath"
	"github.com/statline/statline/internal/formula"
	"github.com/statline/statline/internal/ir"
	"github.com/statline/statline/internal/processor"
	"github.com/statline/statline/internal/validate"
)

// Issue codes carried on extraction results.
const (
	IssueMissingAnchor    = "missing_required_anchor"
	IssueRegionUnresolved = "region_unresolved"
	IssueTransformFailed  = "transform_failed"
	IssueCalculation      = "calculation_error"
	IssueValidation       = "validation_failed"
)

// Issue is one non-fatal problem from an extraction run. Error-severity
// issues mark the run unsuccessful; warnings are informational.
type Issue struct {
	Code     string `json:"code"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Field    string `json:"field,omitempty"`
	Region   string `json:"region,omitempty"`
	Anchor   string `json:"anchor,omitempty"`
}

// Result is the complete outcome of applying a processor to a document.
type Result struct {
	Data       map[string]any           `json:"data"`
	Issues     []Issue                  `json:"issues,omitempty"`
	Confidence float64                  `json:"confidence"`
	Band       constants.ConfidenceBand `json:"band"`
	Success    bool                     `json:"success"`
	Counts     validate.Counts          `json:"counts"`
	Duration   time.Duration            `json:"-"`
}

// Options tune one execution.
type Options struct {
	// Strict turns a missing required anchor into a returned error instead
	// of a blocking issue on the result.
	Strict bool
}

// Executor applies compiled processors to document IRs. It is stateless
// and safe for concurrent use.
type Executor struct {
	logger *slog.Logger
}

func NewExecutor(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{logger: logger}
}

// Execute runs the full pipeline: anchors, regions, extraction ops,
// calculations, validations, confidence. Per-field failures accumulate as
// issues; the only error returns are nil inputs and strict-mode anchor
// misses.
func (e *Executor) Execute(doc *ir.Document, c *processor.Compiled, opts Options) (*Result, error) {
	if doc == nil || c == nil {
		return nil, common.NewAppError(common.CodeProcessorInvalid, "nil document or processor", common.ErrInvalidInput)
	}
	start := time.Now()
	p := c.Proc
	e.logger.Debug("executor.start", "processor", p.Name, "version", p.Version, "filename", doc.Filename)

	res := &Result{Data: map[string]any{}}

	// anchors
	matches := FindAnchors(doc, p.Anchors)
	for _, a := range p.Anchors {
		if !a.Required {
			continue
		}
		res.Counts.AnchorsRequired++
		if len(matches[a.Name]) > 0 {
			res.Counts.AnchorsMatched++
			continue
		}
		if opts.Strict {
			return nil, common.NewAppError(common.CodeMissingAnchor,
				fmt.Sprintf("required anchor %q not found", a.Name), nil)
		}
		res.Issues = append(res.Issues, Issue{
			Code:     IssueMissingAnchor,
			Severity: constants.SeverityError,
			Anchor:   a.Name,
			Message:  fmt.Sprintf("required anchor %q not found", a.Name),
		})
	}

	// regions
	regions := make(map[string]resolvedRegion, len(p.Regions))
	for _, r := range p.Regions {
		rr, issue := resolveRegion(doc, r, matches)
		regions[r.Name] = rr
		if issue != nil {
			res.Issues = append(res.Issues, *issue)
			e.logger.Warn("executor.region.unresolved", "processor", p.Name, "region", r.Name, "reason", issue.Message)
		}
	}

	// extraction ops
	res.Counts.FieldsTotal = len(c.Ops)
	for _, op := range c.Ops {
		if e.runOp(res, op, matches, regions) {
			res.Counts.FieldsResolved++
		}
	}

	// calculations
	for _, bad := range c.BadCalcs {
		if path, err := fieldpath.Parse(bad.Field); err == nil {
			fieldpath.Set(res.Data, path, 0, nil)
		}
		res.Issues = append(res.Issues, Issue{
			Code:     IssueCalculation,
			Severity: constants.SeverityError,
			Field:    bad.Field,
			Message:  fmt.Sprintf("calculation %q has a malformed formula %q", bad.Field, bad.Formula),
		})
	}
	for _, calc := range c.Calcs {
		env := &formula.Env{Data: res.Data}
		value := calc.Expr.Eval(env)
		fieldpath.Set(res.Data, calc.Field, 0, value)
		for _, w := range env.Warnings {
			res.Issues = append(res.Issues, Issue{
				Code:     IssueCalculation,
				Severity: constants.SeverityWarning,
				Field:    calc.Calc.Field,
				Message:  w,
			})
		}
	}

	// validations
	res.Counts.ChecksTotal = len(c.Checks)
	for _, cr := range validate.Run(res.Data, c.Checks) {
		if cr.Passed {
			res.Counts.ChecksPassed++
			continue
		}
		res.Issues = append(res.Issues, Issue{
			Code:     IssueValidation,
			Severity: cr.Severity,
			Message:  cr.Message,
		})
	}

	res.Success = true
	var missedAnchor bool
	for _, issue := range res.Issues {
		if issue.Severity != constants.SeverityError {
			continue
		}
		res.Success = false
		if issue.Code == IssueMissingAnchor {
			missedAnchor = true
		}
	}

	// a blocking issue is never publishable as-is; a missed required
	// anchor means the layout did not match and the score goes low
	res.Confidence = validate.Score(res.Counts)
	switch {
	case missedAnchor && res.Confidence > 69:
		res.Confidence = 69
	case !res.Success && res.Confidence > 89:
		res.Confidence = 89
	}
	res.Band = constants.BandFor(res.Confidence)
	res.Duration = time.Since(start)

	e.logger.Info("executor.done",
		"processor", p.Name,
		"filename", doc.Filename,
		"success", res.Success,
		"confidence", res.Confidence,
		"fields", fmt.Sprintf("%d/%d", res.Counts.FieldsResolved, res.Counts.FieldsTotal),
		"issues", len(res.Issues),
		"duration_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}

// runOp applies one extraction op and reports whether it resolved at least
// one non-null value.
func (e *Executor) runOp(res *Result, op processor.CompiledOp, matches map[string][]Match, regions map[string]resolvedRegion) bool {
	switch op.Source.Kind {
	case "anchor":
		ms := matches[op.Source.Name]
		if len(ms) == 0 {
			fieldpath.Set(res.Data, op.Field, 0, nil)
			return false
		}
		return e.setValue(res, op, 0, ms[0].Block.Text)

	case "region":
		rr, ok := regions[op.Source.Name]
		if !ok || !rr.ok {
			fieldpath.Set(res.Data, op.Field, 0, nil)
			return false
		}
		if op.Source.Attr == "text" {
			return e.setValue(res, op, 0, rr.text())
		}

		// column extraction
		if !op.Field.HasArray() {
			// scalar field from a column: first row wins (key_value regions)
			for _, row := range rr.rows {
				if op.Source.Column < len(row) {
					return e.setValue(res, op, 0, row[op.Source.Column].Text)
				}
			}
			fieldpath.Set(res.Data, op.Field, 0, nil)
			return false
		}

		resolved := false
		for ri, row := range rr.rows {
			if op.Source.Column >= len(row) {
				fieldpath.Set(res.Data, op.Field, ri, nil)
				continue
			}
			if e.setValue(res, op, ri, row[op.Source.Column].Text) {
				resolved = true
			}
		}
		return resolved
	}
	return false
}

// setValue applies the op's transform and writes the element. A transform
// failure writes null and records a warning.
func (e *Executor) setValue(res *Result, op processor.CompiledOp, idx int, raw any) bool {
	value, err := applyTransform(op.Op.Transform, raw)
	if err != nil {
		fieldpath.Set(res.Data, op.Field, idx, nil)
		res.Issues = append(res.Issues, Issue{
			Code:     IssueTransformFailed,
			Severity: constants.SeverityWarning,
			Field:    op.Op.Field,
			Message:  fmt.Sprintf("field %s: %v", op.Op.Field, err),
		})
		return false
	}
	fieldpath.Set(res.Data, op.Field, idx, value)
	return value != nil
}
