package processor

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/statline/statline/constants"
	"github.com/statline/statline/internal/common"
	"github.com/statline/statline/internal/fieldpath"
	"github.com/statline/statline/internal/formula"
)

// Source is a parsed extraction op source reference.
type Source struct {
	Kind   string // "region" | "anchor"
	Name   string
	Attr   string // "text" | "column"
	Column int    // valid when Attr == "column"
}

var reSource = regexp.MustCompile(`^(region|anchor)\.([A-Za-z0-9_-]+)\.(text|column\[(\d+)\])$`)

// ParseSource parses "region.<name>.column[N]", "region.<name>.text" and
// "anchor.<name>.text".
func ParseSource(raw string) (Source, error) {
	m := reSource.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return Source{}, fmt.Errorf("bad source %q", raw)
	}
	s := Source{Kind: m[1], Name: m[2], Attr: m[3], Column: -1}
	if strings.HasPrefix(m[3], "column") {
		s.Attr = "column"
		s.Column, _ = strconv.Atoi(m[4])
	}
	if s.Kind == "anchor" && s.Attr != "text" {
		return Source{}, fmt.Errorf("bad source %q: anchors only expose .text", raw)
	}
	return s, nil
}

// CompiledOp pairs an extraction op with its parsed field path and source.
type CompiledOp struct {
	Op     ExtractionOp
	Field  fieldpath.Path
	Source Source
}

// CompiledCalc pairs a calculation with its parsed formula AST.
type CompiledCalc struct {
	Calc  Calculation
	Field fieldpath.Path
	Expr  formula.Expr
}

// CompiledCheck pairs a validation with its parsed check AST.
type CompiledCheck struct {
	Validation Validation
	Check      formula.Check
}

// Compiled is a processor ready for execution: every rule expression is
// parsed exactly once, at load.
type Compiled struct {
	Proc   *Processor
	Ops    []CompiledOp
	Calcs  []CompiledCalc
	Checks []CompiledCheck

	// BadCalcs holds calculations whose formulas failed to parse when the
	// processor was loaded leniently; the executor reports them as issues.
	BadCalcs []Calculation
}

// Validate runs the structural checks applied to every processor before it
// is stored or executed: anchors named and patterned, region anchor
// references resolvable, sources and paths parseable, formulas and checks
// compilable. It does not touch any document.
func (p *Processor) Validate() error {
	var problems []string
	addf := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if strings.TrimSpace(p.Name) == "" {
		addf("processor name is empty")
	}
	if len(p.Anchors) == 0 {
		addf("processor has no anchors")
	}

	anchorNames := map[string]bool{}
	for i, a := range p.Anchors {
		if strings.TrimSpace(a.Name) == "" {
			addf("anchor %d has no name", i)
			continue
		}
		if anchorNames[a.Name] {
			addf("duplicate anchor %q", a.Name)
		}
		anchorNames[a.Name] = true
		if len(a.Patterns) == 0 {
			addf("anchor %q has no patterns", a.Name)
		}
		switch a.PatternType {
		case "", constants.PatternContains, constants.PatternExact:
		case constants.PatternRegex:
			for _, pat := range append(append([]string{}, a.Patterns...), a.BackupPatterns...) {
				if _, err := regexp.Compile("(?i)" + pat); err != nil {
					addf("anchor %q: bad regex %q: %v", a.Name, pat, err)
				}
			}
		default:
			addf("anchor %q: unknown pattern type %q", a.Name, a.PatternType)
		}
		if a.LocationHint != "" && !validHint(a.LocationHint) {
			addf("anchor %q: unknown location hint %q", a.Name, a.LocationHint)
		}
	}

	regionNames := map[string]bool{}
	for i, r := range p.Regions {
		if strings.TrimSpace(r.Name) == "" {
			addf("region %d has no name", i)
			continue
		}
		if regionNames[r.Name] {
			addf("duplicate region %q", r.Name)
		}
		regionNames[r.Name] = true
		switch r.Type {
		case constants.RegionTable, constants.RegionKeyValue, constants.RegionList, constants.RegionFreeText:
		default:
			addf("region %q: unknown type %q", r.Name, r.Type)
		}
		if !anchorNames[r.StartAnchor] {
			addf("region %q: start anchor %q does not exist", r.Name, r.StartAnchor)
		}
		if r.EndAnchor != "" && !anchorNames[r.EndAnchor] {
			addf("region %q: end anchor %q does not exist", r.Name, r.EndAnchor)
		}
	}

	for _, op := range p.ExtractionOps {
		if _, err := fieldpath.Parse(op.Field); err != nil {
			addf("op %q: %v", op.Field, err)
		}
		src, err := ParseSource(op.Source)
		if err != nil {
			addf("op %q: %v", op.Field, err)
		} else {
			switch src.Kind {
			case "region":
				if !regionNames[src.Name] {
					addf("op %q: region %q does not exist", op.Field, src.Name)
				}
			case "anchor":
				if !anchorNames[src.Name] {
					addf("op %q: anchor %q does not exist", op.Field, src.Name)
				}
			}
		}
		if op.Transform != "" && !validTransform(op.Transform) {
			addf("op %q: unknown transform %q", op.Field, op.Transform)
		}
	}

	for _, c := range p.Calculations {
		if _, err := fieldpath.Parse(c.Field); err != nil {
			addf("calculation %q: %v", c.Field, err)
		}
		if _, err := formula.Parse(c.Formula); err != nil {
			addf("calculation %q: %v", c.Field, err)
		}
	}

	for _, v := range p.Validations {
		if _, err := formula.ParseCheck(v.Check); err != nil {
			addf("validation %q: %v", v.Name, err)
		}
		switch v.Severity {
		case constants.SeverityError, constants.SeverityWarning:
		default:
			addf("validation %q: unknown severity %q", v.Name, v.Severity)
		}
	}

	if len(problems) > 0 {
		return common.NewAppError(common.CodeProcessorInvalid, strings.Join(problems, "; "), nil)
	}
	return nil
}

// Compile validates the processor and parses every rule expression into its
// executable form.
func Compile(p *Processor) (*Compiled, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	c := &Compiled{Proc: p}
	for _, op := range p.ExtractionOps {
		field, _ := fieldpath.Parse(op.Field)
		src, _ := ParseSource(op.Source)
		c.Ops = append(c.Ops, CompiledOp{Op: op, Field: field, Source: src})
	}
	for _, calc := range p.Calculations {
		field, _ := fieldpath.Parse(calc.Field)
		expr, _ := formula.Parse(calc.Formula)
		c.Calcs = append(c.Calcs, CompiledCalc{Calc: calc, Field: field, Expr: expr})
	}
	for _, v := range p.Validations {
		check, _ := formula.ParseCheck(v.Check)
		c.Checks = append(c.Checks, CompiledCheck{Validation: v, Check: check})
	}
	return c, nil
}

// CompileLenient compiles as much of a processor as possible. Structural
// problems in anchors, regions, and ops are still fatal, but calculations
// with malformed formulas are set aside in BadCalcs so the executor can
// surface them as issues while the rest of the extraction proceeds.
func CompileLenient(p *Processor) (*Compiled, error) {
	trimmed := *p
	trimmed.Calculations = nil
	var good, bad []Calculation
	for _, calc := range p.Calculations {
		_, ferr := formula.Parse(calc.Formula)
		_, perr := fieldpath.Parse(calc.Field)
		if ferr != nil || perr != nil {
			bad = append(bad, calc)
		} else {
			good = append(good, calc)
		}
	}
	trimmed.Calculations = good

	c, err := Compile(&trimmed)
	if err != nil {
		return nil, err
	}
	c.Proc = p
	c.BadCalcs = bad
	return c, nil
}

func validHint(h string) bool {
	for _, v := range constants.LocationHints {
		if h == v {
			return true
		}
	}
	return false
}

func validTransform(t string) bool {
	for _, v := range constants.Transforms {
		if t == v {
			return true
		}
	}
	return false
}
