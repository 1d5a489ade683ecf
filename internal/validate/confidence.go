package validate

import "math"

// Confidence weights. Anchor quality and completeness dominate; validation
// pass rate refines.
const (
	weightAnchors    = 0.4
	weightFields     = 0.4
	weightValidation = 0.2
)

// Counts are the raw tallies of one extraction run.
type Counts struct {
	AnchorsMatched  int `json:"anchors_matched"`
	AnchorsRequired int `json:"anchors_required"`
	FieldsResolved  int `json:"fields_resolved"`
	FieldsTotal     int `json:"fields_total"`
	ChecksPassed    int `json:"checks_passed"`
	ChecksTotal     int `json:"checks_total"`
}

// Score folds the tallies into a 0-100 confidence value. Each component is
// monotone in its fraction; an empty denominator contributes a full
// component rather than punishing a processor for having nothing to check.
// The result is rounded to two decimals so equal tallies always produce
// the same score and band.
func Score(c Counts) float64 {
	anchors := ratio(c.AnchorsMatched, c.AnchorsRequired)
	fields := ratio(c.FieldsResolved, c.FieldsTotal)
	checks := ratio(c.ChecksPassed, c.ChecksTotal)
	v := 100 * (weightAnchors*anchors + weightFields*fields + weightValidation*checks)
	return math.Round(v*100) / 100
}

func ratio(n, d int) float64 {
	if d <= 0 {
		return 1
	}
	if n < 0 {
		n = 0
	}
	if n > d {
		n = d
	}
	return float64(n) / float64(d)
}
