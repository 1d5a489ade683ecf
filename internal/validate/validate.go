// Package validate runs a processor's validation checks over an extraction
// output tree and scores the overall confidence of the run.
package validate

import (
	"fmt"

	"github.com/statline/statline/internal/formula"
	"github.com/statline/statline/internal/processor"
)

// CheckResult is the outcome of one validation check.
type CheckResult struct {
	Name     string
	Severity string
	Passed   bool
	Message  string
	Warnings []string
}

// Run evaluates every compiled check against the output tree. Checks never
// abort each other; evaluation warnings (missing fields, non-numeric
// values) ride along on the result.
func Run(data map[string]any, checks []processor.CompiledCheck) []CheckResult {
	results := make([]CheckResult, 0, len(checks))
	for _, c := range checks {
		env := &formula.Env{Data: data}
		passed := c.Check.Eval(env)
		r := CheckResult{
			Name:     c.Validation.Name,
			Severity: c.Validation.Severity,
			Passed:   passed,
			Warnings: env.Warnings,
		}
		if !passed {
			r.Message = fmt.Sprintf("check %q failed: %s", c.Validation.Name, c.Validation.Check)
		}
		results = append(results, r)
	}
	return results
}
