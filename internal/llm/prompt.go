package llm

import (
	"strings"

	"github.com/statline/statline/constants"
)

const (
	maxBlockSummaryChars = 6000
	maxRawTextChars      = 3000
	maxDesiredChars      = 4000
)

// BuildSystemPrompt composes the system message: what a rule spec is, which
// enums the response may use, and strict-but-practical formatting rules.
func BuildSystemPrompt(req SynthesisRequest) string {
	parts := []string{
		"You are a document extraction rule writer. Return ONLY JSON that matches the provided JSON Schema.",
		"Given the layout of one example document and the output its operator wants, write rules that reproduce that output and that will keep working on other documents with the same layout.",
		"Anchors must be text that is STABLE across issues of this document: column headings, section labels, fixed captions. Never anchor on a name, a number, or a date.",
		"Pattern types: " + constants.PatternContains + " (default), " + constants.PatternExact + ", " + constants.PatternRegex + ".",
		"Location hints: " + strings.Join(constants.LocationHints, ", ") + ".",
		"Region types: " + constants.RegionTable + ", " + constants.RegionKeyValue + ", " + constants.RegionList + " (one item per row), " + constants.RegionFreeText + ". A region runs from its start anchor down to its end anchor on the same page.",
		"Extraction op sources: region.<name>.column[N] (N is a 0-based column index), region.<name>.text, or anchor.<name>.text.",
		"Field paths are dotted, with at most one [] marking a per-row array, e.g. players[].points.",
		"Transforms: " + strings.Join(constants.Transforms, ", ") + ". Use " + constants.TransformToInt + " for counts, " + constants.TransformNormalizeName + " for person names.",
		"Formulas may use + - * /, parentheses, sum(path) and count(path) over array paths.",
		"Checks may additionally use == != < <= > >=, exists(path), and and/or/not.",
		"Prefer calculations over extracting totals directly when a printed total can disagree with its parts; then add a validation comparing the two.",
		"Optionally include a top-level \"template\" string: a human-readable summary of the output with {field.path} placeholders.",
		"Never output null. If a rule element does not apply, omit it.",
	}
	if t := strings.TrimSpace(req.DocumentType); t != "" {
		parts = append(parts, "The document type is: "+t+".")
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages the example document and the desired output.
// All three sections are hard-capped so one oversized scan cannot blow the
// context window.
func BuildUserPrompt(req SynthesisRequest) string {
	var b strings.Builder
	if n := strings.TrimSpace(req.ProcessorName); n != "" {
		b.WriteString("Processor name: ")
		b.WriteString(n)
		b.WriteString("\n")
	}

	b.WriteString("\nDocument blocks (id, bbox, type, text):\n")
	writeCapped(&b, req.BlockSummary, maxBlockSummaryChars)

	b.WriteString("\nRaw text (first ~3k chars):\n")
	writeCapped(&b, req.RawTextExcerpt, maxRawTextChars)

	b.WriteString("\nDesired output for THIS document:\n")
	writeCapped(&b, req.DesiredOutput, maxDesiredChars)

	b.WriteString("\nReturn the rule spec JSON now.")
	return b.String()
}

func writeCapped(b *strings.Builder, s string, limit int) {
	s = strings.TrimSpace(s)
	if len(s) > limit {
		b.WriteString(s[:limit])
		b.WriteString("\n…(truncated)")
	} else {
		b.WriteString(s)
	}
	b.WriteString("\n")
}
