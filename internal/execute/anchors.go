// Package execute applies a compiled processor to a document IR: anchor
// matching, region resolution, extraction ops, calculations, and the final
// validation and confidence pass. Execution is deterministic and never
// mutates the document.
package execute

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/statline/statline/constants"
	"github.com/statline/statline/internal/ir"
	"github.com/statline/statline/internal/processor"
)

// proximityRadius is the max normalized distance between consecutive words
// of a multi-word pattern split across OCR blocks.
const proximityRadius = 0.1

// Match is one located occurrence of an anchor.
type Match struct {
	Block   ir.Block
	Pattern string
	Backup  bool
}

// FindAnchors locates every anchor of the processor in the document.
// Matches are returned in reading order (page, y, x); a missing anchor maps
// to an empty slice. Required-ness is the executor's concern, not the
// matcher's.
func FindAnchors(doc *ir.Document, anchors []processor.Anchor) map[string][]Match {
	out := make(map[string][]Match, len(anchors))
	for _, a := range anchors {
		matches := findPatterns(doc, a, a.Patterns, false)
		if len(matches) == 0 && len(a.BackupPatterns) > 0 {
			matches = findPatterns(doc, a, a.BackupPatterns, true)
		}
		matches = applyHint(matches, a.LocationHint)
		out[a.Name] = matches
	}
	return out
}

func findPatterns(doc *ir.Document, a processor.Anchor, patterns []string, backup bool) []Match {
	var matches []Match
	seen := map[string]bool{}
	for _, pat := range patterns {
		for _, blk := range matchPattern(doc, pat, a.PatternType) {
			if seen[blk.ID] {
				continue
			}
			seen[blk.ID] = true
			matches = append(matches, Match{Block: blk, Pattern: pat, Backup: backup})
		}
	}
	sortMatches(matches)
	return matches
}

func matchPattern(doc *ir.Document, pattern, patternType string) []ir.Block {
	switch patternType {
	case constants.PatternExact:
		var hits []ir.Block
		want := strings.ToLower(strings.TrimSpace(pattern))
		for _, b := range doc.Blocks {
			if strings.ToLower(strings.TrimSpace(b.Text)) == want {
				hits = append(hits, b)
			}
		}
		return hits
	case constants.PatternRegex:
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			return nil
		}
		var hits []ir.Block
		for _, b := range doc.Blocks {
			if re.MatchString(b.Text) {
				hits = append(hits, b)
			}
		}
		return hits
	default: // contains
		hits := doc.FindText(pattern)
		if len(hits) == 0 && strings.Contains(strings.TrimSpace(pattern), " ") {
			hits = proximityMatch(doc, pattern)
		}
		return hits
	}
}

// proximityMatch handles patterns whose words OCR split into separate
// blocks: each word is located independently and chained to its nearest
// neighbor within the radius, then a virtual block spanning the chain is
// synthesized.
func proximityMatch(doc *ir.Document, pattern string) []ir.Block {
	words := strings.Fields(pattern)
	if len(words) < 2 {
		return nil
	}

	var hits []ir.Block
	for _, first := range doc.FindText(words[0]) {
		chain := []ir.Block{first}
		ok := true
		for _, w := range words[1:] {
			next, found := nearestWithText(doc, chain[len(chain)-1], w)
			if !found {
				ok = false
				break
			}
			chain = append(chain, next)
		}
		if !ok {
			continue
		}

		var texts []string
		bbox := chain[0].BBox
		conf := chain[0].Confidence
		for _, b := range chain {
			texts = append(texts, b.Text)
			bbox = bbox.Union(b.BBox)
			if b.Confidence < conf {
				conf = b.Confidence
			}
		}
		hits = append(hits, ir.Block{
			ID:         fmt.Sprintf("synth:%s", chain[0].ID),
			Text:       strings.Join(texts, " "),
			BBox:       bbox,
			Confidence: conf,
			Type:       chain[0].Type,
		})
	}
	return hits
}

func nearestWithText(doc *ir.Document, from ir.Block, word string) (ir.Block, bool) {
	var best ir.Block
	bestDist := math.Inf(1)
	lword := strings.ToLower(word)
	for _, b := range doc.Blocks {
		if b.BBox.Page != from.BBox.Page || b.ID == from.ID {
			continue
		}
		if !strings.Contains(strings.ToLower(b.Text), lword) {
			continue
		}
		dx := b.BBox.CenterX() - from.BBox.CenterX()
		dy := b.BBox.CenterY() - from.BBox.CenterY()
		d := math.Hypot(dx, dy)
		if d <= proximityRadius && d < bestDist {
			best, bestDist = b, d
		}
	}
	return best, !math.IsInf(bestDist, 1)
}

// applyHint narrows an ordered match list. Geometric hints filter;
// occurrence hints pick a single element.
func applyHint(matches []Match, hint string) []Match {
	if hint == "" || len(matches) == 0 {
		return matches
	}
	switch hint {
	case constants.HintTopThird:
		return filterMatches(matches, func(b ir.BBox) bool { return b.CenterY() < 1.0/3 })
	case constants.HintTopHalf:
		return filterMatches(matches, func(b ir.BBox) bool { return b.CenterY() < 0.5 })
	case constants.HintBottomHalf:
		return filterMatches(matches, func(b ir.BBox) bool { return b.CenterY() >= 0.5 })
	case constants.HintLeftHalf:
		return filterMatches(matches, func(b ir.BBox) bool { return b.CenterX() < 0.5 })
	case constants.HintRightHalf:
		return filterMatches(matches, func(b ir.BBox) bool { return b.CenterX() >= 0.5 })
	case constants.HintFirstOccurrence:
		return matches[:1]
	case constants.HintSecondOccurrence:
		if len(matches) < 2 {
			return nil
		}
		return matches[1:2]
	case constants.HintLastOccurrence:
		return matches[len(matches)-1:]
	default:
		return matches
	}
}

func filterMatches(matches []Match, keep func(ir.BBox) bool) []Match {
	var out []Match
	for _, m := range matches {
		if keep(m.Block.BBox) {
			out = append(out, m)
		}
	}
	return out
}

func sortMatches(matches []Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		bi, bj := matches[i].Block.BBox, matches[j].Block.BBox
		if bi.Page != bj.Page {
			return bi.Page < bj.Page
		}
		if bi.Y0 != bj.Y0 {
			return bi.Y0 < bj.Y0
		}
		return bi.X0 < bj.X0
	})
}
