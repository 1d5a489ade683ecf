package execute

import (
	"fmt"

	"github.com/statline/statline/constants"
	"github.com/statline/statline/internal/ir"
	"github.com/statline/statline/internal/processor"
)

// rowTolerance is the normalized y distance within which blocks belong to
// the same table row.
const rowTolerance = 0.015

// resolvedRegion is a region bound to concrete blocks of one page.
type resolvedRegion struct {
	region processor.Region
	page   int
	blocks []ir.Block   // reading order
	rows   [][]ir.Block // y-clustered, x-ordered
	ok     bool
}

// resolveRegion binds a region using the first match of its start and end
// anchors. Regions are same-page only; a cross-page anchor pair is a
// resolution warning, and the region's fields degrade to null.
func resolveRegion(doc *ir.Document, r processor.Region, matches map[string][]Match) (resolvedRegion, *Issue) {
	out := resolvedRegion{region: r}

	starts := matches[r.StartAnchor]
	if len(starts) == 0 {
		return out, &Issue{
			Code:     IssueRegionUnresolved,
			Severity: constants.SeverityWarning,
			Region:   r.Name,
			Message:  fmt.Sprintf("region %q: start anchor %q not found", r.Name, r.StartAnchor),
		}
	}
	start := starts[0].Block

	yEnd := 1.0
	if r.EndAnchor != "" {
		ends := matches[r.EndAnchor]
		if len(ends) == 0 {
			return out, &Issue{
				Code:     IssueRegionUnresolved,
				Severity: constants.SeverityWarning,
				Region:   r.Name,
				Message:  fmt.Sprintf("region %q: end anchor %q not found", r.Name, r.EndAnchor),
			}
		}
		end := pickEnd(ends, start)
		if end.BBox.Page != start.BBox.Page {
			return out, &Issue{
				Code:     IssueRegionUnresolved,
				Severity: constants.SeverityWarning,
				Region:   r.Name,
				Message: fmt.Sprintf("region %q: anchors %q and %q sit on different pages (%d vs %d)",
					r.Name, r.StartAnchor, r.EndAnchor, start.BBox.Page, end.BBox.Page),
			}
		}
		yEnd = end.BBox.Y0
	}

	// blocks strictly below the start anchor and above the end anchor's row
	yStart := start.BBox.Y1
	for _, b := range doc.BlocksOnPage(start.BBox.Page) {
		if b.BBox.Y0 >= yStart && b.BBox.Y0 < yEnd {
			out.blocks = append(out.blocks, b)
		}
	}
	out.page = start.BBox.Page
	out.rows = ir.ClusterRows(out.blocks, rowTolerance)
	out.ok = true
	return out, nil
}

// pickEnd prefers the first end-anchor match at or below the start block on
// the same page, falling back to the first match overall.
func pickEnd(ends []Match, start ir.Block) ir.Block {
	for _, m := range ends {
		if m.Block.BBox.Page == start.BBox.Page && m.Block.BBox.Y0 >= start.BBox.Y1 {
			return m.Block
		}
	}
	return ends[0].Block
}

// text joins the region's blocks in reading order.
func (r resolvedRegion) text() string {
	var out string
	for i, b := range r.blocks {
		if i > 0 {
			out += " "
		}
		out += b.Text
	}
	return out
}
