package ir

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"math"
	"sort"
	"strings"
)

// signature parameters. Coordinates are bucketed so sub-bucket OCR jitter
// cannot change the hash.
const (
	signatureBlocks = 50
	signatureBucket = 0.05
	rowTolerance    = 0.015
	colTolerance    = 0.03
)

// layoutSignature fingerprints the spatial arrangement of a document.
// Same layout, different content -> same signature.
func layoutSignature(blocks []Block) string {
	ordered := make([]Block, len(blocks))
	copy(ordered, blocks)
	SortReadingOrder(ordered)
	if len(ordered) > signatureBlocks {
		ordered = ordered[:signatureBlocks]
	}

	parts := make([]string, 0, len(ordered))
	for _, b := range ordered {
		parts = append(parts, fmt.Sprintf("%.2f,%.2f,%.2f,%.2f,%s",
			bucket(b.BBox.X0),
			bucket(b.BBox.Y0),
			bucket(b.BBox.Width()),
			bucket(b.BBox.Height()),
			b.Type,
		))
	}
	sum := md5.Sum([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}

func bucket(v float64) float64 {
	return math.Round(v/signatureBucket) * signatureBucket
}

// ClusterRows groups blocks into horizontal rows by vertical proximity of
// their top edges, then orders each row left to right. Blocks must share a
// page; tol is the normalized y distance treated as the same row.
func ClusterRows(blocks []Block, tol float64) [][]Block {
	if len(blocks) == 0 {
		return nil
	}
	ordered := make([]Block, len(blocks))
	copy(ordered, blocks)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].BBox.Y0 < ordered[j].BBox.Y0 })

	var rows [][]Block
	current := []Block{ordered[0]}
	rowY := ordered[0].BBox.Y0
	for _, b := range ordered[1:] {
		if b.BBox.Y0-rowY <= tol {
			current = append(current, b)
		} else {
			rows = append(rows, current)
			current = []Block{b}
		}
		rowY = b.BBox.Y0
	}
	rows = append(rows, current)

	for _, row := range rows {
		sort.SliceStable(row, func(i, j int) bool { return row[i].BBox.X0 < row[j].BBox.X0 })
	}
	return rows
}

// detectTables finds grids of y-clustered rows whose columns align across
// at least three consecutive rows. Detection is opportunistic; extraction
// rules never depend on it, but it improves the block summary the rule
// synthesizer sees.
func detectTables(doc *Document) []Table {
	var tables []Table
	for _, pd := range doc.Pages {
		page := doc.BlocksOnPage(pd.Index)
		rows := ClusterRows(page, rowTolerance)

		var run [][]Block
		flush := func() {
			if len(run) >= 3 {
				tables = append(tables, buildTable(doc, run, len(tables)))
			}
			run = nil
		}
		for _, row := range rows {
			if len(row) < 2 {
				flush()
				continue
			}
			if len(run) > 0 && !columnsAlign(run[len(run)-1], row) {
				flush()
			}
			run = append(run, row)
		}
		flush()
	}
	return tables
}

// columnsAlign reports whether two rows have the same column count and
// matching x starts within tolerance.
func columnsAlign(a, b []Block) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i].BBox.X0-b[i].BBox.X0) > colTolerance {
			return false
		}
	}
	return true
}

func buildTable(doc *Document, rows [][]Block, n int) Table {
	t := Table{
		ID:   fmt.Sprintf("t%d", n),
		BBox: rows[0][0].BBox,
	}
	for ri, row := range rows {
		var cells []string
		for _, b := range row {
			cells = append(cells, b.Text)
			t.BBox = t.BBox.Union(b.BBox)
			markTableCell(doc, b.ID)
		}
		if ri == 0 {
			t.Header = cells
		} else {
			t.Rows = append(t.Rows, cells)
		}
	}
	return t
}

func markTableCell(doc *Document, id string) {
	for i := range doc.Blocks {
		if doc.Blocks[i].ID == id {
			if doc.Blocks[i].Type == BlockText || doc.Blocks[i].Type == BlockNumber {
				doc.Blocks[i].Type = BlockTableCell
			}
			return
		}
	}
}
