// Package ir holds the intermediate representation built from a scanned
// document: word-level text blocks with normalized geometry, detected
// tables, and a layout signature for routing documents to processors.
package ir

import (
	"encoding/json"
	"sort"
	"strings"
)

// BlockType classifies a text block.
type BlockType string

const (
	BlockText      BlockType = "text"
	BlockNumber    BlockType = "number"
	BlockHeader    BlockType = "header"
	BlockTableCell BlockType = "table_cell"
)

// BBox is a block's bounding box in page-normalized coordinates.
// All four values lie in [0,1] with X0 <= X1 and Y0 <= Y1; the origin is
// the top-left corner of the page.
type BBox struct {
	X0   float64 `json:"x0"`
	Y0   float64 `json:"y0"`
	X1   float64 `json:"x1"`
	Y1   float64 `json:"y1"`
	Page int     `json:"page"`
}

func (b BBox) Width() float64   { return b.X1 - b.X0 }
func (b BBox) Height() float64  { return b.Y1 - b.Y0 }
func (b BBox) CenterX() float64 { return (b.X0 + b.X1) / 2 }
func (b BBox) CenterY() float64 { return (b.Y0 + b.Y1) / 2 }

// Overlaps reports whether two boxes on the same page intersect.
func (b BBox) Overlaps(o BBox) bool {
	if b.Page != o.Page {
		return false
	}
	return b.X0 < o.X1 && o.X0 < b.X1 && b.Y0 < o.Y1 && o.Y0 < b.Y1
}

// Union returns the smallest box covering both. Pages must match.
func (b BBox) Union(o BBox) BBox {
	u := b
	if o.X0 < u.X0 {
		u.X0 = o.X0
	}
	if o.Y0 < u.Y0 {
		u.Y0 = o.Y0
	}
	if o.X1 > u.X1 {
		u.X1 = o.X1
	}
	if o.Y1 > u.Y1 {
		u.Y1 = o.Y1
	}
	return u
}

// Block is a single OCR text unit, usually a word or a short run of words.
type Block struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	BBox       BBox      `json:"bbox"`
	Confidence float64   `json:"confidence"`
	FontSize   float64   `json:"font_size,omitempty"`
	Bold       bool      `json:"bold,omitempty"`
	Type       BlockType `json:"type"`
}

// Table is an opportunistically detected grid of aligned blocks.
type Table struct {
	ID     string     `json:"id"`
	BBox   BBox       `json:"bbox"`
	Header []string   `json:"header,omitempty"`
	Rows   [][]string `json:"rows"`
}

// PageDim records the rendered pixel dimensions of one page.
type PageDim struct {
	Index  int     `json:"index"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Document is the immutable IR for one ingested file. Build it with
// Builder; after that, treat it as read-only.
type Document struct {
	Filename   string    `json:"filename"`
	PageCount  int       `json:"page_count"`
	Pages      []PageDim `json:"pages"`
	Blocks     []Block   `json:"blocks"`
	Tables     []Table   `json:"tables,omitempty"`
	RawText    string    `json:"raw_text"`
	LayoutHash string    `json:"layout_hash"`
	Method     string    `json:"method"`
	DPI        int       `json:"dpi,omitempty"`
}

// BlocksOnPage returns the blocks of one page in reading order.
func (d *Document) BlocksOnPage(page int) []Block {
	var out []Block
	for _, b := range d.Blocks {
		if b.BBox.Page == page {
			out = append(out, b)
		}
	}
	SortReadingOrder(out)
	return out
}

// FindText returns all blocks whose text contains q, case-insensitively,
// in reading order.
func (d *Document) FindText(q string) []Block {
	q = strings.ToLower(q)
	var out []Block
	for _, b := range d.Blocks {
		if strings.Contains(strings.ToLower(b.Text), q) {
			out = append(out, b)
		}
	}
	SortReadingOrder(out)
	return out
}

// SortReadingOrder orders blocks by (page, y, x). This is the canonical
// ordering used for anchor occurrence selection.
func SortReadingOrder(blocks []Block) {
	sort.SliceStable(blocks, func(i, j int) bool {
		bi, bj := blocks[i].BBox, blocks[j].BBox
		if bi.Page != bj.Page {
			return bi.Page < bj.Page
		}
		if bi.Y0 != bj.Y0 {
			return bi.Y0 < bj.Y0
		}
		return bi.X0 < bj.X0
	})
}

// MarshalJSON / round-trip support is plain encoding/json; ToJSON and
// FromJSON exist for the repository layer, which persists IR snapshots.
func (d *Document) ToJSON() ([]byte, error) {
	return json.Marshal(d)
}

func FromJSON(data []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
