package ir

import (
	"fmt"
	"testing"
)

func blockAt(id string, x0, y0, x1, y1 float64) Block {
	return Block{ID: id, Text: id, BBox: BBox{X0: x0, Y0: y0, X1: x1, Y1: y1}, Type: BlockText}
}

func TestLayoutSignatureIgnoresSubBucketJitter(t *testing.T) {
	a := []Block{
		blockAt("a", 0.10, 0.10, 0.30, 0.15),
		blockAt("b", 0.50, 0.10, 0.70, 0.15),
	}
	// same layout, nudged by less than half a bucket
	b := []Block{
		blockAt("a", 0.11, 0.09, 0.31, 0.14),
		blockAt("b", 0.51, 0.11, 0.71, 0.16),
	}
	if got, want := layoutSignature(a), layoutSignature(b); got != want {
		t.Errorf("jittered layout hashed differently: %s vs %s", got, want)
	}
}

func TestLayoutSignatureSeparatesLayouts(t *testing.T) {
	a := []Block{blockAt("a", 0.10, 0.10, 0.30, 0.15)}
	b := []Block{blockAt("a", 0.60, 0.70, 0.90, 0.80)}
	if layoutSignature(a) == layoutSignature(b) {
		t.Errorf("distinct layouts share a signature")
	}
}

func TestClusterRows(t *testing.T) {
	var blocks []Block
	for row := 0; row < 4; row++ {
		y := 0.1 + float64(row)*0.05
		for col := 0; col < 3; col++ {
			x := 0.1 + float64(col)*0.25
			blocks = append(blocks, blockAt(fmt.Sprintf("r%dc%d", row, col), x, y, x+0.2, y+0.02))
		}
	}
	rows := ClusterRows(blocks, 0.015)
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}
	for i, row := range rows {
		if len(row) != 3 {
			t.Errorf("row %d has %d cells, want 3", i, len(row))
		}
		for c := 1; c < len(row); c++ {
			if row[c].BBox.X0 < row[c-1].BBox.X0 {
				t.Errorf("row %d not ordered left to right", i)
			}
		}
	}
}

func TestDetectTables(t *testing.T) {
	doc := buildSample(t)
	if len(doc.Tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(doc.Tables))
	}
	tab := doc.Tables[0]
	if len(tab.Header) != 2 {
		t.Errorf("got header %v, want 2 cells", tab.Header)
	}
	if len(tab.Rows) != 2 {
		t.Errorf("got %d body rows, want 2", len(tab.Rows))
	}
}
