package ir

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/statline/statline/internal/common"
)

// stubRunner serves canned tesseract TSV output and fails any other command.
type stubRunner struct {
	tsv map[string][]byte // keyed by requested page image suffix, "" = any
}

func (s stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	if !strings.Contains(name, "tesseract") {
		return nil, []byte("not available"), errors.New("exec: not found")
	}
	if out, ok := s.tsv[""]; ok {
		return out, nil, nil
	}
	for suffix, out := range s.tsv {
		if strings.HasSuffix(args[0], suffix) {
			return out, nil, nil
		}
	}
	return nil, []byte("no match"), errors.New("no canned output")
}

const tsvHeader = "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext\n"

func tsvRow(line, word int, left, top, width, height int, conf float64, text string) string {
	return fmt.Sprintf("5\t1\t1\t1\t%d\t%d\t%d\t%d\t%d\t%d\t%.0f\t%s\n",
		line, word, left, top, width, height, conf, text)
}

func sampleTSV() []byte {
	var b bytes.Buffer
	b.WriteString(tsvHeader)
	b.WriteString(tsvRow(1, 1, 100, 50, 300, 60, 96, "LAKERS"))
	b.WriteString(tsvRow(1, 2, 450, 50, 100, 60, 91, "102"))
	b.WriteString(tsvRow(2, 1, 100, 200, 200, 30, 88, "James"))
	b.WriteString(tsvRow(2, 2, 450, 200, 60, 30, 90, "32"))
	b.WriteString(tsvRow(3, 1, 100, 260, 200, 30, 85, "Davis"))
	b.WriteString(tsvRow(3, 2, 450, 260, 60, 30, 87, "24"))
	return b.Bytes()
}

func buildSample(t *testing.T) *Document {
	t.Helper()
	b := NewBuilder(Config{DPI: 300}, nil)
	b.runner = stubRunner{tsv: map[string][]byte{"": sampleTSV()}}
	doc, err := b.Build(context.Background(), []byte("not-a-real-png"), "game.png")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return doc
}

func TestBuildNormalizesCoordinates(t *testing.T) {
	doc := buildSample(t)
	if len(doc.Blocks) != 6 {
		t.Fatalf("got %d blocks, want 6", len(doc.Blocks))
	}
	for _, blk := range doc.Blocks {
		bb := blk.BBox
		if bb.X0 < 0 || bb.X1 > 1 || bb.Y0 < 0 || bb.Y1 > 1 {
			t.Errorf("block %s bbox %+v outside unit square", blk.ID, bb)
		}
		if bb.X0 > bb.X1 || bb.Y0 > bb.Y1 {
			t.Errorf("block %s bbox %+v inverted", blk.ID, bb)
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	a := buildSample(t)
	b := buildSample(t)
	aj, _ := a.ToJSON()
	bj, _ := b.ToJSON()
	if !bytes.Equal(aj, bj) {
		t.Errorf("two builds of the same input differ")
	}
	if a.LayoutHash != b.LayoutHash {
		t.Errorf("layout hash differs: %s vs %s", a.LayoutHash, b.LayoutHash)
	}
}

func TestBuildClassifiesNumbers(t *testing.T) {
	doc := buildSample(t)
	byText := map[string]BlockType{}
	for _, blk := range doc.Blocks {
		byText[blk.Text] = blk.Type
	}
	if got := byText["102"]; got != BlockNumber && got != BlockTableCell {
		t.Errorf("102 classified as %q, want number or table_cell", got)
	}
	if got := byText["James"]; got == BlockNumber {
		t.Errorf("James classified as number")
	}
}

func TestClassifyHeaders(t *testing.T) {
	blocks := []Block{
		{ID: "b0", Text: "CITY TRIBUNE", FontSize: 10, BBox: BBox{Y0: 0.02, Y1: 0.04}, Type: BlockText},
		{ID: "b1", Text: "BOX SCORE", FontSize: 18, BBox: BBox{Y0: 0.40, Y1: 0.45}, Type: BlockText},
		{ID: "b2", Text: "James", FontSize: 10, BBox: BBox{Y0: 0.60, Y1: 0.62}, Type: BlockText},
		{ID: "b3", Text: "12", FontSize: 10, BBox: BBox{Y0: 0.05, Y1: 0.07}, Type: BlockText},
	}
	classifyBlocks(blocks)

	if blocks[0].Type != BlockHeader {
		t.Errorf("top-band block at body font size classified as %q, want header", blocks[0].Type)
	}
	if blocks[1].Type != BlockHeader {
		t.Errorf("oversized mid-page block classified as %q, want header", blocks[1].Type)
	}
	if blocks[2].Type != BlockText {
		t.Errorf("body text classified as %q, want text", blocks[2].Type)
	}
	if blocks[3].Type != BlockNumber {
		t.Errorf("numeric top-band block classified as %q, want number", blocks[3].Type)
	}
}

func TestBuildEmptyInput(t *testing.T) {
	b := NewBuilder(Config{}, nil)
	_, err := b.Build(context.Background(), nil, "game.png")
	if err == nil {
		t.Fatal("expected error for empty input")
	}
	if code := common.ErrorCode(err); code != common.CodeIngestion {
		t.Errorf("got code %q, want %q", code, common.CodeIngestion)
	}
}

func TestBuildUnsupportedExtension(t *testing.T) {
	b := NewBuilder(Config{}, nil)
	_, err := b.Build(context.Background(), []byte("x"), "game.docx")
	if err == nil {
		t.Fatal("expected error for unsupported extension")
	}
	if code := common.ErrorCode(err); code != common.CodeIngestion {
		t.Errorf("got code %q, want %q", code, common.CodeIngestion)
	}
}

func TestFindTextIsCaseInsensitive(t *testing.T) {
	doc := buildSample(t)
	hits := doc.FindText("lakers")
	if len(hits) != 1 {
		t.Fatalf("got %d hits, want 1", len(hits))
	}
	if hits[0].Text != "LAKERS" {
		t.Errorf("got %q, want LAKERS", hits[0].Text)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	doc := buildSample(t)
	data, err := doc.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	back, err := FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if back.LayoutHash != doc.LayoutHash {
		t.Errorf("layout hash lost in round trip")
	}
	if len(back.Blocks) != len(doc.Blocks) {
		t.Errorf("got %d blocks, want %d", len(back.Blocks), len(doc.Blocks))
	}
}
