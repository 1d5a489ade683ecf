package ir

import (
	"strconv"
	"strings"
)

// tsvWord is one word row from tesseract's TSV output, in pixel coordinates.
type tsvWord struct {
	BlockNum int
	ParNum   int
	LineNum  int
	WordNum  int
	Left     float64
	Top      float64
	Width    float64
	Height   float64
	Conf     float64 // 0..100
	Text     string
}

// parseTesseractTSV parses `tesseract <img> stdout tsv` output. It returns
// word-level rows (level 5) and the mean word confidence in 0..1.
// TSV columns: level page_num block_num par_num line_num word_num
// left top width height conf text.
func parseTesseractTSV(out []byte) ([]tsvWord, float64) {
	lines := strings.Split(string(out), "\n")
	var words []tsvWord
	var sum, n float64
	for i, ln := range lines {
		if i == 0 || len(ln) == 0 {
			continue
		} // skip header
		cols := strings.Split(ln, "\t")
		if len(cols) < 12 {
			continue
		} // short row
		level, err := strconv.Atoi(cols[0])
		if err != nil || level != 5 {
			continue
		}
		text := strings.TrimSpace(cols[11])
		if text == "" {
			continue
		}
		conf, err := strconv.ParseFloat(cols[10], 64)
		if err != nil || conf < 0 {
			continue
		}
		w := tsvWord{Text: text, Conf: conf}
		w.BlockNum, _ = strconv.Atoi(cols[2])
		w.ParNum, _ = strconv.Atoi(cols[3])
		w.LineNum, _ = strconv.Atoi(cols[4])
		w.WordNum, _ = strconv.Atoi(cols[5])
		w.Left, _ = strconv.ParseFloat(cols[6], 64)
		w.Top, _ = strconv.ParseFloat(cols[7], 64)
		w.Width, _ = strconv.ParseFloat(cols[8], 64)
		w.Height, _ = strconv.ParseFloat(cols[9], 64)
		words = append(words, w)
		sum += conf
		n++
	}
	if n == 0 {
		return words, 0
	}
	return words, sum / n / 100.0
}
