package ir

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/statline/statline/internal/common"
)

// buildEmbedded is the reduced-fidelity fallback: when pdftoppm or
// tesseract are unavailable, pull embedded text out of the PDF content
// streams. Geometry is synthesized as full-width line bands, so anchors
// still match on text and vertical position, but column extraction
// degrades to word order within the line.
func (b *Builder) buildEmbedded(data []byte, filename string) (*Document, error) {
	conf := model.NewDefaultConfiguration()
	pctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return nil, common.NewAppError(common.CodeIngestion, "pdfcpu read", err)
	}
	if pctx.PageCount == 0 {
		return nil, common.NewAppError(common.CodeIngestion, "pdf has no pages", nil)
	}

	doc := &Document{
		Filename:  filename,
		PageCount: pctx.PageCount,
		Method:    "pdf-embedded",
	}
	for pageNr := 1; pageNr <= pctx.PageCount; pageNr++ {
		page := pageNr - 1
		doc.Pages = append(doc.Pages, PageDim{Index: page, Width: 1, Height: 1})
		pageText := extractPageText(pctx, pageNr)
		if pageText == "" {
			continue
		}
		lines := strings.Split(pageText, "\n")
		nLines := len(lines)
		for li, ln := range lines {
			words := strings.Fields(ln)
			if len(words) == 0 {
				continue
			}
			y0 := float64(li) / float64(nLines)
			y1 := float64(li+1) / float64(nLines)
			for wi, w := range words {
				x0 := float64(wi) / float64(len(words))
				x1 := float64(wi+1) / float64(len(words))
				doc.Blocks = append(doc.Blocks, Block{
					ID:         fmt.Sprintf("b%d_%d", page, len(doc.Blocks)),
					Text:       w,
					BBox:       BBox{X0: x0, Y0: y0, X1: x1, Y1: y1, Page: page},
					Confidence: 0.5, // no OCR confidence to report
					Type:       BlockText,
				})
			}
		}
		if doc.RawText != "" {
			doc.RawText += "\n\f\n"
		}
		doc.RawText += pageText
	}
	if len(doc.Blocks) == 0 {
		return nil, common.NewAppError(common.CodeIngestion, "pdf has no embedded text and OCR is unavailable", nil)
	}
	b.logger.Info("ir.build.embedded_fallback", "filename", filename, "pages", pctx.PageCount, "blocks", len(doc.Blocks))
	return doc, nil
}

// extractPageText extracts text from a single PDF page via pdfcpu content stream.
func extractPageText(pctx *model.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(pctx, pageNr)
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return ""
	}
	return textFromContentStream(data)
}

// pdfStringRe matches PDF string literals in parentheses: (text here)
var pdfStringRe = regexp.MustCompile(`\(([^)]*)\)`)

// textFromContentStream parses PDF content stream operators for text.
func textFromContentStream(data []byte) string {
	var sb strings.Builder

	lines := bytes.Split(data, []byte{'\n'})
	for _, line := range lines {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		// Tj operator: (text) Tj
		// TJ operator: [(text) -100 (more text)] TJ
		if bytes.HasSuffix(line, []byte("Tj")) || bytes.HasSuffix(line, []byte("TJ")) {
			for _, m := range pdfStringRe.FindAllSubmatch(line, -1) {
				if text := decodePDFString(m[1]); text != "" {
					sb.WriteString(text)
				}
			}
		}

		// ' operator (move to next line and show text): (text) '
		if bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("(")) {
			for _, m := range pdfStringRe.FindAllSubmatch(line, -1) {
				if text := decodePDFString(m[1]); text != "" {
					sb.WriteByte('\n')
					sb.WriteString(text)
				}
			}
		}

		// Td/TD operator (text positioning)
		if bytes.HasSuffix(line, []byte("Td")) || bytes.HasSuffix(line, []byte("TD")) {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
		}

		// T* operator (move to start of next line)
		if bytes.Equal(line, []byte("T*")) {
			sb.WriteByte('\n')
		}
	}

	return cleanStreamText(sb.String())
}

// decodePDFString handles basic PDF escape sequences.
func decodePDFString(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' && i+1 < len(raw) {
			i++
			switch raw[i] {
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			case '\\':
				sb.WriteByte('\\')
			case '(':
				sb.WriteByte('(')
			case ')':
				sb.WriteByte(')')
			default:
				// octal escape (e.g. \040 for space)
				if raw[i] >= '0' && raw[i] <= '7' {
					val := int(raw[i] - '0')
					if i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7' {
						i++
						val = val*8 + int(raw[i]-'0')
						if i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7' {
							i++
							val = val*8 + int(raw[i]-'0')
						}
					}
					sb.WriteByte(byte(val))
				} else {
					sb.WriteByte(raw[i])
				}
			}
		} else {
			sb.WriteByte(raw[i])
		}
	}
	return sb.String()
}

// cleanStreamText collapses runs of spaces but keeps line structure.
func cleanStreamText(text string) string {
	var sb strings.Builder
	prevSpace := false
	for _, r := range text {
		switch {
		case r == '\n':
			sb.WriteByte('\n')
			prevSpace = true
		case unicode.IsSpace(r):
			if !prevSpace && sb.Len() > 0 {
				sb.WriteByte(' ')
				prevSpace = true
			}
		case unicode.IsPrint(r):
			sb.WriteRune(r)
			prevSpace = false
		}
	}
	return strings.TrimSpace(sb.String())
}
