package ir

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/statline/statline/constants"
	"github.com/statline/statline/internal/common"
)

type Config struct {
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	DPI           int    // rasterization DPI, default 300
	MaxPages      int    // 0 = no limit

	TessdataDir string
	PSM         int // e.g., 6 is good for uniform block of text
	OEM         int // 1 = LSTM; leave 0 to use default

	WorkDir string // parent for scratch dirs; empty = system temp
}

// Builder turns raw document bytes into a Document IR. It shells out to
// pdftoppm and tesseract through a Runner and falls back to embedded PDF
// text when the OCR toolchain is unavailable.
type Builder struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewBuilder(cfg Config, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &Builder{cfg: cfg, runner: execRunner{}, logger: logger}
}

var reNumeric = regexp.MustCompile(`^-?\d+([.,]\d+)?%?$`)

// Build constructs the IR for one document. The format is chosen by file
// extension. Empty input, unsupported formats, and documents yielding no
// text at all are ingestion errors.
func (b *Builder) Build(ctx context.Context, data []byte, filename string) (*Document, error) {
	start := time.Now()
	if len(data) == 0 {
		return nil, common.NewAppError(common.CodeIngestion, "empty document", common.ErrInvalidInput)
	}
	ext := constants.NormalizeExt(filepath.Ext(filename))
	format := constants.FormatForExt(ext)
	b.logger.Debug("ir.build.start", "filename", filename, "ext", ext, "format", format, "bytes", len(data))

	var (
		doc *Document
		err error
	)
	switch format {
	case "PDF":
		doc, err = b.buildPDF(ctx, data, filename)
	case "IMAGE":
		doc, err = b.buildImage(ctx, data, filename, ext)
	default:
		return nil, common.NewAppError(common.CodeIngestion,
			fmt.Sprintf("unsupported extension %q", ext), common.ErrInvalidInput)
	}
	if err != nil {
		return nil, err
	}

	classifyBlocks(doc.Blocks)
	doc.Tables = detectTables(doc)
	doc.LayoutHash = layoutSignature(doc.Blocks)

	b.logger.Info("ir.build.done",
		"filename", filename,
		"method", doc.Method,
		"pages", doc.PageCount,
		"blocks", len(doc.Blocks),
		"tables", len(doc.Tables),
		"layout_hash", doc.LayoutHash,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return doc, nil
}

func (b *Builder) buildPDF(ctx context.Context, data []byte, filename string) (*Document, error) {
	tmpDir, err := os.MkdirTemp(b.cfg.WorkDir, "sl-ing-*")
	if err != nil {
		return nil, common.NewAppError(common.CodeIngestion, "creating temp dir", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	in := filepath.Join(tmpDir, "in.pdf")
	if err := os.WriteFile(in, data, 0o600); err != nil {
		return nil, common.NewAppError(common.CodeIngestion, "writing temp pdf", err)
	}

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := b.runner.Run(ctx, b.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", b.cfg.DPI), "-png", in, prefix)
	if err != nil {
		b.logger.Warn("ir.build.render_failed", "filename", filename, "stderr", truncate(string(errb), 1<<10), "error", err)
		return b.buildEmbedded(data, filename)
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if b.cfg.MaxPages > 0 && len(matches) > b.cfg.MaxPages {
		matches = matches[:b.cfg.MaxPages]
	}
	if len(matches) == 0 {
		b.logger.Warn("ir.build.no_pages", "filename", filename)
		return b.buildEmbedded(data, filename)
	}

	doc := &Document{
		Filename:  filename,
		PageCount: len(matches),
		Method:    "pdf-ocr",
		DPI:       b.cfg.DPI,
	}
	var ocrFailures int
	for page, img := range matches {
		if err := b.ocrPage(ctx, doc, img, page); err != nil {
			ocrFailures++
			b.logger.Warn("ir.build.page_failed", "filename", filename, "page", page, "error", err)
		}
	}
	if ocrFailures == len(matches) {
		// toolchain present but useless; embedded text is the last resort
		return b.buildEmbedded(data, filename)
	}
	if len(doc.Blocks) == 0 {
		return nil, common.NewAppError(common.CodeIngestion, "document produced no text", nil)
	}
	return doc, nil
}

func (b *Builder) buildImage(ctx context.Context, data []byte, filename, ext string) (*Document, error) {
	tmpDir, err := os.MkdirTemp(b.cfg.WorkDir, "sl-ing-*")
	if err != nil {
		return nil, common.NewAppError(common.CodeIngestion, "creating temp dir", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	in := filepath.Join(tmpDir, "in."+ext)
	if err := os.WriteFile(in, data, 0o600); err != nil {
		return nil, common.NewAppError(common.CodeIngestion, "writing temp image", err)
	}

	doc := &Document{
		Filename:  filename,
		PageCount: 1,
		Method:    "image-ocr",
		DPI:       b.cfg.DPI,
	}
	if err := b.ocrPage(ctx, doc, in, 0); err != nil {
		return nil, common.NewAppError(common.CodeIngestion, "image OCR failed", err)
	}
	if len(doc.Blocks) == 0 {
		return nil, common.NewAppError(common.CodeIngestion, "image produced no text", nil)
	}
	return doc, nil
}

// ocrPage runs tesseract in TSV mode on one page image and appends
// normalized word blocks to the document.
func (b *Builder) ocrPage(ctx context.Context, doc *Document, imgPath string, page int) error {
	args := []string{imgPath, "stdout", "-l", b.cfg.TesseractLang}
	if b.cfg.PSM > 0 {
		args = append(args, "--psm", fmt.Sprintf("%d", b.cfg.PSM))
	}
	if b.cfg.OEM > 0 {
		args = append(args, "--oem", fmt.Sprintf("%d", b.cfg.OEM))
	}
	if b.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", b.cfg.TessdataDir)
	}
	args = append(args, "tsv")

	out, errb, err := b.runner.Run(ctx, b.cfg.Tesseract, args...)
	if err != nil {
		return fmt.Errorf("tesseract TSV: %w: %s", err, truncate(string(errb), 1<<10))
	}

	words, _ := parseTesseractTSV(out)
	pw, ph := imageDims(imgPath)
	if pw <= 0 || ph <= 0 {
		// no decodable dims; use the word extents so normalization still holds
		for _, w := range words {
			if w.Left+w.Width > pw {
				pw = w.Left + w.Width
			}
			if w.Top+w.Height > ph {
				ph = w.Top + w.Height
			}
		}
	}
	if pw <= 0 || ph <= 0 {
		return fmt.Errorf("page %d has no measurable content", page)
	}
	doc.Pages = append(doc.Pages, PageDim{Index: page, Width: pw, Height: ph})

	var line strings.Builder
	lastLine := -1
	for _, w := range words {
		bbox := BBox{
			X0:   clamp01(w.Left / pw),
			Y0:   clamp01(w.Top / ph),
			X1:   clamp01((w.Left + w.Width) / pw),
			Y1:   clamp01((w.Top + w.Height) / ph),
			Page: page,
		}
		doc.Blocks = append(doc.Blocks, Block{
			ID:         fmt.Sprintf("b%d_%d", page, len(doc.Blocks)),
			Text:       w.Text,
			BBox:       bbox,
			Confidence: w.Conf / 100.0,
			// pixel height back to points at the render DPI
			FontSize: w.Height * 72.0 / float64(b.cfg.DPI),
			Type:     BlockText,
		})

		key := w.BlockNum*100000 + w.ParNum*1000 + w.LineNum
		if lastLine >= 0 && key != lastLine {
			line.WriteString("\n")
		} else if lastLine >= 0 {
			line.WriteString(" ")
		}
		line.WriteString(w.Text)
		lastLine = key
	}
	if doc.RawText != "" {
		doc.RawText += "\n\f\n" // keep a clear page break marker
	}
	doc.RawText += line.String()
	return nil
}

// imageDims returns pixel dimensions for PNG/JPEG files, or zeros.
func imageDims(path string) (w, h float64) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0
	}
	defer func() { _ = f.Close() }()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0
	}
	return float64(cfg.Width), float64(cfg.Height)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// classifyBlocks assigns number/header types. A header is either noticeably
// larger than the page's median font size or sits in the top band; numeric
// text is never a header.
func classifyBlocks(blocks []Block) {
	var sizes []float64
	for _, b := range blocks {
		if b.FontSize > 0 {
			sizes = append(sizes, b.FontSize)
		}
	}
	median := 0.0
	if len(sizes) > 0 {
		sort.Float64s(sizes)
		median = sizes[len(sizes)/2]
	}
	for i := range blocks {
		switch {
		case reNumeric.MatchString(blocks[i].Text):
			blocks[i].Type = BlockNumber
		case (median > 0 && blocks[i].FontSize > 1.3*median) || blocks[i].BBox.Y0 < 0.2:
			blocks[i].Type = BlockHeader
		}
	}
}
