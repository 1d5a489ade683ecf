package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/statline/statline/gen/ent"
	"github.com/statline/statline/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	extractions repository.ExtractionRepository
	processors  repository.ProcessorRepository
	logger      *slog.Logger
}

func NewService(extractions repository.ExtractionRepository, processors repository.ProcessorRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{extractions: extractions, processors: processors, logger: logger}
}

// ExportExtractionsXLSX returns an XLSX workbook (as bytes) of extraction
// audit records. With a processor ID it exports that processor's runs; with
// a zero ID it exports everything started at or after "since" (a zero time
// exports everything).
func (s *Service) ExportExtractionsXLSX(ctx context.Context, processorID uuid.UUID, since time.Time) ([]byte, error) {
	start := time.Now()

	var (
		recs []*ent.Extraction
		err  error
	)
	if processorID != uuid.Nil {
		recs, err = s.extractions.ListByProcessor(ctx, processorID, 0)
	} else {
		recs, err = s.extractions.ListSince(ctx, since)
	}
	if err != nil {
		return nil, fmt.Errorf("query extractions: %w", err)
	}

	// one name lookup per distinct processor
	names := map[uuid.UUID]string{}
	procName := func(id uuid.UUID) string {
		if n, ok := names[id]; ok {
			return n
		}
		n := ""
		if p, err := s.processors.GetByID(ctx, id); err == nil {
			n = fmt.Sprintf("%s v%d", p.Name, p.Version)
		}
		names[id] = n
		return n
	}

	f := excelize.NewFile()
	const sheet = "Extractions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Started",
		"Processor",
		"Filename",
		"Status",
		"Confidence",
		"Band",
		"Success",
		"Needs Review",
		"Duration (ms)",
		"Issues",
		"Error",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.StartedAt.UTC().Format("2006-01-02 15:04:05"))
		write(2, procName(r.ProcessorID))
		write(3, r.Filename)
		write(4, r.Status)
		if r.Confidence != nil {
			write(5, fmt.Sprintf("%.1f", *r.Confidence))
		}
		if r.Band != nil {
			write(6, *r.Band)
		}
		write(7, r.Success)
		write(8, r.NeedsReview)
		if r.DurationMs > 0 {
			write(9, r.DurationMs)
		}
		if len(r.Issues) > 0 {
			write(10, truncate(string(r.Issues), 140))
		}
		if r.ErrorMessage != nil {
			write(11, truncate(*r.ErrorMessage, 140))
		}

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 20) // started
	_ = f.SetColWidth(sheet, "B", "B", 26) // processor
	_ = f.SetColWidth(sheet, "C", "C", 36) // filename
	_ = f.SetColWidth(sheet, "D", "F", 12) // status/confidence/band
	_ = f.SetColWidth(sheet, "J", "K", 60) // issues/error

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"processor_id", processorID.String(),
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
