package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/statline/statline/constants"
	"github.com/statline/statline/internal/async"
	"github.com/statline/statline/internal/common"
	"github.com/statline/statline/internal/execute"
	"github.com/statline/statline/internal/ir"
	"github.com/statline/statline/internal/pipeline"
	repo "github.com/statline/statline/internal/repository"
)

// run applies a stored processor to one document, or to every supported
// document in a directory.
//
//	run -file scans/tribune-0121.pdf -name tribune_box_score
//	run -dir scans/ -processor 6b9f... -workers 4
func main() {
	file := flag.String("file", "", "document to extract")
	dir := flag.String("dir", "", "directory of documents to extract")
	procID := flag.String("processor", "", "processor id (UUID)")
	procName := flag.String("name", "", "processor name (latest version)")
	strict := flag.Bool("strict", false, "fail on missing required anchors")
	workers := flag.Int("workers", 4, "concurrent extractions in -dir mode")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if (*file == "") == (*dir == "") {
		logger.Error("usage", "cmd", "run (-file <doc> | -dir <dir>) [-processor <uuid> | -name <name>] [-strict]")
		os.Exit(2)
	}

	var id uuid.UUID
	if *procID != "" {
		var err error
		id, err = uuid.Parse(*procID)
		if err != nil {
			logger.Error("invalid processor id (must be UUID)", "arg", *procID, "error", err)
			os.Exit(2)
		}
	}

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        10,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	builder := ir.NewBuilder(ir.Config{
		Pdftoppm:      cfg.Ingest.Pdftoppm,
		Tesseract:     cfg.Ingest.Tesseract,
		TesseractLang: cfg.Ingest.Language,
		DPI:           cfg.Ingest.DPI,
		MaxPages:      cfg.Ingest.MaxPages,
		TessdataDir:   cfg.Ingest.TessdataDir,
		WorkDir:       cfg.Ingest.WorkDir,
	}, logger)
	extract := pipeline.NewExtractPipeline(
		builder,
		execute.NewExecutor(logger),
		repo.NewProcessorRepository(entc, logger),
		repo.NewExtractionRepository(entc, logger),
		logger,
	)

	runOne := func(ctx context.Context, path string) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		res, err := extract.Run(ctx, pipeline.ExtractRequest{
			Filename:      filepath.Base(path),
			Document:      data,
			ProcessorID:   id,
			ProcessorName: *procName,
			Strict:        *strict,
		})
		if err != nil {
			return err
		}
		output, _ := json.Marshal(res.Result.Data)
		logger.Info("extraction OK",
			"file", path,
			"extraction_id", res.ExtractionID,
			"processor", res.Processor.Name,
			"confidence", res.Result.Confidence,
			"band", res.Result.Band,
			"success", res.Result.Success,
			"issues", len(res.Result.Issues),
		)
		fmt.Println(string(output))
		return nil
	}

	if *file != "" {
		if err := runOne(ctx, *file); err != nil {
			logger.Error("extraction failed", "file", *file, "error", err)
			os.Exit(1)
		}
		return
	}

	entries, err := os.ReadDir(*dir)
	if err != nil {
		logger.Error("read dir", "dir", *dir, "error", err)
		os.Exit(1)
	}
	pool2 := async.NewPool(logger,
		async.WithWorkers(*workers),
		async.WithQueueSize(2*(*workers)),
		async.WithTaskTimeout(10*time.Minute),
	)
	var queued int
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if constants.FormatForExt(filepath.Ext(e.Name())) == "" {
			continue
		}
		path := filepath.Join(*dir, e.Name())
		if err := pool2.Submit(ctx, path, func(taskCtx context.Context) {
			if err := runOne(taskCtx, path); err != nil {
				logger.Error("extraction failed", "file", path, "error", err)
			}
		}); err != nil {
			logger.Error("submit", "file", path, "error", err)
			break
		}
		queued++
	}
	pool2.Shutdown(ctx)
	logger.Info("batch done", "queued", queued)
}
