package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/statline/statline/internal/common"
	"github.com/statline/statline/internal/ir"
	"github.com/statline/statline/internal/llm/openai"
	"github.com/statline/statline/internal/pipeline"
	repo "github.com/statline/statline/internal/repository"
	"github.com/statline/statline/internal/synthesis"
)

// learn builds a processor from one example document and its desired output.
//
//	learn -file scans/tribune-0114.pdf -output desired.json -type basketball_box_score -name tribune_box_score
func main() {
	file := flag.String("file", "", "example document (pdf or image)")
	output := flag.String("output", "", "desired output JSON file")
	docType := flag.String("type", "generic", "document type")
	name := flag.String("name", "", "processor name")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if *file == "" || *output == "" || *name == "" {
		logger.Error("usage", "cmd", "learn -file <doc> -output <desired.json> -type <doc-type> -name <processor-name>")
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("config", "error", err)
		os.Exit(1)
	}
	if err := cfg.ValidateLLM(); err != nil {
		logger.Error("config", "error", err)
		os.Exit(1)
	}

	docBytes, err := os.ReadFile(*file)
	if err != nil {
		logger.Error("read document", "file", *file, "error", err)
		os.Exit(1)
	}
	desired, err := os.ReadFile(*output)
	if err != nil {
		logger.Error("read desired output", "file", *output, "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
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
	llmClient := openai.NewClient(openai.Config{
		APIKey:          cfg.LLM.APIKey,
		BaseURL:         cfg.LLM.BaseURL,
		Model:           cfg.LLM.Model,
		Temperature:     cfg.LLM.Temperature,
		Timeout:         cfg.LLM.Timeout,
		LenientSanitize: true,
	}, logger)

	learn := pipeline.NewLearnPipeline(
		builder,
		synthesis.NewSynthesizer(llmClient, logger),
		repo.NewProcessorRepository(entc, logger),
		repo.NewExampleRepository(entc, logger),
		logger,
	)

	start := time.Now()
	res, err := learn.Run(ctx, pipeline.LearnRequest{
		Filename:      filepath.Base(*file),
		Document:      docBytes,
		DesiredOutput: desired,
		DocumentType:  *docType,
		ProcessorName: *name,
	})
	if err != nil {
		logger.Error("learn failed", "error", err, "duration_ms", time.Since(start).Milliseconds())
		os.Exit(1)
	}

	logger.Info("learn OK",
		"processor_id", res.Processor.ID,
		"name", res.Processor.Name,
		"version", res.Processor.Version,
		"anchors", len(res.Processor.Anchors),
		"regions", len(res.Processor.Regions),
		"ops", len(res.Processor.ExtractionOps),
		"similarity", res.Report.Similarity,
		"low_similarity", res.Report.LowSimilarity,
		"confidence", res.Report.Confidence,
		"band", res.Report.Band,
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
