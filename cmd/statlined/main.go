package main

import (
	"context"
	"flag"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/statline/statline/gen/proto/statline/v1"
	"github.com/statline/statline/internal/common"
	"github.com/statline/statline/internal/execute"
	"github.com/statline/statline/internal/export"
	"github.com/statline/statline/internal/ir"
	"github.com/statline/statline/internal/llm/openai"
	"github.com/statline/statline/internal/pipeline"
	repo "github.com/statline/statline/internal/repository"
	svc "github.com/statline/statline/internal/server"
	"github.com/statline/statline/internal/synthesis"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file overlaying env vars")
	flag.Parse()

	zl, _ := zap.NewProduction()
	defer func() { _ = zl.Sync() }()
	zlog := zl.Sugar()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	_ = godotenv.Load()

	cfg := common.LoadConfig()
	if *configPath != "" {
		if err := cfg.ApplyFile(*configPath); err != nil {
			zlog.Fatalf("config file: %v", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		zlog.Fatalf("config: %v", err)
	}
	if err := cfg.ValidateLLM(); err != nil {
		// learning is unavailable without a key; extraction still works
		zlog.Warnf("llm config: %v (LearnProcessor will fail)", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		zlog.Fatalf("open database: %v", err)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		zlog.Fatalf("database health: %v", err)
	}
	zlog.Infow("database health OK")

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

	procsRepo := repo.NewProcessorRepository(entc, logger)
	examplesRepo := repo.NewExampleRepository(entc, logger)
	extractionsRepo := repo.NewExtractionRepository(entc, logger)

	synth := synthesis.NewSynthesizer(llmClient, logger)
	learnPipe := pipeline.NewLearnPipeline(builder, synth, procsRepo, examplesRepo, logger)
	extractPipe := pipeline.NewExtractPipeline(builder, execute.NewExecutor(logger), procsRepo, extractionsRepo, logger)
	exportSvc := export.NewService(extractionsRepo, procsRepo, logger)

	grpcServer := grpc.NewServer()
	service := svc.NewStatlineService(learnPipe, extractPipe, procsRepo, exportSvc, logger)
	v1.RegisterStatlineServiceServer(grpcServer, service)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		zlog.Fatalf("listen %s: %v", cfg.Server.GRPCAddr, err)
	}
	zlog.Infow("statlined listening", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			zlog.Fatalf("grpc serve: %v", err)
		}
	}()

	<-ctx.Done()
	zlog.Infow("shutting down")
	grpcServer.GracefulStop()
}
