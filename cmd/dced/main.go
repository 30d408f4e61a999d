package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	dcev1 "github.com/bidkiller/dce-analyzer/gen/proto/dce/v1"
	"github.com/bidkiller/dce-analyzer/internal/analysis"
	"github.com/bidkiller/dce-analyzer/internal/chunk"
	"github.com/bidkiller/dce-analyzer/internal/common"
	"github.com/bidkiller/dce-analyzer/internal/export"
	"github.com/bidkiller/dce-analyzer/internal/extract"
	"github.com/bidkiller/dce-analyzer/internal/llm/anthropicapi"
	"github.com/bidkiller/dce-analyzer/internal/quota"
	repo "github.com/bidkiller/dce-analyzer/internal/repository"
	"github.com/bidkiller/dce-analyzer/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
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
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	accountsRepo := repo.NewAccountRepository(entc, logger)
	documentsRepo := repo.NewDocumentRepository(entc, logger)
	analysesRepo := repo.NewAnalysisRepository(entc, logger)
	auditRepo := repo.NewAuditRepository(entc, logger)
	quotaStore := repo.NewQuotaStore(entc, logger)

	gate := quota.NewGate(quotaStore, accountsRepo, logger)
	extractor := extract.NewExtractor(cfg.Upload.MaxSizeBytes, logger)
	chunker := chunk.NewChunker(cfg.Pipeline.MaxChunkTokens)

	analyzer := anthropicapi.NewClient(anthropicapi.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		MaxTokens:   cfg.LLM.MaxTokens,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	pipeline := analysis.NewPipeline(
		cfg.Pipeline,
		extractor,
		chunker,
		gate,
		analyzer,
		documentsRepo,
		analysesRepo,
		auditRepo,
		logger,
	)

	janitor := analysis.NewJanitor(analysesRepo, cfg.Pipeline.StaleAfter, cfg.Pipeline.JanitorInterval, logger)
	go janitor.Run(ctx)

	exportSvc := export.NewService(analysesRepo, logger)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	dcev1.RegisterAnalysisServiceServer(grpcServer, server.NewAnalysisServer(pipeline, analysesRepo, accountsRepo, logger))
	dcev1.RegisterExportServiceServer(grpcServer, server.NewExportServer(exportSvc, logger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("grpc serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	pipeline.Wait()
	logger.Info("stopped")
}
