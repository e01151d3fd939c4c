// Command checkmate runs the CheckMate fact-checking pipeline: the HTTP
// API (C6 admission half, C7, C10), the background worker pool (C6
// pipeline half), and the consumer token-bucket refill loop, all sharing
// one ent/Postgres client. Grounded on the teacher's cmd/tarsy/main.go
// wiring shape: load config, open the database, build every service,
// start background loops, serve, wait for a shutdown signal, drain.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/checkmate-dev/checkmate/pkg/admission"
	"github.com/checkmate-dev/checkmate/pkg/agentloop"
	"github.com/checkmate-dev/checkmate/pkg/api"
	"github.com/checkmate-dev/checkmate/pkg/blobcache"
	"github.com/checkmate-dev/checkmate/pkg/checkstore"
	"github.com/checkmate-dev/checkmate/pkg/config"
	"github.com/checkmate-dev/checkmate/pkg/database"
	"github.com/checkmate-dev/checkmate/pkg/external"
	"github.com/checkmate-dev/checkmate/pkg/ids"
	"github.com/checkmate-dev/checkmate/pkg/llmclient"
	"github.com/checkmate-dev/checkmate/pkg/orchestrator"
	"github.com/checkmate-dev/checkmate/pkg/reconciler"
	"github.com/checkmate-dev/checkmate/pkg/similarity"
	"github.com/checkmate-dev/checkmate/pkg/slack"
	"github.com/checkmate-dev/checkmate/pkg/submission"
	"github.com/checkmate-dev/checkmate/pkg/tools"
	"github.com/checkmate-dev/checkmate/pkg/version"
)

func main() {
	if err := run(); err != nil {
		slog.Error("checkmate exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.Default().With("app", version.AppName)

	configDir := os.Getenv("CHECKMATE_CONFIG_DIR")
	if configDir == "" {
		configDir = "./config"
	}
	cfg, err := config.Initialize(ctx, configDir)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	dbCfg, err := database.LoadConfigFromEnv()
	if err != nil {
		return fmt.Errorf("load database configuration: %w", err)
	}
	dbClient, err := database.NewClient(ctx, dbCfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer dbClient.Close()

	llmProvider, err := cfg.GetLLMProvider("")
	if err != nil {
		return fmt.Errorf("resolve default llm provider: %w", err)
	}
	llm, err := llmclient.New(llmProvider)
	if err != nil {
		return fmt.Errorf("build llm client: %w", err)
	}

	blobs, err := blobcache.New(cfg.External.BlobCacheDir)
	if err != nil {
		return fmt.Errorf("open blob cache: %w", err)
	}

	embedder := external.NewEmbedderClient(cfg.External.EmbedderURL)
	imageHash := external.NewImageHashClient(cfg.External.ImageHashURL)
	screenshot := external.NewScreenshotClient(cfg.External.ScreenshotURL)
	search := external.NewSearchClient(cfg.External.SearchURL)
	urlScan := external.NewURLScanClient(cfg.External.URLScanURL)
	voting := external.NewVotingClient(cfg.External.VotingWebhookURL)
	outboundHC := &http.Client{Timeout: time.Duration(cfg.External.HTTPTimeoutSeconds) * time.Second}
	embedder.HC, imageHash.HC, screenshot.HC = outboundHC, outboundHC, outboundHC
	search.HC, urlScan.HC, voting.HC = outboundHC, outboundHC, outboundHC

	store := checkstore.New(dbClient.Client)
	submissions := submission.New(dbClient.Client)
	gate := admission.New(dbClient.Client, cfg.Admission)
	slackSvc := slack.NewService(cfg.Slack, store)
	recon := reconciler.New(store, slackSvc)

	engine := similarity.New(cfg.Similarity, store, embedder, imageHash, llm)

	registry := tools.NewRegistry(tools.Dependencies{
		Search:     search,
		Screenshot: screenshot,
		URLScan:    urlScan,
		LLM:        llm,
	})
	loop := agentloop.New(llm, registry)

	background := orchestrator.NewBackground(logger, 20)

	orch := orchestrator.New(orchestrator.Dependencies{
		Store:       store,
		Submissions: submissions,
		Similarity:  engine,
		LLM:         llm,
		Loop:        loop,
		Registry:    registry,
		Embedder:    embedder,
		ImageHash:   imageHash,
		Search:      search,
		Screenshot:  screenshot,
		URLScan:     urlScan,
		Blobs:       blobs,
		Voting:      voting,
		Slack:       slackSvc,
		Cfg:         cfg,
		Background:  background,
		Logger:      logger,
	})

	podID := os.Getenv("HOSTNAME")
	if podID == "" {
		podID = ids.New()
	}
	pool := orchestrator.NewPool(podID, orch, store, cfg.Orchestrator, logger)
	pool.Start(ctx)

	refillCtx, stopRefill := context.WithCancel(ctx)
	go gate.RunRefillLoop(refillCtx, time.Minute, func(err error) {
		logger.Error("consumer token refill tick failed", "error", err)
	})

	server := api.NewServer(api.Dependencies{
		Orchestrator: orch,
		Admission:    gate,
		Reconciler:   recon,
		Store:        store,
		Embedder:     embedder,
		LLM:          llm,
		Slack:        slackSvc,
		DB:           dbClient.DB(),
		Server:       cfg.Server,
	})

	httpServer := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: server.Handler(),
	}

	serveErrCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "address", cfg.Server.Address, "version", version.Full())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
			return
		}
		serveErrCh <- nil
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serveErrCh:
		if err != nil {
			stopRefill()
			pool.Stop()
			background.Stop(30 * time.Second)
			return fmt.Errorf("http server failed: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http server shutdown error", "error", err)
	}

	stopRefill()
	pool.Stop()
	background.Stop(30 * time.Second)

	return nil
}
