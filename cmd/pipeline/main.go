package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"hn_harvester/internal/chunker"
	"hn_harvester/internal/config"
	"hn_harvester/internal/embedder"
	"hn_harvester/internal/fetcher"
	"hn_harvester/internal/hn"
	"hn_harvester/internal/publisher"
	"hn_harvester/internal/scheduler"
	"hn_harvester/internal/scraper"
	"hn_harvester/internal/service"
	"hn_harvester/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	mode := flag.String("mode", "all", "stage to run: fetch, scrape, embed or all")
	interval := flag.Duration("interval", 0, "run continuously at this interval (0 = run once)")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database")

	var pub service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	storyStore := postgres.NewStoryStore(db)
	commentStore := postgres.NewCommentStore(db)
	jobStore := postgres.NewScrapeJobStore(db)
	embeddingStore := postgres.NewEmbeddingStore(db)
	taskStore := postgres.NewTaskRunStore(db)
	txManager := postgres.NewTransactionManager(db)

	client := hn.New(hn.Config{
		BaseURL:        cfg.API.BaseURL,
		Timeout:        cfg.API.Timeout,
		MaxAttempts:    cfg.API.Retry.MaxAttempts,
		InitialBackoff: cfg.API.Retry.InitialBackoff,
		MaxBackoff:     cfg.API.Retry.MaxBackoff,
	}, logger)

	threadFetcher := fetcher.New(client, storyStore, cfg.Fetch.MaxDepth, logger)

	fetchService := service.NewFetchService(
		threadFetcher,
		storyStore,
		commentStore,
		jobStore,
		taskStore,
		txManager,
		pub,
		logger,
	)

	articleScraper := scraper.New(scraper.Config{
		UserAgent:      cfg.Scraper.UserAgent,
		Timeout:        cfg.Scraper.Timeout,
		MaxAttempts:    cfg.Scraper.Retry.MaxAttempts,
		InitialBackoff: cfg.Scraper.Retry.InitialBackoff,
		MaxBackoff:     cfg.Scraper.Retry.MaxBackoff,
	}, logger)

	scrapeService := service.NewScrapeService(
		jobStore,
		articleScraper,
		taskStore,
		service.ScrapeConfig{
			RequestDelay: cfg.Scraper.RequestDelay,
			JobLimit:     cfg.Scraper.JobLimit,
		},
		logger,
	)

	generator := embedder.New(embedder.Config{
		Host:      cfg.Embedding.Host,
		Model:     cfg.Embedding.Model,
		Dimension: cfg.Embedding.Dimension,
	}, logger)

	embedService := service.NewEmbedService(
		jobStore,
		embeddingStore,
		chunker.New(chunker.DefaultConfig()),
		generator,
		taskStore,
		txManager,
		service.EmbedConfig{JobLimit: cfg.Embedding.JobLimit},
		logger,
	)

	sel := fetcher.Selection{
		Window: time.Duration(cfg.Fetch.WindowHours) * time.Hour,
		Limit:  cfg.Fetch.Limit,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if err := run(ctx, *mode, *interval, fetchService, scrapeService, embedService, sel, logger); err != nil {
		logger.Error("pipeline error", "error", err)
		os.Exit(1)
	}
}

func run(
	ctx context.Context,
	mode string,
	interval time.Duration,
	fetchService *service.FetchService,
	scrapeService *service.ScrapeService,
	embedService *service.EmbedService,
	sel fetcher.Selection,
	logger *slog.Logger,
) error {
	switch mode {
	case "fetch":
		_, err := fetchService.Fetch(ctx, sel)
		return err
	case "scrape":
		_, err := scrapeService.Scrape(ctx, 0)
		return err
	case "embed":
		_, err := embedService.Embed(ctx, 0)
		return err
	case "all":
		pipeline := service.NewPipeline(fetchService, scrapeService, embedService, sel, logger)
		if interval <= 0 {
			return pipeline.RunCycle(ctx)
		}
		sched := scheduler.NewScheduler(pipeline, interval, 30*time.Minute, logger)
		if err := sched.Start(ctx); err != nil && err != context.Canceled {
			return err
		}
		return nil
	default:
		logger.Error("unknown mode", "mode", mode)
		os.Exit(2)
		return nil
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
