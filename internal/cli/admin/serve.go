package admin

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/docfaq/docfaq/internal/api/handlers"
	"github.com/docfaq/docfaq/internal/config"
	"github.com/docfaq/docfaq/internal/extract"
	"github.com/docfaq/docfaq/internal/jobs"
	"github.com/docfaq/docfaq/internal/server"
	"github.com/docfaq/docfaq/internal/service"
	"github.com/docfaq/docfaq/internal/source"
	"github.com/docfaq/docfaq/internal/telemetry"
	"github.com/spf13/cobra"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long:  "Start the docfaq API server on the specified port",
		RunE:  runServe,
	}

	cmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	cmd.Flags().String("doc", "", "Path to the knowledge document (overrides DOCFAQ_DOC_PATH)")
	cmd.Flags().Bool("no-watch", false, "Disable polling the document for changes")

	return cmd
}

// documentSource is what the engine needs plus change detection for
// the watcher. Both the file and S3 sources satisfy it.
type documentSource interface {
	service.DocumentSource
	jobs.FingerprintSource
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize Sentry with tracing if SENTRY_DSN is set
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		environment := os.Getenv("ENVIRONMENT")
		if environment == "" {
			environment = "development"
		}

		// Default to 10% sampling in production, 100% in development
		sampleRate := 0.1
		if environment == "development" {
			sampleRate = 1.0
		}

		shutdownTelemetry, err := telemetry.Init(telemetry.Config{
			DSN:              dsn,
			Environment:      environment,
			TracesSampleRate: sampleRate,
			Debug:            cfg.Debug,
		})
		if err != nil {
			log.Printf("telemetry init failed (continuing without tracing): %v", err)
		} else {
			defer shutdownTelemetry()
		}
	}

	portFlag, _ := cmd.Flags().GetString("port")
	if portFlag != "" && portFlag != "8080" {
		cfg.Port = portFlag
	}
	if docFlag, _ := cmd.Flags().GetString("doc"); docFlag != "" {
		cfg.DocPath = docFlag
	}

	var docSource documentSource
	switch {
	case cfg.HasS3():
		s3Source, err := source.NewS3Source(ctx, source.S3Config{
			Endpoint:        cfg.S3Endpoint,
			Region:          cfg.S3Region,
			AccessKeyID:     cfg.S3AccessKey,
			SecretAccessKey: cfg.S3SecretKey,
			Bucket:          cfg.S3Bucket,
			Key:             cfg.S3ObjectKey,
			UsePathStyle:    true,
		})
		if err != nil {
			return fmt.Errorf("failed to create S3 source: %w", err)
		}
		docSource = s3Source
		log.Printf("document source: s3://%s/%s", cfg.S3Bucket, cfg.S3ObjectKey)
	case cfg.HasLocalDoc():
		docSource = source.NewFileSource(cfg.DocPath)
		log.Printf("document source: %s", cfg.DocPath)
	default:
		log.Println("no document configured; starting with an empty knowledge base")
	}

	engineCfg := service.DefaultEngineConfig()
	engineCfg.Match.ScoreThreshold = cfg.ScoreThreshold
	engineCfg.Patterns.MaxKeywords = cfg.MaxKeywords
	engineCfg.Segment.MaxFallbackEntries = cfg.MaxFallbackEntries
	engineCfg.FallbackMessage = cfg.FallbackMessage

	var engine *service.Engine
	if docSource != nil {
		engine = service.NewEngine(docSource, extract.New(), engineCfg)
		if err := engine.Reload(ctx); err != nil {
			log.Printf("initial load failed (serving empty knowledge base): %v", err)
		}
	} else {
		engine = service.NewEngine(nil, extract.New(), engineCfg)
	}

	var watcher *jobs.Watcher
	noWatch, _ := cmd.Flags().GetBool("no-watch")
	if docSource != nil && !noWatch && cfg.PollInterval > 0 {
		watcher = jobs.NewWatcher(docSource, engine, cfg.PollInterval)
		go watcher.Start(ctx)
		log.Printf("document watcher started (poll interval %s)", cfg.PollInterval)
	}

	routerCfg := server.RouterConfig{
		APIKey:           cfg.APIKey,
		AskHandler:       handlers.NewAskHandler(engine),
		KnowledgeHandler: handlers.NewKnowledgeHandler(engine),
	}

	router := server.NewRouter(routerCfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	if watcher != nil {
		watcher.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("server exited")
	return nil
}
