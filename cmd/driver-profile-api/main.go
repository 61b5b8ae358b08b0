package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/drivelinehq/driver-profile-api/internal/catalog"
	"github.com/drivelinehq/driver-profile-api/internal/config"
	"github.com/drivelinehq/driver-profile-api/internal/parser"
	"github.com/drivelinehq/driver-profile-api/internal/pdf"
	"github.com/drivelinehq/driver-profile-api/internal/profile"
	"github.com/drivelinehq/driver-profile-api/internal/server"
	"github.com/drivelinehq/driver-profile-api/internal/storage"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// setupLogging builds the zap logger for the configured level and installs it
// as the global logger.
func setupLogging(cfg *config.Config) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.LogLevel); err != nil {
		return nil, err
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.IsParseMode() {
		// Keep stdout clean for the extraction JSON.
		zcfg.OutputPaths = []string{"stderr"}
	}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}

func newParser(cfg *config.Config) *parser.Parser {
	extractor := pdf.NewExtractor(cfg.MaxFileSize)
	return parser.New(catalog.Default(), extractor, parser.SortPolicy(cfg.SortPolicy))
}

// runServerMode serves the HTTP API until a shutdown signal arrives.
func runServerMode(cfg *config.Config, logger *zap.Logger) error {
	store, err := storage.NewSQLite(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		return err
	}

	srv := server.New(newParser(cfg), store, logger, server.Options{
		Addr:        cfg.Address(),
		UploadDir:   cfg.UploadDirectory,
		MaxFileSize: cfg.MaxFileSize,
		ServiceName: cfg.ServiceName,
		Version:     cfg.Version,
	})

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- srv.Start()
	}()

	select {
	case sig := <-signalCh:
		logger.Info("shutting down", zap.String("signal", sig.String()))
		shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-serverErrCh

	case err := <-serverErrCh:
		return err
	}
}

// runParseMode extracts one profile per PDF path given on the command line and
// writes the pruned documents to stdout.
func runParseMode(cfg *config.Config, logger *zap.Logger) error {
	paths := pflag.Args()
	if len(paths) == 0 {
		return fmt.Errorf("parse mode requires at least one PDF path")
	}

	p := newParser(cfg)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	for _, path := range paths {
		result, err := p.Parse(path)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}

		doc, err := profile.Assemble(result).ToJSONSafe()
		if err != nil {
			return fmt.Errorf("serializing %s: %w", path, err)
		}
		if err := enc.Encode(doc); err != nil {
			return err
		}
		logger.Info("document processed",
			zap.String("path", path),
			zap.Float64("confidence", result.Confidence),
		)
	}
	return nil
}

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := setupLogging(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logger.Sync()

	// Set version if it was provided during build
	if version != "dev" {
		cfg.Version = version
	}

	if cfg.IsDebug() && cfg.IsServerMode() {
		logger.Debug("starting", zap.String("config", cfg.String()))
	}

	if cfg.IsServerMode() {
		err = runServerMode(cfg, logger)
	} else {
		err = runParseMode(cfg, logger)
	}
	if err != nil {
		logger.Error("fatal", zap.Error(err))
		os.Exit(1)
	}
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("Driver Profile API\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
