// Package main provides the entry point for the eRegulations MCP server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/unctad-ai/eregulations-mcp-server/internal/config"
	"github.com/unctad-ai/eregulations-mcp-server/internal/eregulations"
	"github.com/unctad-ai/eregulations-mcp-server/internal/metrics"
	"github.com/unctad-ai/eregulations-mcp-server/internal/server"
	"github.com/unctad-ai/eregulations-mcp-server/internal/tools"
)

const version = "0.2.0"

var (
	flagAPIURL   string
	flagLogFile  string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "eregulations-mcp",
	Short: "MCP server exposing eRegulations procedures to LLM clients",
	Long: `eregulations-mcp serves regulatory procedures from an eRegulations
instance over the Model Context Protocol on stdio. Retrieved records are
condensed into bounded, LLM-readable text and cached in memory with TTLs
so repeated tool calls avoid redundant upstream requests.`,
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagAPIURL, "api-url", "", "eRegulations API base URL (overrides env and config file)")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "log file path (overrides env and config file)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Flags win over env and file
	if flagAPIURL != "" {
		cfg.APIBaseURL = flagAPIURL
	}
	if flagLogFile != "" {
		cfg.LogFile = flagLogFile
	}
	if flagLogLevel != "" {
		cfg.LogLevel = config.ParseLogLevel(flagLogLevel)
	}

	// Setup logger (dual output: stderr text + file JSON)
	logger, cleanup := config.SetupLogger(cfg.LogFile, cfg.LogLevel)
	defer cleanup()

	logger.Info("eregulations-mcp starting",
		"version", version,
		"api_url", cfg.APIBaseURL,
		"cache_ttl", cfg.CacheTTL,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	collector := metrics.NewCollector()

	client := eregulations.New(cfg.APIBaseURL, eregulations.Options{
		Timeout:      cfg.HTTPTimeout,
		CacheTTL:     cfg.CacheTTL,
		ListCacheTTL: cfg.ListCacheTTL,
	}, logger, collector)

	// Periodic sweep on top of the cache's lazy per-read eviction.
	go sweepCache(ctx, client, cfg.CacheSweepInterval, logger)

	srv := server.New(version, logger, collector)
	srv.Setup()

	deps := &tools.Dependencies{
		API:    client,
		Logger: logger,
	}
	tools.RegisterAll(srv.MCPServer(), deps)
	logger.Info("tools registered", "count", 5)

	logger.Info("server ready, awaiting connections")

	// Run server (blocks until disconnect or context cancelled)
	if err := srv.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("server error", "error", err)
		return err
	}

	snap := collector.Snapshot()
	logger.Info("shutdown complete",
		"uptime_s", snap.UptimeSeconds,
		"cache_hits", snap.CacheHits,
		"cache_misses", snap.CacheMisses,
	)
	return nil
}

// sweepCache periodically removes expired cache entries until ctx is done.
func sweepCache(ctx context.Context, client *eregulations.Client, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := client.CleanExpiredCache(); removed > 0 {
				logger.Debug("cache sweep", "removed", removed)
			}
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
