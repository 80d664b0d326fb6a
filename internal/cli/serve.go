package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/26ideas-youngfounders/scoreboard-api/internal/cache"
	"github.com/26ideas-youngfounders/scoreboard-api/internal/config"
	"github.com/26ideas-youngfounders/scoreboard-api/internal/httpapi"
	"github.com/26ideas-youngfounders/scoreboard-api/internal/scoreboard"
	"github.com/26ideas-youngfounders/scoreboard-api/internal/scores"
	"github.com/26ideas-youngfounders/scoreboard-api/internal/sheets"
)

const shutdownGrace = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the scoreboard HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
		}
	},
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	client := sheets.NewClient(cfg.SpreadsheetID, cfg.SheetRange, cfg.APIKey, cfg.UpstreamTimeout)
	store := cache.New[[]scores.Record](cfg.CacheTTL)
	svc := scoreboard.New(client, store, cfg.CacheKey())
	handler := httpapi.NewHandler(svc, cfg.CacheTTL)
	server := httpapi.NewServer(cfg.HTTPAddr, handler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
