package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dotcommander/distromatch/internal/config"
	"github.com/dotcommander/distromatch/internal/dealbreaker"
	"github.com/dotcommander/distromatch/internal/match"
	"github.com/dotcommander/distromatch/internal/server"
)

var listenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the recommendation engine as an HTTP API",
	Long: `Serve starts an HTTP server exposing the recommendation engine:
POST /api/v1/match, /api/v1/preview and /api/v1/dealbreakers take raw
questionnaire answers; GET /api/v1/distros and /api/v1/games expose the
catalog with browse filters.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	serveCmd.Flags().StringVarP(&listenAddr, "listen", "l", "", "Listen address (default :8080)")

	rootCmd.AddCommand(serveCmd)
}

func runServe() error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	addr := listenAddr
	if addr == "" {
		addr = cfg.Listen
	}

	c, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	slog.Info("starting distromatch",
		"addr", addr,
		"distros", len(c.Distros),
		"desktops", len(c.DesktopEnvironments),
		"games", len(c.Games),
	)

	engine := match.NewEngine(c)
	detector := dealbreaker.NewDetector(c)
	api := server.NewServer(engine, detector)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      api.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("HTTP server starting", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("distromatch stopped")
	return nil
}
