package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/curiolab/internal/config"
	"github.com/abhisek/curiolab/internal/content"
	"github.com/abhisek/curiolab/internal/dimensions"
	"github.com/abhisek/curiolab/internal/llm"
	"github.com/abhisek/curiolab/internal/logger"
	"github.com/abhisek/curiolab/internal/progress"
	"github.com/abhisek/curiolab/internal/server"
	"github.com/abhisek/curiolab/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the CurioLab HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

// runServe opens the store, builds dependencies, and runs the HTTP API
// until interrupted.
func runServe(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		if err := store.EnsureDir(p); err != nil {
			return err
		}
		cfg.DBPath = p
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	tracker := progress.New(st.Records(),
		progress.WithEmitter(progress.NewLogEmitter(log)))

	var contentSvc *content.Service
	var dimSvc *dimensions.Service

	provider, err := llm.NewProviderFromEnv(ctx, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Content generation will be unavailable.")
		provider = llm.NewMockProvider()
	}
	contentSvc = content.NewService(provider, content.DefaultConfig())
	dimSvc = dimensions.NewService(provider, log)

	router := server.NewRouter(server.RouterConfig{
		ContentHandler:  server.NewContentHandler(contentSvc, dimSvc, tracker, log),
		ProgressHandler: server.NewProgressHandler(tracker, log),
		AllowedOrigins:  cfg.AllowedOrigins,
		Log:             log,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-stop:
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}
	return nil
}
