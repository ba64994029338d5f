package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/server"
	"github.com/jonathan/resume-builder/internal/storage"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP editor API",
	Long:  `Start an HTTP server that edits the stored résumé session, serves its live preview and exports it. The session is autosaved periodically and once more on shutdown.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, then 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	sess, err := loadSession(ctx, cfg, "")
	if err != nil {
		return err
	}
	exporter, err := newExporter(cfg)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{Port: cfg.Port}, sess, exporter)
	saver := storage.NewAutosaver(store, sess, time.Duration(cfg.AutosaveInterval))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx)
	})
	g.Go(func() error {
		return saver.Run(gctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("serve failed: %w", err)
	}
	return nil
}
