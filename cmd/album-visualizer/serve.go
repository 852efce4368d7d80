package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/edkf/album-visualizer/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "run the now-playing http server",
	Long:  `exposes GET /api/now, GET /api/cover and GET /health until interrupted.`,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)
	log := newLogger(cfg)

	service, cleanup, err := buildService(cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg.ListenAddr(), service, log)
	return srv.Run(ctx)
}
