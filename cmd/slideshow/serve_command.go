package main

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	apphttp "github.com/claes/slideshow/internal/http"
	"github.com/claes/slideshow/internal/slides"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var addr string
	var source string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the slideshow page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}
			if source == "" {
				source = cfg.Server.Source
			}

			src, err := slides.NewSource(source, cfg.ImagesDir(), cfg.Paths.Manifest, logger.Named("slides"))
			if err != nil {
				return err
			}
			handler := apphttp.NewServer(apphttp.Options{
				Source:    src,
				StaticDir: cfg.Paths.StaticDir,
				AudioDir:  cfg.AudioDir(),
				Logger:    logger,
			})

			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", addr, err)
			}
			logger.Info("starting slideshow",
				zap.String("source", src.Name()),
				zap.String("static_dir", cfg.Paths.StaticDir))

			runCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return apphttp.Serve(runCtx, ln, handler, logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides server.addr)")
	cmd.Flags().StringVar(&source, "source", "", "Slide source: live or manifest (overrides server.source)")
	return cmd
}
