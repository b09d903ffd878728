package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/claes/slideshow/internal/slides"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Scan the images tree and write the slide manifest",
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

			res, err := slides.Generate(cfg.ImagesDir(), cfg.Paths.Manifest)
			if err != nil {
				return err
			}
			logger.Debug("manifest written",
				zap.Int("slides", res.Count),
				zap.String("path", res.Path),
				zap.Int64("bytes", res.Bytes))
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d slides in %s (%s)\n",
				res.Count, res.Path, humanize.Bytes(uint64(res.Bytes)))
			return nil
		},
	}
}
