package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/claes/slideshow/internal/model"
	"github.com/claes/slideshow/internal/slides"
)

func newSlidesCommand(ctx *commandContext) *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "slides",
		Short: "Print the slide sequence as the page would receive it",
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
			if source == "" {
				source = cfg.Server.Source
			}
			src, err := slides.NewSource(source, cfg.ImagesDir(), cfg.Paths.Manifest, logger.Named("slides"))
			if err != nil {
				return err
			}

			list := src.Slides()
			rows := make([][]string, 0, len(list))
			for i, s := range list {
				rows = append(rows, []string{strconv.Itoa(i + 1), slideKind(s), s.SourceFolder, slideDetail(s)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"#", "Kind", "Folder", "Image / Text"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "Slide source: live or manifest (overrides server.source)")
	return cmd
}

func slideKind(s model.Slide) string {
	switch {
	case s.IsTransition:
		return "transition"
	case s.IsPlaceholder():
		return "placeholder"
	default:
		return "image"
	}
}

func slideDetail(s model.Slide) string {
	switch {
	case s.IsTransition:
		return s.FolderDescription
	case s.IsPlaceholder():
		return s.Title + ": " + s.Caption
	case s.Caption != "":
		return s.Image + " (" + s.Caption + ")"
	default:
		return s.Image
	}
}
