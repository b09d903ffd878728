package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var verbose bool

	ctx := newCommandContext(&configFlag, &verbose)

	rootCmd := &cobra.Command{
		Use:           "slideshow",
		Short:         "Photo and audio slideshow server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations["skipConfigLoad"] == "true" {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			ctx.syncLogger()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path (default ./slideshow.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newServeCommand(ctx))
	rootCmd.AddCommand(newGenerateCommand(ctx))
	rootCmd.AddCommand(newSlidesCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
