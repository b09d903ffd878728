package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/claes/slideshow/internal/config"
)

func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}
	configCmd.AddCommand(newConfigInitCommand())
	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init [path]",
		Short:       "Create a sample configuration file",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := "slideshow.toml"
			if len(args) == 1 {
				target = args[0]
			}
			target, err := filepath.Abs(target)
			if err != nil {
				return fmt.Errorf("resolve config path: %w", err)
			}
			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}
			if err := config.CreateSample(target); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample configuration to %s\n", target)
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing file")
	return cmd
}
