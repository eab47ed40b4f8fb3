package ui

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekpick/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	var initFile bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the effective configuration as TOML: defaults, overlaid
by the config file, overlaid by WEEKPICK_* environment variables.

With --init, write a config file with default values if none exists.

Example:
  weekpick config --init`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s\n", a.configPath)

			if initFile {
				if _, err := os.Stat(a.configPath); err == nil {
					return fmt.Errorf("config file already exists: %s", a.configPath)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("checking config file: %w", err)
				}
				if err := config.Default().SaveTo(a.configPath); err != nil {
					return fmt.Errorf("saving config: %w", err)
				}
				fmt.Fprintf(out, "# created with default values\n")
			}

			data, err := a.config.Marshal()
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&initFile, "init", false, "Write a default config file")
	return cmd
}
