package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/grovetools/statusline/cli"
	"github.com/grovetools/statusline/config"
	"github.com/grovetools/statusline/pkg/paths"
)

// NewSchemaCmd prints the JSON schema of the config file.
func NewSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.GenerateSchema()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func NewConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Display the effective configuration",
		Long: `Shows the configuration the status line runs with, after defaults are
applied. The source file is printed as a comment; when no file is found or the
file is invalid the defaults are shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cli.LoadConfig(cmd)

			source := cli.GetOptions(cmd).ConfigFile
			if source == "" {
				if found, err := config.FindConfigFile(paths.ConfigDir()); err == nil {
					source = found
				}
			}

			w := cmd.OutOrStdout()
			if source != "" {
				fmt.Fprintf(w, "# Source: %s\n", source)
			} else {
				fmt.Fprintln(w, "# Source: defaults")
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			fmt.Fprint(w, string(data))
			return nil
		},
	}
}
