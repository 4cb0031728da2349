package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/statusline/cli"
	"github.com/grovetools/statusline/logging"
	"github.com/grovetools/statusline/pkg/paths"
)

// PathsOutput lists the directories and files statusline reads and writes.
type PathsOutput struct {
	ConfigDir       string `json:"config_dir"`
	StateDir        string `json:"state_dir"`
	CacheDir        string `json:"cache_dir"`
	SessionCacheDir string `json:"session_cache_dir"`
	LogFile         string `json:"log_file"`
}

func NewPathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Print the paths used by statusline",
		Long: `Print the paths used by statusline as JSON.

STATUSLINE_HOME relocates everything under one directory; otherwise the XDG
base directory variables are honored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var logCfg logging.Config
			if err := cli.LoadConfig(cmd).UnmarshalExtension("logging", &logCfg); err != nil {
				logCfg = logging.Config{}
			}

			output := PathsOutput{
				ConfigDir:       paths.ConfigDir(),
				StateDir:        paths.StateDir(),
				CacheDir:        paths.CacheDir(),
				SessionCacheDir: paths.SessionCacheDir(),
				LogFile:         logging.LogFilePath(logCfg.File),
			}

			jsonData, err := json.MarshalIndent(output, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal paths to JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
			return nil
		},
	}
}
