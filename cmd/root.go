package cmd

import (
	"github.com/spf13/cobra"

	"github.com/grovetools/statusline/cli"
	"github.com/grovetools/statusline/logging"
	"github.com/grovetools/statusline/statusline"
)

// NewRootCmd builds the statusline command tree.
func NewRootCmd() *cobra.Command {
	var (
		short        bool
		skipPRStatus bool
	)

	root := cli.NewStandardCommand(
		"statusline",
		"Render a Claude Code status line from the JSON on stdin",
	)
	root.Long = `Reads the status JSON Claude Code pipes to status line commands and prints
a single ANSI-colored line: directory, git branch and status, model, context
window usage, session duration, line changes and cost.

Segments whose data is missing are left out. The command only fails when
stdin is not a JSON object.

Examples:
  # ~/.claude/settings.json
  # "statusLine": {"type": "command", "command": "statusline --short"}
  echo '{"model":{"display_name":"Opus"},"workspace":{"current_dir":"/tmp"}}' | statusline`
	root.Args = cobra.NoArgs

	root.Flags().BoolVar(&short, "short", false, "Compact layout: omit line changes and cost, hide the path of standard project checkouts")
	root.Flags().BoolVar(&skipPRStatus, "skip-pr-status", false, "Accepted for compatibility, has no effect")

	root.RunE = func(cmd *cobra.Command, args []string) error {
		cfg := cli.LoadConfig(cmd)
		defer logging.Close()

		return statusline.Run(cmd.Context(), statusline.Options{
			Short:        short,
			SkipPRStatus: skipPRStatus,
			Config:       cfg,
		}, cmd.InOrStdin(), cmd.OutOrStdout())
	}

	root.AddCommand(cli.NewVersionCommand("statusline"))
	root.AddCommand(NewSchemaCmd())
	root.AddCommand(NewConfigCmd())
	root.AddCommand(NewPathsCmd())

	return root
}
