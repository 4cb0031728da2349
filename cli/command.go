package cli

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/grovetools/statusline/config"
	"github.com/grovetools/statusline/errors"
	"github.com/grovetools/statusline/logging"
)

// CommandOptions holds the persistent options shared by every command.
type CommandOptions struct {
	ConfigFile string
	Verbose    bool
}

// NewStandardCommand creates a command with the standard persistent flags,
// underscore-tolerant flag names and styled help.
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to a config file (yaml or toml)")
	cmd.SetGlobalNormalizationFunc(NormalizeFlagName)

	SetStyledHelp(cmd)

	return cmd
}

// NormalizeFlagName lets --skip_pr_status and --skip-pr-status name the same flag.
func NormalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

// GetOptions extracts common options from a command
func GetOptions(cmd *cobra.Command) CommandOptions {
	configFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")

	return CommandOptions{
		ConfigFile: configFile,
		Verbose:    verbose,
	}
}

// LoadConfig resolves the configuration for a command and configures logging
// from it. It never fails: an unreadable or invalid file is logged and the
// defaults are used instead.
func LoadConfig(cmd *cobra.Command) *config.Config {
	opts := GetOptions(cmd)
	log := logging.NewLogger("cli")

	// Bootstrap logging so config loading itself can be traced with -v.
	_ = logging.Configure(nil, opts.Verbose)

	var (
		cfg *config.Config
		err error
	)
	if opts.ConfigFile != "" {
		cfg, err = config.Load(config.ExpandHome(opts.ConfigFile))
	} else {
		cfg, err = config.LoadDefaultWithLogger(log.Logger)
	}
	if err != nil {
		log.WithFields(logrus.Fields{
			"code":  errors.GetCode(err),
			"error": err,
		}).Warn("Ignoring configuration, using defaults")
		cfg = config.Default()
	}

	if err := logging.Configure(cfg, opts.Verbose); err != nil {
		log.WithError(err).Warn("Invalid logging section")
	}
	return cfg
}
