package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/upside-down-research/squeal/internal/cli"
)

var (
	// Global state set during PersistentPreRunE
	cfg        *cli.Config
	configPath string
	logger     = zerolog.Nop()

	// Persistent flags
	cfgFile string
	verbose int
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "squeal",
	Short: "Typed PostgreSQL statement builder",
	Long: `squeal - typed PostgreSQL statement builder

squeal renders SQL from YAML statement documents using the same builders
Go code uses, and can run the result against a PostgreSQL database.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for help/completion/version commands
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, configPath, err = cli.LoadConfig(cfgFile)
		if err != nil {
			return cli.ConfigError("loading configuration", err)
		}

		level := cfg.Log.Level
		switch {
		case quiet:
			level = "error"
		case verbose >= 2:
			level = "trace"
		case verbose == 1:
			level = "debug"
		}
		logger, err = cli.NewLogger(cmd.ErrOrStderr(), level, cfg.Log.Format)
		if err != nil {
			return cli.ConfigError("configuring logger", err)
		}
		logger.Debug().Str("config", configPath).Msg("configuration loaded")

		return nil
	},
	SilenceUsage:  true, // Don't show usage on errors
	SilenceErrors: true, // We handle errors ourselves
}

// Command group IDs
const (
	groupStatements = "statements"
	groupUtility    = "utility"
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: auto-discover squeal.yaml)")
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase verbosity (can be repeated)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")

	rootCmd.AddGroup(
		&cobra.Group{ID: groupStatements, Title: "Statements:"},
		&cobra.Group{ID: groupUtility, Title: "Utility:"},
	)

	renderCmd.GroupID = groupStatements
	execCmd.GroupID = groupStatements
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(execCmd)

	configCmd.GroupID = groupUtility
	versionCmd.GroupID = groupUtility
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		cli.ExitWithError(err)
	}
}

// resolveString returns the first non-empty string from the provided values.
// Used to implement precedence: flag > config > default.
func resolveString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
