// Package commands implements the CLI commands for ifccheck.
package commands

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/boscotek/ifccheck/internal/config"
	"github.com/boscotek/ifccheck/internal/errors"
	"github.com/boscotek/ifccheck/internal/logging"
)

// version is set at build time via ldflags.
// Default to a development version for local builds.
const version = "0.1.0"

// profileFlag holds the value of the --profile flag.
var profileFlag string

// jsonFlag holds the value of the --json flag.
var jsonFlag bool

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// noColor holds the value of the --no-color flag.
var noColor bool

// cfg holds the loaded configuration; defaults apply when no file exists.
var cfg *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringVar(&profileFlag, "profile", "",
		"rule profile file (YAML or TOML); default is the built-in Boscotek rules")
	rootCmd.Flags().BoolVar(&jsonFlag, "json", false,
		"output the report as JSON")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress diagnostic output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"disable colorized output")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("ifccheck version {{.Version}}\n")

	// Errors are printed under our control; usage still prints for
	// argument mistakes.
	rootCmd.SilenceErrors = true
}

func initConfig() {
	config.Init()
	cfg, configLoadErr = config.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "ifccheck <ifc-file>",
	Short: "Validate a Boscotek IFC export against the internal specification",
	Long: `ifccheck inspects a single IFC building-data file and reports whether it
conforms to the Boscotek CAD-export specification: IFC4 schema, millimetre
units, a complete spatial hierarchy, entity-typed placements, required
product metadata, and correctly typed containment relationships.

Findings are classified as errors, warnings, or passed checks. The exit
status is 0 when no errors were found (warnings are surfaced but never
fail the run) and 1 otherwise.`,
	Example: `  # Validate a configurator export
  ifccheck Boscotek_prod-hd-cabinet_BTCS.700.560_CFG123_LEAD456.ifc

  # Machine-readable report for CI
  ifccheck --json cabinet.ifc

  # Validate against a different rule profile
  ifccheck --profile acme-rules.yaml shelf.ifc`,
	Args: cobra.ExactArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		if noColor || (cfg != nil && cfg.Color == "never") {
			color.NoColor = true
		}
		if configLoadErr != nil {
			return errors.NewUserError(configLoadErr, "Check your ifccheck config file")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Argument mistakes above printed usage; from here on failures
		// are reported by the run itself.
		cmd.SilenceUsage = true
		return runValidate(args[0], cmd.OutOrStdout())
	},
}

// setupLogging configures the default logger based on verbosity flags.
// Diagnostics go to stderr so the report stream on stdout stays clean.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	if quiet {
		slog.SetDefault(logging.NewDiscard())
		return nil
	}

	format := logging.Format(logFormat)
	if !cmd.Flags().Changed("log-format") && cfg != nil && cfg.LogFormat != "" {
		format = logging.Format(cfg.LogFormat)
	}

	logger := logging.New(logging.Config{
		Level:  logging.LevelFromVerbosity(verbosity),
		Format: format,
		Output: os.Stderr,
	})
	slog.SetDefault(logger)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
