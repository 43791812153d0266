package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/districtlens/districtlens/internal/config"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose   bool
	Format    string // "json" | "text"
	ConfigDir string // CUE config directory; empty means built-in defaults
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the districtlens root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "districtlens",
		Short: "Redistricting analytics dashboard",
		Long:  "Ingest precinct and demographic records, classify them against configurable thresholds, and browse the results in a terminal dashboard.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigDir, "config", "", "CUE config directory (defaults to built-in rule sets and layout)")

	cmd.AddCommand(NewClassifyCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewIngestCommand(opts))
	cmd.AddCommand(NewReportCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))
	cmd.AddCommand(NewDashboardCommand(opts))

	return cmd
}

// loadDashboard resolves the effective dashboard configuration: the
// --config directory when given, the built-in defaults otherwise.
func loadDashboard(opts *RootOptions) (*config.Dashboard, error) {
	if opts.ConfigDir == "" {
		return config.Default(), nil
	}
	dash, err := config.Load(opts.ConfigDir)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "loading config", err)
	}
	return dash, nil
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
