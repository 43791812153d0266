package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/districtlens/districtlens/internal/config"
)

// ValidationResult holds validation results for JSON output.
type ValidationResult struct {
	Valid    bool   `json:"valid"`
	RuleSets int    `json:"rule_sets,omitempty"`
	Sections int    `json:"sections,omitempty"`
	Error    string `json:"error,omitempty"`
	Field    string `json:"field,omitempty"`
	Line     int    `json:"line,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <config-dir>",
		Short: "Validate a dashboard configuration",
		Long: `Compile the CUE configuration in a directory and report errors.

Checks rule set ordering and totality, category domains, and the
section layout (unique ids, two levels at most) without touching a
database.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, configDir string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	dash, err := config.Load(configDir)
	if err != nil {
		result := ValidationResult{Valid: false, Error: err.Error()}
		var cfgErr *config.ConfigError
		if errors.As(err, &cfgErr) {
			result.Field = cfgErr.Field
			if cfgErr.Pos.IsValid() {
				result.Line = cfgErr.Pos.Line()
			}
		}

		if opts.Format == "json" {
			_ = formatter.Error("E_CONFIG", err.Error(), result)
		} else {
			fmt.Fprintln(formatter.Writer, "✗ Configuration invalid")
			if result.Line > 0 {
				fmt.Fprintf(formatter.Writer, "  line %d\n", result.Line)
			}
			fmt.Fprintf(formatter.Writer, "  %s\n", err.Error())
		}
		return WrapExitError(ExitFailure, "validation failed", err)
	}

	if opts.Format == "json" {
		return formatter.Success(ValidationResult{
			Valid:    true,
			RuleSets: len(dash.RuleSets),
			Sections: len(dash.Nav.Sections()),
		})
	}

	fmt.Fprintf(formatter.Writer, "✓ Configuration valid (%d rule set(s), %d section(s))\n",
		len(dash.RuleSets), len(dash.Nav.Sections()))
	return nil
}
