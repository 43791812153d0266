package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/districtlens/districtlens/internal/config"
	"github.com/districtlens/districtlens/internal/render"
	"github.com/districtlens/districtlens/internal/store"
)

// ReportOptions holds flags for the report command.
type ReportOptions struct {
	*RootOptions
	View string // demographics | outcomes | regions | all
}

var reportViews = []string{"demographics", "outcomes", "regions", "all"}

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "report <db> <state>",
		Short: "Print analysis tables for a state",
		Long: `Render the dashboard's analysis tables to stdout, without the TUI.

Views:
  demographics  per-group population and Gingles feasibility
  outcomes      per-precinct election outcome classifications
  regions       region breakdown with average vote shares
  all           every view in order

Examples:
  districtlens report analytics.db AL
  districtlens report analytics.db AL --view outcomes`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.View, "view", "all", "view to render (demographics|outcomes|regions|all)")

	return cmd
}

func runReport(opts *ReportOptions, dbPath, stateID string, cmd *cobra.Command) error {
	if !contains(reportViews, opts.View) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid view %q: must be one of %v", opts.View, reportViews))
	}

	dash, err := loadDashboard(opts.RootOptions)
	if err != nil {
		return err
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("opening database %s", dbPath), err)
	}
	defer st.Close()

	ctx := cmd.Context()
	if _, err := st.State(ctx, stateID); err != nil {
		if store.IsNotFound(err) {
			return NewExitError(ExitCommandError, fmt.Sprintf("state %s not found in %s", stateID, dbPath))
		}
		return WrapExitError(ExitCommandError, "reading state", err)
	}

	// Reports are plain text for pipelines; the styled renderer is the
	// TUI's. Zero-value styles leave the tokens resolved but unstyled.
	styles := render.Styles{}
	w := cmd.OutOrStdout()

	if opts.View == "demographics" || opts.View == "all" {
		groups, err := st.GroupSummaries(ctx, stateID)
		if err != nil {
			return WrapExitError(ExitCommandError, "reading demographics", err)
		}
		out, err := render.DemographicsTable(stateID, groups, styles)
		if err != nil {
			return WrapExitError(ExitFailure, "rendering demographics", err)
		}
		fmt.Fprint(w, out)
	}

	if opts.View == "outcomes" || opts.View == "all" {
		precincts, err := st.ListPrecincts(ctx, stateID)
		if err != nil {
			return WrapExitError(ExitCommandError, "reading precincts", err)
		}
		ruleSet, err := dash.RuleSet(config.RuleSetPoliticalOutcome)
		if err != nil {
			return WrapExitError(ExitCommandError, "resolving rule set", err)
		}
		out, err := render.PrecinctOutcomesTable(stateID, precincts, ruleSet, styles)
		if err != nil {
			return WrapExitError(ExitFailure, "rendering outcomes", err)
		}
		fmt.Fprint(w, out)
	}

	if opts.View == "regions" || opts.View == "all" {
		precincts, err := st.ListPrecincts(ctx, stateID)
		if err != nil {
			return WrapExitError(ExitCommandError, "reading precincts", err)
		}
		out, err := render.RegionBreakdownTable(stateID, precincts, styles)
		if err != nil {
			return WrapExitError(ExitFailure, "rendering regions", err)
		}
		fmt.Fprint(w, out)
	}

	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
