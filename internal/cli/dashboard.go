package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/districtlens/districtlens/internal/store"
	"github.com/districtlens/districtlens/internal/tui"
)

// DashboardOptions holds flags for the dashboard command.
type DashboardOptions struct {
	*RootOptions
	LogFile string
}

// NewDashboardCommand creates the dashboard command.
func NewDashboardCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DashboardOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "dashboard <db> <state>",
		Short: "Open the interactive dashboard",
		Long: `Open the terminal dashboard for one state.

Keys:
  ←/→ h/l      previous / next section
  tab          next subsection
  1-9          jump to section
  b            collapse / expand the section rail
  q            quit

The dashboard owns the terminal, so diagnostics go to --log when set.

Examples:
  districtlens dashboard analytics.db AL
  districtlens dashboard analytics.db OR --log districtlens.log`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(opts, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&opts.LogFile, "log", "", "write diagnostics to this file")

	return cmd
}

func runDashboard(opts *DashboardOptions, dbPath, stateID string) error {
	dash, err := loadDashboard(opts.RootOptions)
	if err != nil {
		return err
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("opening database %s", dbPath), err)
	}
	defer st.Close()

	logger, err := tui.NewLogger(opts.LogFile)
	if err != nil {
		return WrapExitError(ExitCommandError, "opening log file", err)
	}
	defer logger.Sync() //nolint:errcheck

	model := tui.New(dash, st, stateID, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return WrapExitError(ExitFailure, "dashboard exited", err)
	}
	return nil
}
