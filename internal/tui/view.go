package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/districtlens/districtlens/internal/config"
	"github.com/districtlens/districtlens/internal/render"
)

var (
	railStyle       = lipgloss.NewStyle().Width(railWidth).PaddingRight(1)
	activeSection   = lipgloss.NewStyle().Bold(true).Reverse(true)
	inactiveSection = lipgloss.NewStyle()
	activeTab       = lipgloss.NewStyle().Bold(true).Underline(true)
	inactiveTab     = lipgloss.NewStyle().Faint(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
)

// View renders the rail and the content pane.
func (m Model) View() string {
	if m.loadErr != nil {
		return fmt.Sprintf("error: %v\n\npress q to quit\n", m.loadErr)
	}
	if !m.ready {
		return "loading...\n"
	}

	m.viewport.SetContent(m.content())
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.rail(), m.viewport.View())
	help := helpStyle.Render("←/→ sections · tab subsections · b collapse · q quit")
	return body + "\n" + help + "\n"
}

// rail renders the navigation rail. When collapsed, only section labels
// show; the active subsection is preserved underneath and reappears on
// expand.
func (m Model) rail() string {
	state := m.nav.State()
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render(m.summary.Name))
	sb.WriteString("\n\n")

	for i, sec := range m.nav.Tree().Sections() {
		style := inactiveSection
		if sec.ID == state.ActiveSection {
			style = activeSection
		}
		sb.WriteString(style.Render(fmt.Sprintf("%d %s", i+1, sec.Label)))
		sb.WriteString("\n")

		if state.Collapsed || sec.ID != state.ActiveSection {
			continue
		}
		for _, sub := range sec.Subsections {
			style := inactiveTab
			if sub.ID == state.ActiveSubsection {
				style = activeTab
			}
			sb.WriteString("  " + style.Render(sub.Label))
			sb.WriteString("\n")
		}
	}
	return railStyle.Render(sb.String())
}

// content renders the active view. Unknown data never reaches this
// point: reads from the store parse category keys on the way out.
func (m Model) content() string {
	state := m.nav.State()
	view := state.ActiveSubsection
	if view == "" {
		view = state.ActiveSection
	}

	switch view {
	case "overview":
		return m.overview()
	case "demo-table", "demo-feasibility":
		out, err := render.DemographicsTable(m.summary.ID, m.groups, m.styles)
		if err != nil {
			return m.contentError(err)
		}
		return out
	case "prec-outcomes":
		ruleSet, err := m.dash.RuleSet(config.RuleSetPoliticalOutcome)
		if err != nil {
			return m.contentError(err)
		}
		out, err := render.PrecinctOutcomesTable(m.summary.ID, m.precincts, ruleSet, m.styles)
		if err != nil {
			return m.contentError(err)
		}
		return out
	case "prec-regions":
		out, err := render.RegionBreakdownTable(m.summary.ID, m.precincts, m.styles)
		if err != nil {
			return m.contentError(err)
		}
		return out
	case "ens-summary", "ens-splits":
		return helpStyle.Render(fmt.Sprintf("No ensemble runs ingested for %s.", m.summary.ID)) + "\n"
	default:
		return helpStyle.Render(fmt.Sprintf("(%s)", view)) + "\n"
	}
}

func (m Model) overview() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(fmt.Sprintf("%s (%s)", m.summary.Name, m.summary.ID)))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Congressional districts: %d\n", m.summary.NumDistricts))
	if m.summary.Preclearance {
		sb.WriteString("Historically subject to Section 5 preclearance\n")
	}
	sb.WriteString(fmt.Sprintf("Precincts loaded: %s\n", render.FormatCount(int64(len(m.precincts)))))
	sb.WriteString(fmt.Sprintf("Demographic groups loaded: %d\n", len(m.groups)))
	return sb.String()
}

func (m Model) contentError(err error) string {
	m.logger.Error("content render failed", zap.Error(err))
	return fmt.Sprintf("render error: %v\n", err)
}
