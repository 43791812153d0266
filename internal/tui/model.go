package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/districtlens/districtlens/internal/config"
	"github.com/districtlens/districtlens/internal/nav"
	"github.com/districtlens/districtlens/internal/records"
	"github.com/districtlens/districtlens/internal/render"
	"github.com/districtlens/districtlens/internal/store"
)

const railWidth = 26

// Model is the dashboard's bubbletea model. It owns the navigation
// state; child renderers receive it read-only.
type Model struct {
	dash   *config.Dashboard
	nav    *nav.Model
	styles render.Styles
	store  *store.Store
	logger *zap.Logger

	// stateID is the state being viewed (e.g. "AL").
	stateID string

	summary   records.StateSummary
	groups    []records.DemographicGroup
	precincts []records.Precinct

	viewport viewport.Model
	width    int
	height   int
	ready    bool
	loadErr  error
}

// dataMsg carries the store snapshot loaded at startup.
type dataMsg struct {
	summary   records.StateSummary
	groups    []records.DemographicGroup
	precincts []records.Precinct
}

// errMsg carries a load failure.
type errMsg struct{ err error }

// New creates the dashboard model for one state.
func New(dash *config.Dashboard, st *store.Store, stateID string, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Model{
		dash:     dash,
		nav:      nav.NewModel(dash.Nav),
		styles:   render.DefaultStyles(),
		store:    st,
		logger:   logger,
		stateID:  stateID,
		viewport: viewport.New(0, 0),
	}
}

// Init loads the store snapshot.
func (m Model) Init() tea.Cmd {
	return m.loadData
}

func (m Model) loadData() tea.Msg {
	ctx := context.Background()
	summary, err := m.store.State(ctx, m.stateID)
	if err != nil {
		return errMsg{fmt.Errorf("load state %s: %w", m.stateID, err)}
	}
	groups, err := m.store.GroupSummaries(ctx, m.stateID)
	if err != nil {
		return errMsg{err}
	}
	precincts, err := m.store.ListPrecincts(ctx, m.stateID)
	if err != nil {
		return errMsg{err}
	}
	return dataMsg{summary: summary, groups: groups, precincts: precincts}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = max(0, msg.Width-railWidth-1)
		m.viewport.Height = max(0, msg.Height-2)

	case dataMsg:
		m.summary = msg.summary
		m.groups = msg.groups
		m.precincts = msg.precincts
		m.ready = true
		m.logger.Info("store snapshot loaded",
			zap.String("state", m.stateID),
			zap.Int("groups", len(m.groups)),
			zap.Int("precincts", len(m.precincts)))

	case errMsg:
		m.loadErr = msg.err
		m.logger.Error("store load failed", zap.Error(msg.err))

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "left", "h":
		m.cycleSection(-1)
	case "right", "l":
		m.cycleSection(1)
	case "tab":
		m.cycleSubsection(1)
	case "shift+tab":
		m.cycleSubsection(-1)
	case "b":
		m.nav.ToggleCollapsed()

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(key[0] - '1')
		sections := m.nav.Tree().Sections()
		if idx < len(sections) {
			m.selectSection(sections[idx].ID)
		}

	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// selectSection applies a section transition, logging and ignoring
// rejections instead of crashing the UI.
func (m *Model) selectSection(id string) {
	if err := m.nav.SelectSection(id); err != nil {
		m.logger.Warn("section selection rejected", zap.String("id", id), zap.Error(err))
	}
}

func (m *Model) cycleSection(dir int) {
	sections := m.nav.Tree().Sections()
	active := m.nav.State().ActiveSection
	for i, sec := range sections {
		if sec.ID == active {
			next := (i + dir + len(sections)) % len(sections)
			m.selectSection(sections[next].ID)
			return
		}
	}
}

func (m *Model) cycleSubsection(dir int) {
	sec := m.nav.ActiveSection()
	if len(sec.Subsections) == 0 {
		return
	}
	active := m.nav.State().ActiveSubsection
	for i, sub := range sec.Subsections {
		if sub.ID == active {
			next := (i + dir + len(sec.Subsections)) % len(sec.Subsections)
			if err := m.nav.SelectSubsection(sec.Subsections[next].ID); err != nil {
				m.logger.Warn("subsection selection rejected",
					zap.String("id", sec.Subsections[next].ID), zap.Error(err))
			}
			return
		}
	}
}
