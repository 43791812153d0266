package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTree(t *testing.T) Tree {
	t.Helper()
	tree, err := NewTree([]Node{
		{ID: "overview", Label: "State Overview"},
		{ID: "demographics", Label: "Demographics", Subsections: []Node{
			{ID: "demo-table", Label: "Table"},
			{ID: "demo-heatmap", Label: "Heatmap"},
		}},
		{ID: "ensemble", Label: "Ensemble Analysis", Subsections: []Node{
			{ID: "ens-summary", Label: "Summary"},
			{ID: "ens-boxwhisker", Label: "Box & Whisker"},
			{ID: "ens-splits", Label: "Splits"},
		}},
	})
	require.NoError(t, err)
	return tree
}

// checkInvariant asserts the core cross-field invariant: the active
// subsection is empty iff the active section has no subsections, and is
// otherwise a member of that section's subsection list.
func checkInvariant(t *testing.T, m *Model) {
	t.Helper()
	st := m.State()
	sec, ok := m.Tree().Section(st.ActiveSection)
	require.True(t, ok, "active section %q must exist", st.ActiveSection)

	if len(sec.Subsections) == 0 {
		assert.Empty(t, st.ActiveSubsection)
		return
	}
	require.NotEmpty(t, st.ActiveSubsection)
	found := false
	for _, sub := range sec.Subsections {
		if sub.ID == st.ActiveSubsection {
			found = true
		}
	}
	assert.True(t, found, "active subsection %q must belong to section %q", st.ActiveSubsection, sec.ID)
}

func TestInitialState(t *testing.T) {
	m := NewModel(testTree(t))

	assert.Equal(t, State{ActiveSection: "overview"}, m.State())
	checkInvariant(t, m)
}

func TestSelectSectionLandsOnFirstSubsection(t *testing.T) {
	m := NewModel(testTree(t))

	require.NoError(t, m.SelectSection("demographics"))
	assert.Equal(t, "demographics", m.State().ActiveSection)
	assert.Equal(t, "demo-table", m.State().ActiveSubsection)
	checkInvariant(t, m)

	// Back to a leaf section clears the subsection.
	require.NoError(t, m.SelectSection("overview"))
	assert.Empty(t, m.State().ActiveSubsection)
	checkInvariant(t, m)
}

func TestSelectSubsection(t *testing.T) {
	m := NewModel(testTree(t))
	require.NoError(t, m.SelectSection("ensemble"))

	require.NoError(t, m.SelectSubsection("ens-splits"))
	assert.Equal(t, "ensemble", m.State().ActiveSection)
	assert.Equal(t, "ens-splits", m.State().ActiveSubsection)
	checkInvariant(t, m)
}

func TestSelectUnknownSection(t *testing.T) {
	m := NewModel(testTree(t))
	before := m.State()

	err := m.SelectSection("heatmap")
	require.Error(t, err)
	assert.True(t, IsUnknownSectionError(err))
	assert.Equal(t, before, m.State(), "rejected transition must not change state")
}

func TestSelectStaleSubsection(t *testing.T) {
	m := NewModel(testTree(t))
	require.NoError(t, m.SelectSection("demographics"))
	before := m.State()

	// ens-summary belongs to the ensemble section - a stale click target
	// from a previous render.
	err := m.SelectSubsection("ens-summary")
	require.Error(t, err)
	assert.True(t, IsInvalidSubsectionError(err))
	assert.Equal(t, before, m.State(), "rejected transition must not change state")

	// A leaf section rejects any subsection selection.
	require.NoError(t, m.SelectSection("overview"))
	err = m.SelectSubsection("demo-table")
	require.Error(t, err)
	assert.True(t, IsInvalidSubsectionError(err))
}

func TestToggleCollapsedPreservesSelection(t *testing.T) {
	m := NewModel(testTree(t))
	require.NoError(t, m.SelectSection("ensemble"))
	require.NoError(t, m.SelectSubsection("ens-boxwhisker"))
	before := m.State()

	m.ToggleCollapsed()
	assert.True(t, m.State().Collapsed)
	assert.Equal(t, before.ActiveSection, m.State().ActiveSection)
	assert.Equal(t, before.ActiveSubsection, m.State().ActiveSubsection)

	m.ToggleCollapsed()
	assert.Equal(t, before, m.State(), "collapse then expand restores the exact state")
	checkInvariant(t, m)
}

func TestInvariantAcrossTransitionSequences(t *testing.T) {
	m := NewModel(testTree(t))

	// A scripted mix of valid and invalid transitions; the invariant must
	// hold after every step regardless of rejections along the way.
	steps := []func() error{
		func() error { return m.SelectSection("demographics") },
		func() error { return m.SelectSubsection("demo-heatmap") },
		func() error { return m.SelectSubsection("ens-splits") }, // stale
		func() error { m.ToggleCollapsed(); return nil },
		func() error { return m.SelectSection("ensemble") },
		func() error { return m.SelectSection("nope") }, // unknown
		func() error { return m.SelectSubsection("ens-summary") },
		func() error { m.ToggleCollapsed(); return nil },
		func() error { return m.SelectSection("overview") },
		func() error { return m.SelectSubsection("demo-table") }, // leaf section
	}
	for _, step := range steps {
		_ = step()
		checkInvariant(t, m)
	}
}
