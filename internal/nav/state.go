package nav

// State is the complete navigation position: the active section, the
// active subsection within it (empty when the section has none), and
// whether the rail is collapsed. Plain value type so callers can snapshot
// and compare states across transitions.
type State struct {
	ActiveSection    string `json:"active_section"`
	ActiveSubsection string `json:"active_subsection,omitempty"`
	Collapsed        bool   `json:"collapsed"`
}

// Model owns a navigation tree and its current state. It lives for the
// lifetime of the owning page view; there is no terminal state.
//
// Model is not safe for concurrent use. The hosting UI processes input
// events one at a time, and each transition either fully applies or
// leaves the state untouched.
type Model struct {
	tree  Tree
	state State
}

// NewModel creates a model positioned at the tree's first section,
// landing on that section's first subsection if it has any.
func NewModel(tree Tree) *Model {
	first := tree.sections[0]
	state := State{ActiveSection: first.ID}
	if len(first.Subsections) > 0 {
		state.ActiveSubsection = first.Subsections[0].ID
	}
	return &Model{tree: tree, state: state}
}

// Tree returns the navigation tree.
func (m *Model) Tree() Tree { return m.tree }

// State returns a snapshot of the current navigation state.
func (m *Model) State() State { return m.state }

// ActiveSection returns the currently active section node.
func (m *Model) ActiveSection() Node {
	sec, _ := m.tree.Section(m.state.ActiveSection)
	return sec
}

// SelectSection activates the section with the given id.
//
// Entering a section with subsections always lands on its first
// subsection; entering a leaf section clears the active subsection.
// Unknown ids are refused with UnknownSectionError and the state is
// unchanged.
func (m *Model) SelectSection(id string) error {
	sec, ok := m.tree.Section(id)
	if !ok {
		return &UnknownSectionError{ID: id}
	}
	m.state.ActiveSection = sec.ID
	if len(sec.Subsections) > 0 {
		m.state.ActiveSubsection = sec.Subsections[0].ID
	} else {
		m.state.ActiveSubsection = ""
	}
	return nil
}

// SelectSubsection activates a subsection of the currently active
// section.
//
// Ids outside the active section's subsection list are refused with
// InvalidSubsectionError - the expected outcome for a click target that
// went stale when the active section changed underneath it. The active
// section is never altered by this transition.
func (m *Model) SelectSubsection(id string) error {
	sec := m.ActiveSection()
	for _, sub := range sec.Subsections {
		if sub.ID == id {
			m.state.ActiveSubsection = id
			return nil
		}
	}
	return &InvalidSubsectionError{Section: sec.ID, ID: id}
}

// ToggleCollapsed flips the rail's collapsed flag.
//
// Collapse is display-only: the active subsection is preserved so the
// rail re-expands exactly where it was.
func (m *Model) ToggleCollapsed() {
	m.state.Collapsed = !m.state.Collapsed
}
