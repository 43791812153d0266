package nav

import "fmt"

// Node is one navigable entry: a top-level section, or a subsection tab
// within one. A node with Subsections is a parent section; subsection
// nodes themselves are always leaves.
type Node struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Subsections []Node `json:"subsections,omitempty"`
}

// Tree is a validated navigation tree. Immutable after construction.
//
// Validation enforces the properties the state model depends on: ids are
// unique across the entire tree (a single active id pair must resolve a
// node unambiguously) and nesting stops at two levels.
type Tree struct {
	sections []Node
	byID     map[string]int // section id -> index into sections
}

// NewTree validates and constructs a navigation tree.
// Returns TreeError on empty input, blank labels/ids, duplicate ids
// anywhere in the tree, or nesting deeper than two levels.
func NewTree(sections []Node) (Tree, error) {
	if len(sections) == 0 {
		return Tree{}, &TreeError{Message: "at least one section is required"}
	}

	seen := map[string]bool{}
	byID := make(map[string]int, len(sections))
	for i, sec := range sections {
		if err := checkNode(sec, seen); err != nil {
			return Tree{}, err
		}
		for _, sub := range sec.Subsections {
			if len(sub.Subsections) > 0 {
				return Tree{}, &TreeError{
					Message: fmt.Sprintf("subsection %q: nesting beyond two levels is not supported", sub.ID),
				}
			}
			if err := checkNode(sub, seen); err != nil {
				return Tree{}, err
			}
		}
		byID[sec.ID] = i
	}

	owned := make([]Node, len(sections))
	copy(owned, sections)
	return Tree{sections: owned, byID: byID}, nil
}

// MustTree is NewTree that panics on error. For built-in trees whose
// validity is covered by tests.
func MustTree(sections []Node) Tree {
	t, err := NewTree(sections)
	if err != nil {
		panic(err)
	}
	return t
}

func checkNode(n Node, seen map[string]bool) error {
	if n.ID == "" {
		return &TreeError{Message: "node id is required"}
	}
	if n.Label == "" {
		return &TreeError{Message: fmt.Sprintf("node %q: label is required", n.ID)}
	}
	if seen[n.ID] {
		return &TreeError{Message: fmt.Sprintf("duplicate node id %q", n.ID)}
	}
	seen[n.ID] = true
	return nil
}

// Sections returns the root sections in declaration order.
func (t Tree) Sections() []Node {
	out := make([]Node, len(t.sections))
	copy(out, t.sections)
	return out
}

// Section returns the section with the given id, if present.
func (t Tree) Section(id string) (Node, bool) {
	i, ok := t.byID[id]
	if !ok {
		return Node{}, false
	}
	return t.sections[i], true
}
