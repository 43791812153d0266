// Package nav models the dashboard's section navigation.
//
// The dashboard is organized as a two-level tree: top-level sections
// (overview, demographics, gingles, ensemble) optionally owning an
// ordered list of sub-section tabs. Several independent views render
// against the same navigation state, so the state lives in one place - a
// Model owned by the page-level controller - and children receive it
// read-only, communicating intent upward through the transition methods.
//
// Transitions are atomic, total replacements of the state value: a
// rejected transition leaves the state exactly as it was, and every
// rejection is a typed error rather than a silent no-op, so callers can
// tell a stale click from a successful change.
//
// Cross-field invariant, preserved by every transition: the active
// subsection is empty iff the active section has no subsections, and is
// otherwise one of that section's subsection ids. Collapsing the rail is
// display-only and never disturbs the active ids.
package nav
