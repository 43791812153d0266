// Package render resolves style tokens to terminal styling and renders
// the dashboard's tables and badges.
//
// The classifier emits opaque style tokens; this package owns the
// mapping from token to visual treatment and nothing upstream depends on
// it. Unknown tokens resolve to a neutral style rather than an error -
// token identity is the classifier's contract, coloring is a rendering
// concern and a new token should degrade gracefully until the theme
// catches up.
//
// Rendering goes through lipgloss. When no color profile is active
// (tests, piped output) lipgloss emits plain text, which the golden
// tests rely on.
package render
