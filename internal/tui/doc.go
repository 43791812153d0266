// Package tui is the interactive dashboard shell.
//
// A single bubbletea model owns the navigation state and the content
// pane. The left rail lists sections and, for the active section, its
// subsection tabs; the content pane renders the active view's table
// from the local store. Key events translate to navigation transitions;
// rejected transitions (stale keys during a section change) are logged
// and ignored, matching the navigation model's recover-by-refusing
// contract.
//
// The TUI owns stdout, so diagnostics go to a zap file logger.
package tui
