// Package harness runs conformance scenarios against the presentation
// core.
//
// A scenario is a YAML file scripting a sequence of operations - section
// and subsection selections, rail collapses, classifications - with
// optional expected outcomes per step. Running a scenario produces a
// deterministic trace: one event per step recording what was attempted,
// whether it succeeded, and the navigation state afterwards.
//
// Traces are compared against golden files with goldie, so the exact
// transition behavior of the navigation model and the exact labels and
// tokens of the classifier are pinned as fixtures. Regenerate with:
//
//	go test ./internal/harness -update
package harness
