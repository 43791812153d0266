// Package config compiles dashboard configuration from CUE.
//
// Rule sets and the navigation tree are deployment data, not process
// globals: a deployment (or a test) supplies its own thresholds, labels,
// style tokens, and section layout, and the classifier and navigation
// model are constructed from the compiled result. The built-in
// configuration returned by Default covers the stock dashboard.
//
// Configuration is declared in CUE and compiled through the CUE Go API
// (not a CLI subprocess). Compilation reuses the construction-time
// validation of internal/classify and internal/nav, so an invalid rule
// ordering or a duplicate section id is a load-time error with a file
// position, never a runtime surprise.
package config
