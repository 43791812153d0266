// Package classify implements the classification core of districtlens.
//
// Every table, badge, and chart in the dashboard renders domain values
// (vote shares, population counts, region codes, feasibility flags)
// through this package. A classification is a (label, style token) pair:
// the label is user-visible text, the token is an opaque identifier the
// rendering layer resolves to a visual treatment. The same input always
// yields the same token.
//
// CRITICAL PATTERNS:
//
// Canonical unit:
// Threshold rule sets operate on fractions in [0, 1]. Callers holding
// percentages MUST convert through FromPercent at the boundary. The
// package never guesses which unit a caller intended and never clamps
// out-of-range input.
//
// Descending scan order:
// Rules are evaluated from the highest lower bound downward, so a value
// exactly on a threshold resolves to the stricter (higher) category.
// Totality is enforced at construction: the final rule's bound must equal
// the domain minimum, so classification can never miss.
//
// Closed categories:
// Race, region, and party are closed enumerations with exhaustive
// mappings. An unknown key is a schema mismatch with the upstream data
// producer and surfaces as UnknownCategoryError, never a silent default.
//
// All functions are pure and safe for concurrent use. There is no
// package-level mutable state; rule sets are immutable after construction.
package classify
