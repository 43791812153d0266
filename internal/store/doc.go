// Package store provides the local SQLite store behind the dashboard.
//
// The presentation core consumes typed records; this package is their
// producer. Record files are ingested in batches (each batch stamped
// with a UUIDv7 id for audit), and reads return rows in deterministic
// order so rendered tables and golden files are stable across runs.
//
// Group summaries are where the Gingles feasibility flag is computed:
// a demographic group is feasible when its statewide voting age
// population reaches GinglesFeasibilityVAP. Downstream code only ever
// sees the boolean.
//
// SQLite is configured with WAL mode, NORMAL synchronous, a busy
// timeout, and foreign key enforcement. The connection pool is limited
// to a single connection since SQLite supports one writer at a time.
package store
