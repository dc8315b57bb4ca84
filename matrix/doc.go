// Package matrix provides the dense square integer matrices used throughout
// maxflow: capacity matrices on input and flow matrices on output.
//
// Dense stores n×n int64 entries in a flat row-major slice. Entries are
// never negative — FromRows and Set enforce this at ingestion, so the flow
// solver can trust any *Dense it receives and skip per-call re-validation.
//
// All user-triggered error conditions return package sentinel errors and
// MUST be matched with errors.Is; no exported operation panics.
package matrix
