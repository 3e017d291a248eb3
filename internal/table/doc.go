// Package table implements the artwork table controller: page state, page-load
// cycles, and row selection.
//
// The controller is driven from a single event loop (the Bubble Tea update
// loop, or a test). Only Cycle.Run executes elsewhere, and it touches nothing
// but its own copy of the fetcher, page, and context. Every page change starts
// a new cycle with a higher generation and cancels the previous cycle with
// cause artwork.ErrSuperseded; Apply discards any result whose generation is
// not the latest, so a slow response for an old page can never overwrite the
// rows of a newer one.
//
// Per cycle the controller moves Idle -> Loading -> {Success, Cancelled,
// Failed} -> Idle. Only Success replaces rows. Timeouts, supersedes, and
// failures leave the previous rows in place; failures are logged, the others
// are expected and stay quiet.
package table
