// Package logging configures zerolog for artable.
//
// The interactive table owns the terminal, so diagnostics normally go to a log
// file; NewLoggerWithPath falls back to stderr when the file cannot be opened
// and reports why. Every command run gets a ULID trace id carried on the
// context so log lines from one session can be grouped.
package logging
