// Package slogx provides the [slog.Handler] plumbing used by command line programs.
//
// Output to a terminal is formatted for humans, and anything else is written as JSON so it can be collected.
// Handlers can be merged with [MergeHandlers] to also log to a file.
package slogx
