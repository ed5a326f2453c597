// Package logging assembles the structured slog loggers used across Luminas.
//
// It owns the console and JSON handlers and centralizes level parsing so the
// compile pipeline and the playback runtime emit log lines with the same
// shape. A no-op logger is provided for tests and wiring code that cannot
// fail.
package logging
