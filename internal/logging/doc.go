// Package logging assembles the structured slog loggers used across
// rangeshift commands and internal packages.
//
// It centralizes level and output plumbing, exposes Attr helpers so call
// sites stay terse, and provides a no-op logger for tests and wiring code
// that cannot fail. Prefer these constructors over hand-rolled slog setup so
// every component emits fields with the same shape.
package logging
