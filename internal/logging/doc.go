// Package logging wraps log/slog construction so the CLI and library
// components emit a consistent shape.
//
// Two output formats exist: "console" renders compact single-line records with
// the component name as a prefix, "json" is for machine consumption. Library
// components never construct loggers themselves; they accept a *slog.Logger
// and fall back to NewNop when given nil, so importing the library stays
// silent by default.
package logging
