// Package minigrep provides a line-oriented substring search over a single
// file or over the direct children of a directory. Matching lines are
// aggregated by content, each with every line number it occurs at.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, slog/, text/).
package minigrep
