// Package diag defines the diagnostic model shared by every compilation
// phase: severities, stable numeric codes, the Diagnostic value itself, the
// bounded Bag collector, and the Reporter contract.
//
// Phases produce diagnostics and never print them; rendering lives in
// diagfmt. A diagnostic's Primary span points at the failing subexpression,
// not its enclosing construct, so callers can surface precise locations.
package diag
