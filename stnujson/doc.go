// Package stnujson implements the STNU JSON import/export schema of
// spec.md §6, using github.com/goccy/go-json for marshaling — the same
// JSON encoder the rest of this stack's dependency surface already pulls
// in — rather than encoding/json.
package stnujson
