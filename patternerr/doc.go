// Package patternerr centralizes the tagged error taxonomy surfaced by
// every component of the pattern-generation pipeline, so callers can
// switch on errors.Is regardless of which component failed.
package patternerr
