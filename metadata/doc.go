// Package metadata derives summary statistics for a finished pattern:
// total stitch count, row count, an estimated working time, and an
// estimated yarn length.
package metadata
