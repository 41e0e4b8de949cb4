// Package config defines the pipeline's run-time Config, built through a
// functional-option constructor in the same idiom as the graph-core
// package's GraphOption/EdgeOption: a base value plus a deterministic,
// left-to-right chain of Option values.
package config

import (
	"fmt"

	"github.com/ravelcraft/patterngen/gauge"
	"github.com/ravelcraft/patterngen/patternerr"
)

// Mode selects the construction style: a flat panel or a round
// (tubular, magic-ring-seeded) amigurumi.
type Mode int

const (
	// ModeRound is the default: row 0 is a magic ring, rows are closed
	// loops swept around the vertical axis (or around the mesh's
	// parameterized V axis).
	ModeRound Mode = iota
	// ModeFlat makes the profile pipeline read the curve's radius as a
	// half-width, so each row's physical length is 2r rather than 2πr.
	// Row 1 is still the six-single magic ring; RunMesh does not read the
	// mode.
	ModeFlat
)

// defaultTargetSizeCM is used by MeshPreprocessor when Config carries no
// explicit target dimension (component design §4.4).
const defaultTargetSizeCM = 6.0

// Config holds the overall run parameters for a single pipeline
// invocation: total height, yarn gauge, optional target dimensions, and
// construction mode.
type Config struct {
	TotalHeightCM float64
	Gauge         gauge.YarnGauge
	Mode          Mode

	// TargetDimensionCM, if non-zero, overrides the default target size
	// used when rescaling a mesh (§4.4). The profile pipeline does not
	// read it.
	TargetDimensionCM float64
}

// Option configures a Config during construction.
type Option func(*Config)

// WithMode sets the construction mode (default ModeRound).
func WithMode(m Mode) Option {
	return func(c *Config) { c.Mode = m }
}

// WithTargetDimensionCM overrides the default rescale target.
func WithTargetDimensionCM(cm float64) Option {
	return func(c *Config) { c.TargetDimensionCM = cm }
}

// New builds a Config from the required total height and gauge, applying
// opts deterministically left to right, then validates the result.
func New(totalHeightCM float64, g gauge.YarnGauge, opts ...Option) (Config, error) {
	c := Config{
		TotalHeightCM: totalHeightCM,
		Gauge:         g,
		Mode:          ModeRound,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports patternerr.ErrInvalidConfiguration for a non-positive
// height, an invalid gauge, a negative target dimension, or an
// unrecognized mode.
func (c Config) Validate() error {
	if c.TotalHeightCM <= 0 {
		return fmt.Errorf("%w: total height must be > 0, got %v", patternerr.ErrInvalidConfiguration, c.TotalHeightCM)
	}
	if err := c.Gauge.Validate(); err != nil {
		return err
	}
	if c.TargetDimensionCM < 0 {
		return fmt.Errorf("%w: target dimension must be >= 0, got %v", patternerr.ErrInvalidConfiguration, c.TargetDimensionCM)
	}
	if c.Mode != ModeRound && c.Mode != ModeFlat {
		return fmt.Errorf("%w: unrecognized construction mode %v", patternerr.ErrInvalidConfiguration, c.Mode)
	}
	return nil
}

// TargetSizeCM returns the configured target dimension, falling back to
// defaultTargetSizeCM when none was set.
func (c Config) TargetSizeCM() float64 {
	if c.TargetDimensionCM > 0 {
		return c.TargetDimensionCM
	}
	return defaultTargetSizeCM
}
