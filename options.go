package scoretext

import (
	"log/slog"
	"runtime"

	"github.com/tsawler/scoretext/glyph"
	"github.com/tsawler/scoretext/graph"
	"github.com/tsawler/scoretext/layout"
	"github.com/tsawler/scoretext/score"
)

// Options holds the configuration of a reconciliation run.
type Options struct {
	// Thresholds
	layout layout.Config

	// Switch overrides, applied over the sheet switches
	switches score.Switches

	// Number of systems reconciled concurrently
	workers int

	// Glyph mapping, skipped when sectioner is nil
	sectioner glyph.Sectioner
	index     *glyph.Index

	// Output graph; nil means a fresh in-memory graph per run
	registrar graph.Registrar

	logger *slog.Logger
}

// defaultOptions returns the default reconciliation options.
func defaultOptions() Options {
	return Options{
		layout:  layout.DefaultConfig(),
		workers: runtime.NumCPU(),
	}
}

// clone creates a deep copy of Options.
func (o Options) clone() Options {
	newOpts := o
	if o.switches != nil {
		newOpts.switches = o.switches.Clone()
	}
	return newOpts
}
