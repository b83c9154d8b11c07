// Package scoretext provides a fluent API for reconciling the raw text
// recognized on a printed score into role-tagged score entities.
//
// Basic usage:
//
//	result, err := scoretext.New(sheet).Run(ctx, linesBySystem)
//	if err != nil {
//	    // handle error
//	}
//	for _, e := range result.Entities() {
//	    fmt.Println(e.Role(), e.Value())
//	}
//
// With options:
//
//	result, err := scoretext.New(sheet).
//	    Workers(4).
//	    MinConfidence(0.5).
//	    Switch(score.SwitchLyricsAboveStaff, true).
//	    Glyphs(glyph.NewRunTable(buf)).
//	    Run(ctx, linesBySystem)
//
// Straight from a recognizer:
//
//	client, _ := scoretext.NewRecognizer(cfg)
//	defer client.Close()
//	result, err := scoretext.New(sheet).Recognize(ctx, client, regions)
//
// For advanced use cases, the layout, glyph and graph packages are also
// available.
package scoretext

import (
	"errors"
	"fmt"

	"github.com/tsawler/scoretext/config"
	"github.com/tsawler/scoretext/ocr"
	"github.com/tsawler/scoretext/score"
)

var (
	// ErrNoSheet is returned when the reconciler has no sheet geometry
	ErrNoSheet = errors.New("no sheet")

	// ErrInvalidOption is returned when a fluent option is out of range
	ErrInvalidOption = errors.New("invalid option")
)

// New returns a Reconciler for the sheet with default options.
//
// Example:
//
//	result, err := scoretext.New(sheet).Run(ctx, linesBySystem)
func New(sheet *score.Sheet) *Reconciler {
	return &Reconciler{
		sheet:   sheet,
		options: defaultOptions(),
	}
}

// FromConfig returns a Reconciler using loaded settings.
//
// Example:
//
//	cfg, err := config.Load(".env")
//	if err != nil {
//	    // handle error
//	}
//	result, err := scoretext.FromConfig(sheet, cfg).Run(ctx, linesBySystem)
func FromConfig(sheet *score.Sheet, cfg config.Config) *Reconciler {
	r := New(sheet)
	r.options.layout = cfg.Layout
	r.options.switches = cfg.Switches.Clone()
	r.options.workers = cfg.Workers
	if cfg.Workers < 1 {
		r.err = fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidOption, cfg.Workers)
	}
	return r
}

// NewRecognizer returns an OCR client set up with the loaded recognizer
// language. The caller closes the client.
//
// Example:
//
//	client, err := scoretext.NewRecognizer(cfg)
//	if err != nil {
//	    // handle error
//	}
//	defer client.Close()
//	result, err := scoretext.FromConfig(sheet, cfg).Recognize(ctx, client, regions)
func NewRecognizer(cfg config.Config) (*ocr.Client, error) {
	client, err := ocr.New()
	if err != nil {
		return nil, err
	}
	if err := client.SetLanguage(cfg.Language); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set language %q: %w", cfg.Language, err)
	}
	return client, nil
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	result := scoretext.Must(scoretext.New(sheet).Run(ctx, lines))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
