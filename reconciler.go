package scoretext

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/scoretext/glyph"
	"github.com/tsawler/scoretext/graph"
	"github.com/tsawler/scoretext/layout"
	"github.com/tsawler/scoretext/ocr"
	"github.com/tsawler/scoretext/score"
	"github.com/tsawler/scoretext/text"
)

// Reconciler provides a fluent interface for reconciling the text of a
// sheet. Each configuration method returns a new Reconciler instance,
// making it safe for concurrent use and allowing method chaining.
type Reconciler struct {
	sheet   *score.Sheet
	options Options

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Reconciler with a deep copy of options.
func (r *Reconciler) clone() *Reconciler {
	return &Reconciler{
		sheet:   r.sheet,
		options: r.options.clone(),
		err:     r.err,
	}
}

// Workers sets the number of systems reconciled concurrently.
//
// Example:
//
//	result, err := scoretext.New(sheet).Workers(2).Run(ctx, lines)
func (r *Reconciler) Workers(n int) *Reconciler {
	newRec := r.clone()
	if n < 1 && newRec.err == nil {
		newRec.err = fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidOption, n)
	}
	newRec.options.workers = n
	return newRec
}

// Config replaces every reconciliation threshold.
func (r *Reconciler) Config(cfg layout.Config) *Reconciler {
	newRec := r.clone()
	newRec.options.layout = cfg
	return newRec
}

// MinConfidence sets the minimum mean confidence of a valid line.
func (r *Reconciler) MinConfidence(v float64) *Reconciler {
	newRec := r.clone()
	if (v < 0 || v > 1) && newRec.err == nil {
		newRec.err = fmt.Errorf("%w: minimum confidence must be between 0 and 1, got %v", ErrInvalidOption, v)
	}
	newRec.options.layout.MinConfidence = v
	return newRec
}

// LyricsMode sets the manual lyrics override.
//
// Example:
//
//	result, err := scoretext.New(sheet).LyricsMode(layout.LyricsForbidden).Run(ctx, lines)
func (r *Reconciler) LyricsMode(mode layout.LyricsMode) *Reconciler {
	newRec := r.clone()
	newRec.options.layout.LyricsMode = mode
	return newRec
}

// Manual keeps invalid lines and words, as for user-entered text.
func (r *Reconciler) Manual() *Reconciler {
	newRec := r.clone()
	newRec.options.layout.Manual = true
	return newRec
}

// Switch overrides one sheet processing switch.
func (r *Reconciler) Switch(sw score.Switch, on bool) *Reconciler {
	newRec := r.clone()
	if newRec.options.switches == nil {
		newRec.options.switches = score.Switches{}
	}
	newRec.options.switches[sw] = on
	return newRec
}

// Glyphs enables glyph mapping against the sections of the sheet image.
// Words without pixel evidence are then dropped unless entered manually.
func (r *Reconciler) Glyphs(sectioner glyph.Sectioner) *Reconciler {
	newRec := r.clone()
	newRec.options.sectioner = sectioner
	return newRec
}

// GlyphIndex sets the index registering glyphs. A fresh index is used
// otherwise.
func (r *Reconciler) GlyphIndex(idx *glyph.Index) *Reconciler {
	newRec := r.clone()
	newRec.options.index = idx
	return newRec
}

// Registrar sets where entities are registered. It must be safe for
// concurrent use. A fresh graph.Graph is used otherwise.
func (r *Reconciler) Registrar(reg graph.Registrar) *Reconciler {
	newRec := r.clone()
	newRec.options.registrar = reg
	return newRec
}

// Logger sets the logger of every pipeline step.
func (r *Reconciler) Logger(l *slog.Logger) *Reconciler {
	newRec := r.clone()
	newRec.options.logger = l
	return newRec
}

// Region is the image of one system handed to a recognizer
type Region struct {
	System *score.System

	// Image is the encoded region image (PNG, TIFF, JPEG, etc.)
	Image []byte

	// Origin is the position of the region within the page
	Origin image.Point
}

// Recognize runs the recognizer over every region, one at a time, then
// reconciles the recognized lines.
func (r *Reconciler) Recognize(ctx context.Context, rec ocr.Recognizer, regions []Region) (*Result, error) {
	if r.err != nil {
		return nil, r.err
	}

	lines := make(map[*score.System][]*text.Line, len(regions))
	for _, region := range regions {
		recognized, err := rec.Recognize(ctx, region.Image, region.Origin)
		if err != nil {
			return nil, fmt.Errorf("failed to recognize system %d: %w", region.System.ID, err)
		}
		lines[region.System] = append(lines[region.System], recognized...)
	}

	return r.Run(ctx, lines)
}

// Run reconciles the raw lines recognized for each system of the sheet.
//
// Lines of each system are first merged into long lines, then lines seen by
// two neighboring systems are given to one of them. Systems are then
// recomposed, mapped to glyphs and emitted concurrently.
func (r *Reconciler) Run(ctx context.Context, linesBySystem map[*score.System][]*text.Line) (*Result, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.sheet == nil {
		return nil, ErrNoSheet
	}

	sheet := r.effectiveSheet()
	logger := r.logger()
	cfg := r.options.layout
	if cfg.Logger == nil {
		cfg.Logger = logger
	}

	merger := layout.NewLineMergerWithConfig(cfg)
	merged := make(map[*score.System][]*text.Line, len(sheet.Systems))
	for _, sys := range sheet.Systems {
		merged[sys] = merger.Merge(linesBySystem[sys], sheet.Scale, sheet.Skew)
	}
	for sys, lines := range linesBySystem {
		if _, known := merged[sys]; !known && len(lines) > 0 {
			logger.Warn("ignoring lines of a system not in the sheet", "lines", len(lines))
		}
	}

	layout.NewPartitionerWithConfig(sheet.Skew, cfg).PurgeNeighbors(sheet, merged)

	result := &Result{Systems: make([]SystemResult, len(sheet.Systems))}
	registrar := r.options.registrar
	if registrar == nil {
		result.Graph = graph.New()
		registrar = result.Graph
	}
	result.Glyphs = r.options.index
	if result.Glyphs == nil && r.options.sectioner != nil {
		result.Glyphs = glyph.NewIndex()
	}

	recomposer := layout.NewRecomposerWithConfig(sheet, cfg)
	emitter := graph.NewEmitterWithConfig(sheet, registrar, graph.EmitterConfig{
		Logger:    logger,
		Validator: layout.NewValidatorWithConfig(cfg),
	})
	var mapper *glyph.Mapper
	if r.options.sectioner != nil {
		mcfg := glyph.DefaultMapperConfig()
		mcfg.Logger = logger
		mapper = glyph.NewMapperWithConfig(r.options.sectioner, result.Glyphs, mcfg)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.options.workers)
	for i, sys := range sheet.Systems {
		i, sys := i, sys
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			lines := recomposer.Recompose(sys, merged[sys])
			if mapper != nil {
				lines = mapper.Map(lines)
			}
			result.Systems[i] = SystemResult{
				System:   sys,
				Lines:    lines,
				Entities: emitter.Emit(sys, lines),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("reconciliation aborted: %w", err)
	}

	logger.Info("reconciled sheet",
		"systems", len(sheet.Systems),
		"entities", len(result.Entities()))

	return result, nil
}

// effectiveSheet returns the sheet with the switch overrides applied
func (r *Reconciler) effectiveSheet() *score.Sheet {
	if len(r.options.switches) == 0 {
		return r.sheet
	}

	sheet := *r.sheet
	if sheet.Switches == nil {
		sheet.Switches = score.DefaultSwitches()
	} else {
		sheet.Switches = sheet.Switches.Clone()
	}
	for sw, on := range r.options.switches {
		sheet.Switches[sw] = on
	}
	return &sheet
}

func (r *Reconciler) logger() *slog.Logger {
	if r.options.logger != nil {
		return r.options.logger
	}
	if r.options.layout.Logger != nil {
		return r.options.layout.Logger
	}
	return slog.Default()
}
