package graph

import (
	"log/slog"

	"github.com/tsawler/scoretext/layout"
	"github.com/tsawler/scoretext/score"
	"github.com/tsawler/scoretext/text"
)

// EmitterConfig holds configuration for entity emission
type EmitterConfig struct {
	// Logger receives diagnostics (default: slog.Default())
	Logger *slog.Logger

	// Validator grades the emitted lines (default: layout.NewValidator())
	Validator *layout.Validator
}

// Emitter turns finalized lines into entities and registers them
type Emitter struct {
	sheet     *score.Sheet
	registrar Registrar
	config    EmitterConfig
}

// NewEmitter creates an emitter with default configuration
func NewEmitter(sheet *score.Sheet, registrar Registrar) *Emitter {
	return NewEmitterWithConfig(sheet, registrar, EmitterConfig{})
}

// NewEmitterWithConfig creates an emitter with custom configuration
func NewEmitterWithConfig(sheet *score.Sheet, registrar Registrar, config EmitterConfig) *Emitter {
	return &Emitter{sheet: sheet, registrar: registrar, config: config}
}

// graded is implemented by entities built on base
type graded interface {
	setGrade(g float64)
}

func (e *Emitter) validator() *layout.Validator {
	if e.config.Validator == nil {
		return layout.NewValidator()
	}
	return e.config.Validator
}

func (e *Emitter) logger() *slog.Logger {
	if e.config.Logger == nil {
		return slog.Default()
	}
	return e.config.Logger
}

// Emit registers one entity per non-empty line, in deskewed vertical order,
// and returns them
func (e *Emitter) Emit(system *score.System, lines []*text.Line) []Entity {
	ordered := make([]*text.Line, 0, len(lines))
	for _, l := range lines {
		if !l.IsEmpty() {
			ordered = append(ordered, l)
		}
	}
	text.SortByDeskewedY(ordered, e.sheet.Skew)

	gutters := layout.NewGutterCache(layout.NewPartitioner(e.sheet.Skew), ordered)

	validator := e.validator()
	entities := make([]Entity, 0, len(ordered))
	for _, l := range ordered {
		staff := e.staffOf(system, l, gutters)
		if l.Staff == nil {
			l.Staff = staff
		}

		var ent Entity
		switch l.Role() {
		case text.RoleLyrics:
			ent = NewLyricLine(l, staff)
		case text.RoleChordName:
			ent = NewChordName(l, staff)
		default:
			ent = NewSentence(l, staff)
		}

		if g, ok := ent.(graded); ok {
			g.setGrade(validator.Grade(l))
		}

		e.registrar.Register(ent)
		entities = append(entities, ent)
	}

	e.logger().Debug("emitted entities",
		"system", system.ID,
		"count", len(entities))

	return entities
}

// staffOf returns the explicit staff of the line, else the staff resolved
// by the part gutter for lyrics, else the staff above lyrics, else the
// closest staff
func (e *Emitter) staffOf(system *score.System, l *text.Line, gutters *layout.GutterCache) *score.Staff {
	if l.Staff != nil {
		return l.Staff
	}

	center := l.Bounds().Center()
	if l.Role() == text.RoleLyrics {
		if staff, ok := gutters.Resolve(system, l); ok {
			return staff
		}
		if staff := system.StaffAbove(center); staff != nil {
			return staff
		}
	}
	return system.ClosestStaff(center)
}
