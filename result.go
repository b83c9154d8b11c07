package scoretext

import (
	"github.com/tsawler/scoretext/glyph"
	"github.com/tsawler/scoretext/graph"
	"github.com/tsawler/scoretext/score"
	"github.com/tsawler/scoretext/text"
)

// SystemResult is the outcome of one system
type SystemResult struct {
	System *score.System

	// Lines are the final lines, in deskewed vertical order
	Lines []*text.Line

	// Entities are the emitted entities, one per line
	Entities []graph.Entity
}

// Result is the outcome of a reconciliation run
type Result struct {
	// Systems are in sheet order
	Systems []SystemResult

	// Graph is the in-memory graph, unless a registrar was given
	Graph *graph.Graph

	// Glyphs is the glyph index, when glyph mapping was enabled
	Glyphs *glyph.Index
}

// Entities returns every entity, system by system
func (r *Result) Entities() []graph.Entity {
	var all []graph.Entity
	for _, s := range r.Systems {
		all = append(all, s.Entities...)
	}
	return all
}

// Lines returns every final line, system by system
func (r *Result) Lines() []*text.Line {
	var all []*text.Line
	for _, s := range r.Systems {
		all = append(all, s.Lines...)
	}
	return all
}

// ByRole returns the entities with the given role
func (r *Result) ByRole(role text.Role) []graph.Entity {
	var out []graph.Entity
	for _, e := range r.Entities() {
		if e.Role() == role {
			out = append(out, e)
		}
	}
	return out
}
