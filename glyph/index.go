package glyph

import (
	"image"
	"sync"

	"github.com/tsawler/scoretext/model"
)

// Glyph is the union of the sections registered for one word
type Glyph struct {
	// ID identifies the glyph within its index
	ID int

	sections []*Section
	bounds   image.Rectangle
	weight   int
}

// Sections returns the glyph sections
func (g *Glyph) Sections() []*Section {
	out := make([]*Section, len(g.sections))
	copy(out, g.sections)
	return out
}

// Rect returns the pixel rectangle of the glyph
func (g *Glyph) Rect() image.Rectangle {
	return g.bounds
}

// Bounds returns the glyph bounding box
func (g *Glyph) Bounds() model.BBox {
	return model.NewBBox(
		float64(g.bounds.Min.X),
		float64(g.bounds.Min.Y),
		float64(g.bounds.Dx()),
		float64(g.bounds.Dy()))
}

// Weight returns the number of foreground pixels of the glyph
func (g *Glyph) Weight() int {
	return g.weight
}

// Index registers glyphs and the sections they claim. A section belongs to
// at most one glyph. It is safe for concurrent use.
type Index struct {
	mu      sync.Mutex
	glyphs  []*Glyph
	claimed map[*Section]*Glyph
}

// NewIndex creates an empty index
func NewIndex() *Index {
	return &Index{claimed: make(map[*Section]*Glyph)}
}

// Register creates a glyph from the sections not yet claimed by another
// glyph. It returns nil when every section is already claimed.
func (idx *Index) Register(sections []*Section) *Glyph {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	var free []*Section
	for _, s := range sections {
		if _, taken := idx.claimed[s]; !taken {
			free = append(free, s)
		}
	}
	if len(free) == 0 {
		return nil
	}

	g := &Glyph{ID: len(idx.glyphs), sections: free}
	for i, s := range free {
		if i == 0 {
			g.bounds = s.Bounds()
		} else {
			g.bounds = g.bounds.Union(s.Bounds())
		}
		g.weight += s.Weight()
		idx.claimed[s] = g
	}
	idx.glyphs = append(idx.glyphs, g)

	return g
}

// Owner returns the glyph claiming the section, if any
func (idx *Index) Owner(s *Section) *Glyph {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return idx.claimed[s]
}

// Glyphs returns the registered glyphs in registration order
func (idx *Index) Glyphs() []*Glyph {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	out := make([]*Glyph, len(idx.glyphs))
	copy(out, idx.glyphs)
	return out
}

// Len returns the number of registered glyphs
func (idx *Index) Len() int {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return len(idx.glyphs)
}
