package glyph

import (
	"image"
	"log/slog"
	"math"
	"sort"

	"github.com/tsawler/scoretext/model"
	"github.com/tsawler/scoretext/text"
)

// MapperConfig holds configuration for glyph mapping
type MapperConfig struct {
	// Margin grows each word box before looking for sections, in pixels
	// (default: 1)
	Margin int

	// Logger receives diagnostics (default: slog.Default())
	Logger *slog.Logger
}

// DefaultMapperConfig returns sensible default configuration
func DefaultMapperConfig() MapperConfig {
	return MapperConfig{Margin: 1}
}

// Mapper attaches a registered glyph to each recognized word
type Mapper struct {
	sectioner Sectioner
	index     *Index
	config    MapperConfig
}

// NewMapper creates a new mapper with default configuration
func NewMapper(sectioner Sectioner, index *Index) *Mapper {
	return NewMapperWithConfig(sectioner, index, DefaultMapperConfig())
}

// NewMapperWithConfig creates a mapper with custom configuration
func NewMapperWithConfig(sectioner Sectioner, index *Index, config MapperConfig) *Mapper {
	return &Mapper{sectioner: sectioner, index: index, config: config}
}

func (m *Mapper) logger() *slog.Logger {
	if m.config.Logger == nil {
		return slog.Default()
	}
	return m.config.Logger
}

// Map registers a glyph for every word of the lines, shorter words first.
// Words without matching sections are dropped unless entered or adjusted
// manually; lines left without words are dropped.
func (m *Mapper) Map(lines []*text.Line) []*text.Line {
	var words []*text.Word
	for _, l := range lines {
		words = append(words, l.Words()...)
	}
	sort.SliceStable(words, func(i, j int) bool {
		return words[i].Length() < words[j].Length()
	})

	for _, w := range words {
		if g := m.mapWord(w); g != nil {
			w.SetGlyph(g)
			continue
		}
		if w.IsManual() || w.IsAdjusted() {
			continue
		}

		m.logger().Debug("no glyph for word", "word", w.Value())
		if l := w.Line(); l != nil {
			l.RemoveWords(w)
		}
	}

	kept := make([]*text.Line, 0, len(lines))
	for _, l := range lines {
		if !l.IsEmpty() {
			kept = append(kept, l)
		}
	}
	return kept
}

// mapWord registers the sections under the word chars, or under the word
// box when it has no chars
func (m *Mapper) mapWord(w *text.Word) *Glyph {
	region := toRect(w.Bounds()).Inset(-m.config.Margin)
	sections := m.sectioner.SectionsIn(region)
	if len(sections) == 0 {
		return nil
	}

	chars := w.Chars()
	if len(chars) > 0 {
		var matching []*Section
		for _, s := range sections {
			for _, c := range chars {
				if s.Bounds().Overlaps(toRect(c.Bounds()).Inset(-m.config.Margin)) {
					matching = append(matching, s)
					break
				}
			}
		}
		sections = matching
	}
	if len(sections) == 0 {
		return nil
	}

	return m.index.Register(sections)
}

// toRect returns the smallest pixel rectangle enclosing the box
func toRect(b model.BBox) image.Rectangle {
	return image.Rect(
		int(math.Floor(b.Left())),
		int(math.Floor(b.Top())),
		int(math.Ceil(b.Right())),
		int(math.Ceil(b.Bottom())))
}
