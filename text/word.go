package text

import (
	"strings"
	"unicode/utf8"

	"github.com/tsawler/scoretext/model"
)

// Word is a sequence of chars in left-to-right reading order, as produced by
// the recognizer, by merging or splitting words, or entered manually.
type Word struct {
	chars      []Char
	value      string
	confidence float64
	font       Font

	// bounds and baseline are derived from chars unless overridden
	bounds           *model.BBox
	baseline         *model.Segment
	boundsOverride   bool
	baselineOverride bool

	preciseFontSize *float64

	line     *Line
	glyph    Glyph
	manual   bool
	adjusted bool
}

// NewWord creates a word from recognized chars.
// An empty value is taken from the concatenated char values.
func NewWord(value string, confidence float64, font Font, chars []Char) *Word {
	cs := make([]Char, len(chars))
	copy(cs, chars)
	if value == "" {
		var sb strings.Builder
		for _, c := range cs {
			sb.WriteString(c.Value())
		}
		value = sb.String()
	}
	return &Word{
		chars:      cs,
		value:      value,
		confidence: confidence,
		font:       font,
	}
}

// NewManualWord creates a word entered by the user, with no chars.
// Manual words are fully trusted.
func NewManualWord(bounds model.BBox, value string, font Font) *Word {
	b := bounds
	return &Word{
		value:          value,
		confidence:     1,
		font:           font,
		bounds:         &b,
		boundsOverride: true,
		manual:         true,
	}
}

// MergeWords creates the word made of a's chars followed by b's chars.
// Confidence is the length-weighted mean of the two.
func MergeWords(a, b *Word) *Word {
	chars := make([]Char, 0, len(a.chars)+len(b.chars))
	chars = append(chars, a.chars...)
	chars = append(chars, b.chars...)

	la, lb := float64(a.Length()), float64(b.Length())
	conf := UnknownConfidence
	switch {
	case a.confidence >= 0 && b.confidence >= 0 && la+lb > 0:
		conf = (a.confidence*la + b.confidence*lb) / (la + lb)
	case a.confidence >= 0:
		conf = a.confidence
	case b.confidence >= 0:
		conf = b.confidence
	}

	w := NewWord(a.Value()+b.Value(), conf, a.font, chars)
	w.manual = a.manual && b.manual
	if len(chars) == 0 {
		box := a.Bounds().Union(b.Bounds())
		w.bounds = &box
		w.boundsOverride = true
	}
	return w
}

// Split creates the sub-word matching a scanner run.
// The sub-word keeps this word's confidence and font.
func (w *Word) Split(run Run) *Word {
	var chars []Char
	if run.Start >= 0 && run.Stop < len(w.chars) && run.Start <= run.Stop {
		chars = w.chars[run.Start : run.Stop+1]
	}

	sub := NewWord(run.Value, w.confidence, w.font, chars)
	sub.manual = w.manual
	if len(chars) == 0 {
		box := w.Bounds()
		sub.bounds = &box
		sub.boundsOverride = true
	}
	return sub
}

// Chars returns a copy of the word chars
func (w *Word) Chars() []Char {
	cs := make([]Char, len(w.chars))
	copy(cs, w.chars)
	return cs
}

// Value returns the word text
func (w *Word) Value() string {
	return w.value
}

// Length returns the number of characters in the word value
func (w *Word) Length() int {
	return utf8.RuneCountInString(w.value)
}

// Confidence returns the recognizer confidence in [0, 1],
// or UnknownConfidence
func (w *Word) Confidence() float64 {
	return w.confidence
}

// Font returns the word font attributes
func (w *Word) Font() Font {
	return w.font
}

// SetFont replaces the word font attributes
func (w *Word) SetFont(f Font) {
	w.font = f
	w.preciseFontSize = nil
	w.invalidateLine()
}

// Bounds returns the word bounding box, the union of its chars unless
// overridden
func (w *Word) Bounds() model.BBox {
	if w.bounds == nil {
		box := BoundsOf(w.chars)
		w.bounds = &box
	}
	return *w.bounds
}

// SetBounds overrides the word bounding box and marks the word as adjusted
func (w *Word) SetBounds(b model.BBox) {
	w.bounds = &b
	w.boundsOverride = true
	w.adjusted = true
	w.invalidateLine()
}

// Baseline returns the word baseline, from the bottom-left of the first char
// to the bottom-right of the last char unless set by the recognizer
func (w *Word) Baseline() model.Segment {
	if w.baseline == nil {
		var seg model.Segment
		if len(w.chars) > 0 {
			first := w.chars[0].Bounds()
			last := w.chars[len(w.chars)-1].Bounds()
			seg = model.NewSegment(
				model.Point{X: first.Left(), Y: first.Bottom()},
				model.Point{X: last.Right(), Y: last.Bottom()},
			)
		} else {
			box := w.Bounds()
			seg = model.NewSegment(
				model.Point{X: box.Left(), Y: box.Bottom()},
				model.Point{X: box.Right(), Y: box.Bottom()},
			)
		}
		w.baseline = &seg
	}
	return *w.baseline
}

// SetBaseline records the baseline reported by the recognizer
func (w *Word) SetBaseline(seg model.Segment) {
	w.baseline = &seg
	w.baselineOverride = true
	w.invalidateLine()
}

// Translate moves the word and its chars by (dx, dy)
func (w *Word) Translate(dx, dy float64) {
	for i, c := range w.chars {
		w.chars[i] = c.Translated(dx, dy)
	}
	if w.boundsOverride && w.bounds != nil {
		box := w.bounds.Translate(dx, dy)
		w.bounds = &box
	} else {
		w.bounds = nil
	}
	if w.baselineOverride && w.baseline != nil {
		seg := w.baseline.Translate(dx, dy)
		w.baseline = &seg
	} else {
		w.baseline = nil
	}
	w.invalidateLine()
}

// PreciseFontSize returns the font size in pixels that makes the word value
// fit its box width, computed once with the given sizer
func (w *Word) PreciseFontSize(fs *FontSizer) float64 {
	if w.preciseFontSize == nil {
		size := fs.Fit(w.value, w.font, w.Bounds().Width)
		w.preciseFontSize = &size
	}
	return *w.preciseFontSize
}

// SetPreciseFontSize forces the precise font size
func (w *Word) SetPreciseFontSize(size float64) {
	w.preciseFontSize = &size
}

// IsDashed reports whether the word is made only of dash-like characters
func (w *Word) IsDashed() bool {
	if w.value == "" {
		return false
	}
	for _, r := range w.value {
		if !isDash(r) {
			return false
		}
	}
	return true
}

// IsSeparator reports whether the word is a single syllable separator
func (w *Word) IsSeparator() bool {
	r, size := utf8.DecodeRuneInString(w.value)
	return size == len(w.value) && size > 0 && IsSeparator(r)
}

// Line returns the line owning the word, if any
func (w *Word) Line() *Line {
	return w.line
}

// Glyph returns the pixel glyph registered for the word, if any
func (w *Word) Glyph() Glyph {
	return w.glyph
}

// SetGlyph associates a registered pixel glyph with the word
func (w *Word) SetGlyph(g Glyph) {
	w.glyph = g
}

// IsManual reports whether the word was entered by the user
func (w *Word) IsManual() bool {
	return w.manual
}

// IsAdjusted reports whether the word geometry was manually adjusted
func (w *Word) IsAdjusted() bool {
	return w.adjusted
}

// String returns the word value
func (w *Word) String() string {
	return w.value
}

func (w *Word) invalidateLine() {
	if w.line != nil {
		w.line.sortWords()
		w.line.invalidate()
	}
}

func isDash(r rune) bool {
	switch r {
	case '-', '_', '‐', '‑', '–', '—', '‿':
		return true
	default:
		return false
	}
}
