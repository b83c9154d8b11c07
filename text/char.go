package text

import (
	"github.com/tsawler/scoretext/model"
)

// UnknownConfidence marks a confidence the recognizer did not report
const UnknownConfidence = -1.0

// Bounded is implemented by every text item with a box and a value
type Bounded interface {
	Bounds() model.BBox
	Value() string
}

// Recognized is implemented by text items the recognizer reports with a
// baseline and a confidence
type Recognized interface {
	Bounded
	Baseline() model.Segment
	Confidence() float64
}

// Glyph is the pixel evidence registered for a word
type Glyph interface {
	Bounds() model.BBox
	Weight() int
}

// Char is the smallest recognized unit: a box and a one-character value.
// Chars are immutable.
type Char struct {
	bounds model.BBox
	value  string
}

// NewChar creates a char
func NewChar(bounds model.BBox, value string) Char {
	return Char{bounds: bounds, value: value}
}

// Bounds returns the char bounding box
func (c Char) Bounds() model.BBox {
	return c.bounds
}

// Value returns the char value
func (c Char) Value() string {
	return c.value
}

// Translated returns a copy of the char moved by (dx, dy)
func (c Char) Translated(dx, dy float64) Char {
	return Char{bounds: c.bounds.Translate(dx, dy), value: c.value}
}

// BoundsOf returns the union of the item boxes, or an empty box for no items
func BoundsOf[T Bounded](items []T) model.BBox {
	if len(items) == 0 {
		return model.BBox{}
	}
	box := items[0].Bounds()
	for _, item := range items[1:] {
		box = box.Union(item.Bounds())
	}
	return box
}

// ConfidenceOf returns the mean of the known item confidences, or
// UnknownConfidence when none is known
func ConfidenceOf[T Recognized](items []T) float64 {
	total := 0.0
	count := 0
	for _, item := range items {
		if c := item.Confidence(); c >= 0 {
			total += c
			count++
		}
	}
	if count == 0 {
		return UnknownConfidence
	}
	return total / float64(count)
}

// BaselineOf returns the segment from the first item's baseline start to the
// last item's baseline end
func BaselineOf[T Recognized](items []T) model.Segment {
	if len(items) == 0 {
		return model.Segment{}
	}
	return model.Segment{
		P1: items[0].Baseline().P1,
		P2: items[len(items)-1].Baseline().P2,
	}
}
