package text

import (
	"github.com/tsawler/scoretext/model"
)

// makeChars lays out one char per rune, each w pixels wide with a gap of
// spacing pixels, starting at (x, y)
func makeChars(value string, x, y, w, h, spacing float64) []Char {
	var chars []Char
	for _, r := range value {
		chars = append(chars, NewChar(model.NewBBox(x, y, w, h), string(r)))
		x += w + spacing
	}
	return chars
}

// makeWord creates a recognized word at (x, y) with 10x20 chars
func makeWord(value string, x, y, conf float64) *Word {
	return NewWord(value, conf, Font{PointSize: 12}, makeChars(value, x, y, 10, 20, 0))
}
