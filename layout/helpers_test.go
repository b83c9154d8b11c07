package layout

import (
	"github.com/tsawler/scoretext/model"
	"github.com/tsawler/scoretext/score"
	"github.com/tsawler/scoretext/text"
)

// monoFont gives every char the same advance, so precise font sizes only
// depend on char widths
var monoFont = text.Font{Monospace: true, PointSize: 12}

// makeChars lays out one char per rune, each w by h pixels, from (x, y)
func makeChars(value string, x, y, w, h float64) []text.Char {
	var chars []text.Char
	for _, r := range value {
		chars = append(chars, text.NewChar(model.NewBBox(x, y, w, h), string(r)))
		x += w
	}
	return chars
}

// makeWord creates a word with 10x20 chars whose top-left corner is (x, y)
func makeWord(value string, x, y, conf float64) *text.Word {
	return text.NewWord(value, conf, monoFont, makeChars(value, x, y, 10, 20))
}

// makeSizedWord creates a word with w by h chars
func makeSizedWord(value string, x, y, w, h, conf float64, font text.Font) *text.Word {
	return text.NewWord(value, conf, font, makeChars(value, x, y, w, h))
}

// makeLine creates a line of one word per value, words spaced by 20 pixels
func makeLine(x, y, conf float64, values ...string) *text.Line {
	var words []*text.Word
	for _, v := range values {
		w := makeWord(v, x, y, conf)
		words = append(words, w)
		x = w.Bounds().Right() + 20
	}
	return text.NewLine(words...)
}

func makeStaff(id int, left, right, top, bottom float64) *score.Staff {
	return &score.Staff{
		ID:         id,
		Left:       left,
		Right:      right,
		TopLine:    model.NewSegment(model.Point{X: left, Y: top}, model.Point{X: right, Y: top}),
		BottomLine: model.NewSegment(model.Point{X: left, Y: bottom}, model.Point{X: right, Y: bottom}),
	}
}

// makeSystem creates a system of one single-staff part per (top, bottom) pair
func makeSystem(id int, bands ...[2]float64) *score.System {
	sys := &score.System{ID: id, Left: 100, Right: 1100}
	for i, b := range bands {
		staff := makeStaff(id*10+i, 100, 1100, b[0], b[1])
		sys.Parts = append(sys.Parts, &score.Part{ID: i, Staves: []*score.Staff{staff}})
	}
	if len(bands) > 0 {
		top := bands[0][0] - 200
		bottom := bands[len(bands)-1][1] + 200
		sys.Area = model.NewBBox(0, top, 1200, bottom-top)
	}
	return sys
}

// makeSheet creates a 1200x1600 page with interline 20 at 300 dpi
func makeSheet(systems ...*score.System) *score.Sheet {
	return &score.Sheet{
		Width:    1200,
		Height:   1600,
		Systems:  systems,
		Scale:    score.Scale{Interline: 20, Resolution: 300},
		Switches: score.DefaultSwitches(),
	}
}

func values(lines []*text.Line) []string {
	var vs []string
	for _, l := range lines {
		vs = append(vs, l.Value())
	}
	return vs
}

func wordValues(l *text.Line) []string {
	var vs []string
	for _, w := range l.Words() {
		vs = append(vs, w.Value())
	}
	return vs
}
