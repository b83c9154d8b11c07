package graph

import (
	"github.com/tsawler/scoretext/model"
	"github.com/tsawler/scoretext/score"
	"github.com/tsawler/scoretext/text"
)

// makeLine creates a line of one word per value, with 10x20 chars from
// (x, y) and words spaced by 20 pixels
func makeLine(x, y float64, values ...string) *text.Line {
	var words []*text.Word
	for _, v := range values {
		var chars []text.Char
		for _, r := range v {
			chars = append(chars, text.NewChar(model.NewBBox(x, y, 10, 20), string(r)))
			x += 10
		}
		words = append(words, text.NewWord(v, 0.9, text.Font{PointSize: 12}, chars))
		x += 20
	}
	return text.NewLine(words...)
}

func makeStaff(id int, top, bottom float64) *score.Staff {
	return &score.Staff{
		ID:         id,
		Left:       100,
		Right:      1100,
		TopLine:    model.NewSegment(model.Point{X: 100, Y: top}, model.Point{X: 1100, Y: top}),
		BottomLine: model.NewSegment(model.Point{X: 100, Y: bottom}, model.Point{X: 1100, Y: bottom}),
	}
}

// makeSystem creates a system of two single-staff parts, at 100-180 and
// 400-480
func makeSystem() (*score.Sheet, *score.System) {
	sys := &score.System{
		Left:  100,
		Right: 1100,
		Parts: []*score.Part{
			{ID: 0, Name: "Soprano", Staves: []*score.Staff{makeStaff(0, 100, 180)}},
			{ID: 1, Name: "Alto", Staves: []*score.Staff{makeStaff(1, 400, 480)}},
		},
		Area: model.NewBBox(0, 0, 1200, 700),
	}
	sheet := &score.Sheet{
		Width:    1200,
		Height:   1600,
		Systems:  []*score.System{sys},
		Scale:    score.Scale{Interline: 20, Resolution: 300},
		Switches: score.DefaultSwitches(),
	}
	return sheet, sys
}
