package scoretext

import (
	"io"
	"log/slog"

	"github.com/tsawler/scoretext/model"
	"github.com/tsawler/scoretext/score"
	"github.com/tsawler/scoretext/text"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

// makeLine creates a one-word line with 10x20 chars from (x, y)
func makeLine(value string, x, y float64, role text.Role) *text.Line {
	var chars []text.Char
	for _, r := range value {
		chars = append(chars, text.NewChar(model.NewBBox(x, y, 10, 20), string(r)))
		x += 10
	}
	l := text.NewLine(text.NewWord(value, 0.9, text.Font{Monospace: true, PointSize: 12}, chars))
	l.SetRole(role)
	return l
}

func makeSystem(id int, top, bottom float64, area model.BBox) *score.System {
	staff := &score.Staff{
		ID:         id,
		Left:       100,
		Right:      1100,
		TopLine:    model.NewSegment(model.Point{X: 100, Y: top}, model.Point{X: 1100, Y: top}),
		BottomLine: model.NewSegment(model.Point{X: 100, Y: bottom}, model.Point{X: 1100, Y: bottom}),
	}
	return &score.System{
		ID:    id,
		Left:  100,
		Right: 1100,
		Parts: []*score.Part{{Staves: []*score.Staff{staff}}},
		Area:  area,
	}
}

// makeSheet creates two systems, staves at 200-280 and 700-780, whose
// areas overlap between 400 and 600
func makeSheet() *score.Sheet {
	return &score.Sheet{
		Width:  1200,
		Height: 1000,
		Systems: []*score.System{
			makeSystem(0, 200, 280, model.NewBBox(0, 0, 1200, 600)),
			makeSystem(1, 700, 780, model.NewBBox(0, 400, 1200, 600)),
		},
		Scale:    score.Scale{Interline: 20, Resolution: 300},
		Switches: score.DefaultSwitches(),
	}
}

// sampleLines returns the raw lines of both systems; the upper system also
// saw the lyrics of the lower one
func sampleLines(sheet *score.Sheet) map[*score.System][]*text.Line {
	upper, lower := sheet.Systems[0], sheet.Systems[1]
	return map[*score.System][]*text.Line{
		upper: {
			makeLine("Kyrie", 300, 300, text.RoleLyrics),
			makeLine("Christe", 300, 560, text.RoleLyrics),
		},
		lower: {
			makeLine("Christe", 300, 560, text.RoleLyrics),
		},
	}
}
