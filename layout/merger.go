package layout

import (
	"github.com/tsawler/scoretext/score"
	"github.com/tsawler/scoretext/text"
)

// LineMerger groups raw recognized lines into long lines by vertical
// proximity
type LineMerger struct {
	config Config
}

// NewLineMerger creates a new line merger with default configuration
func NewLineMerger() *LineMerger {
	return &LineMerger{config: DefaultConfig()}
}

// NewLineMergerWithConfig creates a line merger with custom configuration
func NewLineMergerWithConfig(config Config) *LineMerger {
	return &LineMerger{config: config}
}

// Merge returns the long lines built from the raw lines.
//
// Lines are walked by deskewed origin ordinate. Consecutive lines whose
// origins are within MaxLineDy of the previous one form a chunk; the words of
// a chunk are concatenated, in deskewed abscissa order, into one new line.
// A chunk of one line is returned unchanged.
func (m *LineMerger) Merge(lines []*text.Line, scale score.Scale, skew score.Skew) []*text.Line {
	if len(lines) == 0 {
		return nil
	}

	sorted := make([]*text.Line, 0, len(lines))
	for _, l := range lines {
		if !l.IsEmpty() {
			sorted = append(sorted, l)
		}
	}
	text.SortByDeskewedY(sorted, skew)

	maxDy := scale.ToPixels(m.config.MaxLineDy)

	var longLines []*text.Line
	var chunk []*text.Line
	lastY := 0.0

	for _, l := range sorted {
		y := l.DeskewedOrigin(skew).Y
		if len(chunk) > 0 && y-lastY > maxDy {
			longLines = append(longLines, m.flush(chunk, skew))
			chunk = nil
		}
		chunk = append(chunk, l)
		lastY = y
	}
	if len(chunk) > 0 {
		longLines = append(longLines, m.flush(chunk, skew))
	}

	return longLines
}

func (m *LineMerger) flush(chunk []*text.Line, skew score.Skew) *text.Line {
	if len(chunk) == 1 {
		return chunk[0]
	}

	text.SortByDeskewedX(chunk, skew)

	var words []*text.Word
	var staff *score.Staff
	for _, l := range chunk {
		words = append(words, l.Words()...)
		if staff == nil {
			staff = l.Staff
		}
	}

	merged := text.NewLine(words...)
	merged.Staff = staff

	m.config.logger().Debug("merged lines",
		"count", len(chunk),
		"value", merged.Value())

	return merged
}
