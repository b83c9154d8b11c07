package glyph

import (
	"image"
	"sort"
)

// Section is a vertical run of foreground pixels in one column
type Section struct {
	// ID identifies the section within its table
	ID int

	// X is the column
	X int

	// Top and Bottom are the first and last rows of the run, inclusive
	Top, Bottom int
}

// Bounds returns the pixel rectangle of the run
func (s *Section) Bounds() image.Rectangle {
	return image.Rect(s.X, s.Top, s.X+1, s.Bottom+1)
}

// Weight returns the number of pixels in the run
func (s *Section) Weight() int {
	return s.Bottom - s.Top + 1
}

// Sectioner returns the sections wholly contained in a region
type Sectioner interface {
	SectionsIn(r image.Rectangle) []*Section
}

// RunTable indexes the vertical runs of a buffer by column.
// It is immutable once built and safe for concurrent use.
type RunTable struct {
	bounds  image.Rectangle
	columns [][]*Section
	count   int
}

// NewRunTable builds the vertical runs of every column of the buffer
func NewRunTable(buf *Buffer) *RunTable {
	t := &RunTable{
		bounds:  buf.Bounds(),
		columns: make([][]*Section, buf.Width()),
	}

	id := 0
	for x := 0; x < buf.Width(); x++ {
		top := -1
		for y := 0; y <= buf.Height(); y++ {
			fg := y < buf.Height() && buf.IsForeground(x, y)
			switch {
			case fg && top < 0:
				top = y
			case !fg && top >= 0:
				t.columns[x] = append(t.columns[x], &Section{ID: id, X: x, Top: top, Bottom: y - 1})
				id++
				top = -1
			}
		}
	}
	t.count = id

	return t
}

// Len returns the number of sections
func (t *RunTable) Len() int {
	return t.count
}

// SectionsIn returns the sections wholly contained in r, by column then row
func (t *RunTable) SectionsIn(r image.Rectangle) []*Section {
	r = r.Intersect(t.bounds)
	if r.Empty() {
		return nil
	}

	var sections []*Section
	for x := r.Min.X; x < r.Max.X; x++ {
		column := t.columns[x]
		// First run not ending above the region
		start := sort.Search(len(column), func(i int) bool {
			return column[i].Bottom >= r.Min.Y
		})
		for _, s := range column[start:] {
			if s.Top >= r.Max.Y {
				break
			}
			if s.Top >= r.Min.Y && s.Bottom < r.Max.Y {
				sections = append(sections, s)
			}
		}
	}
	return sections
}
