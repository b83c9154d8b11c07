package score

import (
	"math"

	"github.com/tsawler/scoretext/model"
)

// DefaultResolution is the scan resolution assumed when none is provided (dpi)
const DefaultResolution = 300.0

// Scale converts between interline fractions and pixels
type Scale struct {
	// Interline is the distance in pixels between two staff lines
	Interline float64

	// Resolution is the scan resolution in dots per inch (default: 300)
	Resolution float64
}

// ToPixels converts an interline fraction to pixels
func (s Scale) ToPixels(fraction float64) float64 {
	return fraction * s.Interline
}

// ToFraction converts pixels to an interline fraction
func (s Scale) ToFraction(pixels float64) float64 {
	if s.Interline == 0 {
		return 0
	}
	return pixels / s.Interline
}

// FontPixels converts a font point size to pixels at the scan resolution
func (s Scale) FontPixels(points float64) float64 {
	return points * s.resolution() / 72
}

// FontPoints converts a pixel height to a font point size
func (s Scale) FontPoints(pixels float64) float64 {
	return pixels * 72 / s.resolution()
}

func (s Scale) resolution() float64 {
	if s.Resolution <= 0 {
		return DefaultResolution
	}
	return s.Resolution
}

// Skew is the global page skew. Deskewed coordinates remove it so that
// staff lines become horizontal. The zero value is no skew.
type Skew struct {
	// Angle is the skew angle in radians (positive when lines descend to the right)
	Angle float64
}

// NewSkew creates a skew from the slope (dy/dx) of the staff lines
func NewSkew(slope float64) Skew {
	return Skew{Angle: math.Atan(slope)}
}

// Deskewed maps a pixel point to deskewed coordinates
func (s Skew) Deskewed(p model.Point) model.Point {
	if s.Angle == 0 {
		return p
	}
	return model.Rotate(-s.Angle).Transform(p)
}

// Skewed maps a deskewed point back to pixel coordinates
func (s Skew) Skewed(p model.Point) model.Point {
	if s.Angle == 0 {
		return p
	}
	return model.Rotate(s.Angle).Transform(p)
}

// DeskewedBox returns the bounding box of the deskewed corners of b
func (s Skew) DeskewedBox(b model.BBox) model.BBox {
	if s.Angle == 0 {
		return b
	}
	return model.Rotate(-s.Angle).TransformBox(b)
}

// DeskewedSegment maps both end points of a segment to deskewed coordinates
func (s Skew) DeskewedSegment(seg model.Segment) model.Segment {
	return model.Segment{P1: s.Deskewed(seg.P1), P2: s.Deskewed(seg.P2)}
}

// StaffPosition locates a point vertically relative to a group of staves
type StaffPosition int

const (
	Above StaffPosition = iota
	Within
	Below
)

// String returns a string representation of the position
func (p StaffPosition) String() string {
	switch p {
	case Above:
		return "above"
	case Within:
		return "within"
	case Below:
		return "below"
	default:
		return "unknown"
	}
}

// Staff is one staff, delimited by its first (top) and last (bottom) lines
type Staff struct {
	// ID identifies the staff within the sheet
	ID int

	// Left and Right are the staff horizontal limits in pixels
	Left, Right float64

	// TopLine and BottomLine are the first and last staff lines
	TopLine, BottomLine model.Segment
}

// TopAt returns the ordinate of the top line at abscissa x
func (s *Staff) TopAt(x float64) float64 {
	return s.TopLine.YAt(x)
}

// BottomAt returns the ordinate of the bottom line at abscissa x
func (s *Staff) BottomAt(x float64) float64 {
	return s.BottomLine.YAt(x)
}

// Bounds returns the box enclosing the staff lines
func (s *Staff) Bounds() model.BBox {
	top := math.Min(s.TopAt(s.Left), s.TopAt(s.Right))
	bottom := math.Max(s.BottomAt(s.Left), s.BottomAt(s.Right))
	return model.BBox{X: s.Left, Y: top, Width: s.Right - s.Left, Height: bottom - top}
}

// Distance returns the distance from p to the staff band, 0 when p lies on it
func (s *Staff) Distance(p model.Point) float64 {
	dy := 0.0
	if top := s.TopAt(p.X); p.Y < top {
		dy = top - p.Y
	} else if bottom := s.BottomAt(p.X); p.Y > bottom {
		dy = p.Y - bottom
	}

	dx := 0.0
	if p.X < s.Left {
		dx = s.Left - p.X
	} else if p.X > s.Right {
		dx = p.X - s.Right
	}

	return math.Sqrt(dx*dx + dy*dy)
}

// Position locates p vertically relative to this single staff
func (s *Staff) Position(p model.Point) StaffPosition {
	if p.Y < s.TopAt(p.X) {
		return Above
	}
	if p.Y > s.BottomAt(p.X) {
		return Below
	}
	return Within
}

// Part is a group of staves read together (one instrument or voice)
type Part struct {
	// ID identifies the part within its system
	ID int

	// Name is the optional part name
	Name string

	// Staves are ordered top to bottom
	Staves []*Staff
}

// FirstStaff returns the top staff of the part
func (p *Part) FirstStaff() *Staff {
	if p == nil || len(p.Staves) == 0 {
		return nil
	}
	return p.Staves[0]
}

// LastStaff returns the bottom staff of the part
func (p *Part) LastStaff() *Staff {
	if p == nil || len(p.Staves) == 0 {
		return nil
	}
	return p.Staves[len(p.Staves)-1]
}

// StaffPosition locates pt relative to the part's staves
func (p *Part) StaffPosition(pt model.Point) StaffPosition {
	first, last := p.FirstStaff(), p.LastStaff()
	if first == nil {
		return Within
	}
	if pt.Y < first.TopAt(pt.X) {
		return Above
	}
	if pt.Y > last.BottomAt(pt.X) {
		return Below
	}
	return Within
}

// Contains reports whether the staff belongs to the part
func (p *Part) Contains(staff *Staff) bool {
	for _, s := range p.Staves {
		if s == staff {
			return true
		}
	}
	return false
}
