package model

import "math"

// Point represents a 2D point in pixel space
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Translate returns the point moved by (dx, dy)
func (p Point) Translate(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// BBox represents a bounding box (rectangle) in image coordinates.
// Y grows downward, so Top() <= Bottom().
type BBox struct {
	X      float64 // Left
	Y      float64 // Top
	Width  float64
	Height float64
}

// NewBBox creates a bounding box from coordinates
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// NewBBoxFromPoints creates a bounding box from two points
func NewBBoxFromPoints(p1, p2 Point) BBox {
	x := math.Min(p1.X, p2.X)
	y := math.Min(p1.Y, p2.Y)
	width := math.Abs(p2.X - p1.X)
	height := math.Abs(p2.Y - p1.Y)
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate
func (b BBox) Left() float64 {
	return b.X
}

// Right returns the right edge X coordinate
func (b BBox) Right() float64 {
	return b.X + b.Width
}

// Top returns the top edge Y coordinate
func (b BBox) Top() float64 {
	return b.Y
}

// Bottom returns the bottom edge Y coordinate
func (b BBox) Bottom() float64 {
	return b.Y + b.Height
}

// Center returns the center point
func (b BBox) Center() Point {
	return Point{
		X: b.X + b.Width/2,
		Y: b.Y + b.Height/2,
	}
}

// Corners returns the four corners, clockwise from top-left
func (b BBox) Corners() [4]Point {
	return [4]Point{
		{X: b.Left(), Y: b.Top()},
		{X: b.Right(), Y: b.Top()},
		{X: b.Right(), Y: b.Bottom()},
		{X: b.Left(), Y: b.Bottom()},
	}
}

// Contains checks if a point is inside the bounding box
func (b BBox) Contains(p Point) bool {
	return p.X >= b.Left() && p.X <= b.Right() &&
		p.Y >= b.Top() && p.Y <= b.Bottom()
}

// ContainsBox checks if other lies entirely inside the bounding box
func (b BBox) ContainsBox(other BBox) bool {
	return other.Left() >= b.Left() && other.Right() <= b.Right() &&
		other.Top() >= b.Top() && other.Bottom() <= b.Bottom()
}

// Intersects checks if two bounding boxes intersect
func (b BBox) Intersects(other BBox) bool {
	return !(b.Right() < other.Left() ||
		b.Left() > other.Right() ||
		b.Bottom() < other.Top() ||
		b.Top() > other.Bottom())
}

// Intersection returns the intersection of two bounding boxes
func (b BBox) Intersection(other BBox) BBox {
	if !b.Intersects(other) {
		return BBox{}
	}

	x := math.Max(b.Left(), other.Left())
	y := math.Max(b.Top(), other.Top())
	right := math.Min(b.Right(), other.Right())
	bottom := math.Min(b.Bottom(), other.Bottom())

	return BBox{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: bottom - y,
	}
}

// Union returns the union of two bounding boxes
func (b BBox) Union(other BBox) BBox {
	x := math.Min(b.Left(), other.Left())
	y := math.Min(b.Top(), other.Top())
	right := math.Max(b.Right(), other.Right())
	bottom := math.Max(b.Bottom(), other.Bottom())

	return BBox{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: bottom - y,
	}
}

// Area returns the area of the bounding box
func (b BBox) Area() float64 {
	return b.Width * b.Height
}

// Expand expands the bounding box by a margin on all sides
func (b BBox) Expand(margin float64) BBox {
	return b.Grow(margin, margin)
}

// Grow expands the bounding box by dx horizontally and dy vertically on each side
func (b BBox) Grow(dx, dy float64) BBox {
	return BBox{
		X:      b.X - dx,
		Y:      b.Y - dy,
		Width:  b.Width + 2*dx,
		Height: b.Height + 2*dy,
	}
}

// Translate returns the bounding box moved by (dx, dy)
func (b BBox) Translate(dx, dy float64) BBox {
	return BBox{X: b.X + dx, Y: b.Y + dy, Width: b.Width, Height: b.Height}
}

// HorizontalGap returns the horizontal distance between two boxes,
// or 0 when their abscissa ranges overlap
func (b BBox) HorizontalGap(other BBox) float64 {
	gap := math.Max(b.Left(), other.Left()) - math.Min(b.Right(), other.Right())
	return math.Max(0, gap)
}

// OverlapRatio calculates the overlap ratio with another box
// Returns value between 0 and 1
func (b BBox) OverlapRatio(other BBox) float64 {
	if !b.Intersects(other) {
		return 0
	}

	intersection := b.Intersection(other)
	minArea := math.Min(b.Area(), other.Area())

	if minArea == 0 {
		return 0
	}

	return intersection.Area() / minArea
}

// IsEmpty returns true if the bounding box has zero area
func (b BBox) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// IsValid returns true if the bounding box has positive dimensions
func (b BBox) IsValid() bool {
	return b.Width > 0 && b.Height > 0
}

// Segment is a straight line between two points, used for baselines and
// staff lines.
type Segment struct {
	P1, P2 Point
}

// NewSegment creates a segment from its two end points
func NewSegment(p1, p2 Point) Segment {
	return Segment{P1: p1, P2: p2}
}

// YAt returns the ordinate of the segment's supporting line at abscissa x.
// A vertical segment returns the ordinate of its first point.
func (s Segment) YAt(x float64) float64 {
	dx := s.P2.X - s.P1.X
	if dx == 0 {
		return s.P1.Y
	}
	return s.P1.Y + (x-s.P1.X)*(s.P2.Y-s.P1.Y)/dx
}

// Slope returns dy/dx, or 0 for a vertical segment
func (s Segment) Slope() float64 {
	dx := s.P2.X - s.P1.X
	if dx == 0 {
		return 0
	}
	return (s.P2.Y - s.P1.Y) / dx
}

// Length returns the distance between the end points
func (s Segment) Length() float64 {
	return s.P1.Distance(s.P2)
}

// Translate returns the segment moved by (dx, dy)
func (s Segment) Translate(dx, dy float64) Segment {
	return Segment{P1: s.P1.Translate(dx, dy), P2: s.P2.Translate(dx, dy)}
}

// Matrix represents a 2D affine transformation matrix
type Matrix [6]float64

// Identity returns an identity matrix
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

// Transform applies the matrix transformation to a point
func (m Matrix) Transform(p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// TransformBox returns the bounding box of the transformed corners of b
func (m Matrix) TransformBox(b BBox) BBox {
	corners := b.Corners()
	first := m.Transform(corners[0])
	minX, maxX, minY, maxY := first.X, first.X, first.Y, first.Y
	for _, c := range corners[1:] {
		p := m.Transform(c)
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return BBox{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Multiply multiplies two matrices
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		m[0]*other[0] + m[1]*other[2],
		m[0]*other[1] + m[1]*other[3],
		m[2]*other[0] + m[3]*other[2],
		m[2]*other[1] + m[3]*other[3],
		m[4]*other[0] + m[5]*other[2] + other[4],
		m[4]*other[1] + m[5]*other[3] + other[5],
	}
}

// Translate creates a translation matrix
func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// Rotate creates a rotation matrix (angle in radians)
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

// IsIdentity returns true if the matrix is an identity matrix
func (m Matrix) IsIdentity() bool {
	return m[0] == 1 && m[1] == 0 && m[2] == 0 && m[3] == 1 && m[4] == 0 && m[5] == 0
}
