// Package model provides the geometric primitives shared by every stage of
// score text reconciliation.
//
// All coordinates live in the pixel space of the scanned sheet, with Y
// growing downward.
//
// # Geometry
//
//   - [Point] - 2D point with distance calculation
//   - [BBox] - bounding box with intersection, union, growth and gap helpers
//   - [Segment] - straight line between two points (baselines, staff lines)
//   - [Matrix] - 2D affine transformation matrix, used for deskewing
//
// Boxes are values; every operation returns a new box:
//
//	core := line.Bounds().Grow(wordGap, lineGap)
//	if core.Intersects(other) {
//	    merged := line.Bounds().Union(other)
//	}
package model
