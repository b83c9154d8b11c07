package layout

import (
	"github.com/tsawler/scoretext/model"
	"github.com/tsawler/scoretext/score"
	"github.com/tsawler/scoretext/text"
)

// Partition splits the lines of a gutter between its upper and lower sides
type Partition struct {
	// Upper are the lines belonging to the upper side, top to bottom
	Upper []*text.Line

	// Lower are the lines belonging to the lower side, top to bottom
	Lower []*text.Line

	// Gaps are the vertical gaps from the upper reference to the first line,
	// between consecutive lines, and from the last line to the lower reference
	Gaps []float64

	// Break is the index of the largest gap, and the index in the sorted
	// lines of the first lower line
	Break int
}

// Contains reports whether the line is part of the partition, and on which side
func (p Partition) Contains(l *text.Line) (upper, ok bool) {
	for _, u := range p.Upper {
		if u == l {
			return true, true
		}
	}
	for _, lw := range p.Lower {
		if lw == l {
			return false, true
		}
	}
	return false, false
}

// Partitioner resolves the lines lying between two vertically adjacent staff
// groups, assuming the textual break coincides with the widest vertical gap
type Partitioner struct {
	skew   score.Skew
	config Config
}

// NewPartitioner creates a partitioner working in the deskewed space of skew
func NewPartitioner(skew score.Skew) *Partitioner {
	return &Partitioner{skew: skew, config: DefaultConfig()}
}

// NewPartitionerWithConfig creates a partitioner with custom configuration
func NewPartitionerWithConfig(skew score.Skew, config Config) *Partitioner {
	return &Partitioner{skew: skew, config: config}
}

// Partition splits the candidates between the upper reference a, pushed down
// by marginA, and the lower reference b, pushed up by marginB.
//
// Lines above the largest vertical gap go to the upper side, the others to
// the lower side. Ties go to the first largest gap. It returns false when
// there is no candidate.
func (p *Partitioner) Partition(a model.Segment, marginA float64, b model.Segment, marginB float64, candidates []*text.Line) (Partition, bool) {
	if len(candidates) == 0 {
		return Partition{}, false
	}

	sorted := make([]*text.Line, len(candidates))
	copy(sorted, candidates)
	text.SortByDeskewedY(sorted, p.skew)

	refA := p.skew.DeskewedSegment(a)
	refB := p.skew.DeskewedSegment(b)

	boxes := make([]model.BBox, len(sorted))
	for i, l := range sorted {
		boxes[i] = l.DeskewedBounds(p.skew)
	}

	n := len(sorted)
	gaps := make([]float64, n+1)

	first := boxes[0]
	gaps[0] = first.Top() - (refA.YAt(first.Center().X) + marginA)
	for i := 1; i < n; i++ {
		gaps[i] = boxes[i].Top() - boxes[i-1].Bottom()
	}
	last := boxes[n-1]
	gaps[n] = (refB.YAt(last.Center().X) - marginB) - last.Bottom()

	brk := 0
	for i, g := range gaps {
		if g > gaps[brk] {
			brk = i
		}
	}

	return Partition{
		Upper: sorted[:brk],
		Lower: sorted[brk:],
		Gaps:  gaps,
		Break: brk,
	}, true
}

// PurgeNeighbors removes from each system the lines that lie in the gutter
// shared with a vertically adjacent system but belong to that neighbor.
// It must run before systems are processed independently.
func (p *Partitioner) PurgeNeighbors(sheet *score.Sheet, linesBySystem map[*score.System][]*text.Line) {
	for _, pair := range sheet.Neighbors() {
		upper, lower := pair[0], pair[1]

		gutter := upper.Area.Intersection(lower.Area)
		if gutter.IsEmpty() {
			continue
		}

		a, b := upper.LastStaff(), lower.FirstStaff()
		if a == nil || b == nil {
			continue
		}

		// Lines of the upper system that belong to the lower one
		if part, ok := p.Partition(a.BottomLine, 0, b.TopLine, 0, inGutter(linesBySystem[upper], gutter)); ok {
			linesBySystem[upper] = p.purge(upper, linesBySystem[upper], part.Lower)
		}

		// Lines of the lower system that belong to the upper one
		if part, ok := p.Partition(a.BottomLine, 0, b.TopLine, 0, inGutter(linesBySystem[lower], gutter)); ok {
			linesBySystem[lower] = p.purge(lower, linesBySystem[lower], part.Upper)
		}
	}
}

func (p *Partitioner) purge(system *score.System, lines, drop []*text.Line) []*text.Line {
	if len(drop) == 0 {
		return lines
	}

	dropped := make(map[*text.Line]bool, len(drop))
	for _, l := range drop {
		dropped[l] = true
		p.config.logger().Debug("purged neighbor line",
			"system", system.ID,
			"value", l.Value())
	}

	kept := make([]*text.Line, 0, len(lines))
	for _, l := range lines {
		if !dropped[l] {
			kept = append(kept, l)
		}
	}
	return kept
}

func inGutter(lines []*text.Line, gutter model.BBox) []*text.Line {
	var candidates []*text.Line
	for _, l := range lines {
		if gutter.Contains(l.Bounds().Center()) {
			candidates = append(candidates, l)
		}
	}
	return candidates
}

type partPair struct {
	upper, lower *score.Part
}

// GutterCache decides which staff a lyrics line lying between two adjacent
// parts of a system belongs to. Each part gutter is partitioned once, using
// every lyrics line it holds. A cache serves one system and is not safe for
// concurrent use.
type GutterCache struct {
	partitioner *Partitioner
	lines       []*text.Line
	partitions  map[partPair]Partition
}

// NewGutterCache creates a cache over the final lines of one system
func NewGutterCache(partitioner *Partitioner, lines []*text.Line) *GutterCache {
	return &GutterCache{
		partitioner: partitioner,
		lines:       lines,
		partitions:  make(map[partPair]Partition),
	}
}

// Resolve returns the staff of a line lying in a part gutter of the system:
// the last staff of the upper part or the first staff of the lower part.
// It returns false when the line is not in a part gutter.
func (c *GutterCache) Resolve(system *score.System, l *text.Line) (*score.Staff, bool) {
	upper, lower, ok := system.PartGutter(l.Bounds().Center())
	if !ok {
		return nil, false
	}

	key := partPair{upper: upper, lower: lower}
	part, cached := c.partitions[key]
	if !cached {
		var candidates []*text.Line
		for _, other := range c.lines {
			if other.Role() != text.RoleLyrics && other != l {
				continue
			}
			up, low, in := system.PartGutter(other.Bounds().Center())
			if in && up == upper && low == lower {
				candidates = append(candidates, other)
			}
		}

		part, _ = c.partitioner.Partition(
			upper.LastStaff().BottomLine, 0,
			lower.FirstStaff().TopLine, 0,
			candidates)
		c.partitions[key] = part
	}

	isUpper, found := part.Contains(l)
	if !found {
		return nil, false
	}
	if isUpper {
		return upper.LastStaff(), true
	}
	return lower.FirstStaff(), true
}

// Partitions returns the number of part gutters partitioned so far
func (c *GutterCache) Partitions() int {
	return len(c.partitions)
}
