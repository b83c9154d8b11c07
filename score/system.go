package score

import (
	"math"

	"github.com/tsawler/scoretext/model"
)

// System is one horizontal band of staves read together. It is the unit of
// text reconciliation.
type System struct {
	// ID identifies the system within the sheet (0-based, top to bottom)
	ID int

	// Parts are ordered top to bottom
	Parts []*Part

	// Area is the system outline; areas of neighboring systems overlap in
	// their common gutter
	Area model.BBox

	// Left and Right are the system horizontal limits in pixels
	Left, Right float64
}

// Staves returns every staff of the system, top to bottom
func (s *System) Staves() []*Staff {
	var staves []*Staff
	for _, p := range s.Parts {
		staves = append(staves, p.Staves...)
	}
	return staves
}

// FirstStaff returns the top staff of the system
func (s *System) FirstStaff() *Staff {
	if len(s.Parts) == 0 {
		return nil
	}
	return s.Parts[0].FirstStaff()
}

// LastStaff returns the bottom staff of the system
func (s *System) LastStaff() *Staff {
	if len(s.Parts) == 0 {
		return nil
	}
	return s.Parts[len(s.Parts)-1].LastStaff()
}

// FirstPart returns the top part of the system
func (s *System) FirstPart() *Part {
	if len(s.Parts) == 0 {
		return nil
	}
	return s.Parts[0]
}

// LastPart returns the bottom part of the system
func (s *System) LastPart() *Part {
	if len(s.Parts) == 0 {
		return nil
	}
	return s.Parts[len(s.Parts)-1]
}

// StaffPosition locates p relative to the whole set of system staves
func (s *System) StaffPosition(p model.Point) StaffPosition {
	first, last := s.FirstStaff(), s.LastStaff()
	if first == nil {
		return Within
	}
	if p.Y < first.TopAt(p.X) {
		return Above
	}
	if p.Y > last.BottomAt(p.X) {
		return Below
	}
	return Within
}

// ClosestStaff returns the staff nearest to p, or nil for a staff-less system
func (s *System) ClosestStaff(p model.Point) *Staff {
	var best *Staff
	bestDist := math.MaxFloat64
	for _, staff := range s.Staves() {
		if d := staff.Distance(p); d < bestDist {
			best, bestDist = staff, d
		}
	}
	return best
}

// StaffAbove returns the closest staff whose bottom line lies above p
func (s *System) StaffAbove(p model.Point) *Staff {
	var best *Staff
	for _, staff := range s.Staves() {
		if staff.BottomAt(p.X) <= p.Y {
			best = staff
		}
	}
	return best
}

// PartOf returns the part owning the staff
func (s *System) PartOf(staff *Staff) *Part {
	for _, p := range s.Parts {
		if p.Contains(staff) {
			return p
		}
	}
	return nil
}

// ClosestPart returns the part owning the staff closest to p
func (s *System) ClosestPart(p model.Point) *Part {
	return s.PartOf(s.ClosestStaff(p))
}

// PartGutter returns the two adjacent parts whose gutter contains p, when p
// lies below the last staff of one part and above the first staff of the next
func (s *System) PartGutter(p model.Point) (upper, lower *Part, ok bool) {
	for i := 0; i+1 < len(s.Parts); i++ {
		up, low := s.Parts[i], s.Parts[i+1]
		if up.LastStaff() == nil || low.FirstStaff() == nil {
			continue
		}
		if p.Y > up.LastStaff().BottomAt(p.X) && p.Y < low.FirstStaff().TopAt(p.X) {
			return up, low, true
		}
	}
	return nil, nil, false
}

// Switch names a processing switch
type Switch string

const (
	// SwitchLyrics enables lyrics recognition
	SwitchLyrics Switch = "lyrics"

	// SwitchLyricsAboveStaff allows lyrics lines located above a staff
	SwitchLyricsAboveStaff Switch = "lyricsAboveStaff"

	// SwitchChordNames enables chord name recognition
	SwitchChordNames Switch = "chordNames"
)

// Switches holds the named boolean processing switches.
// A missing switch is disabled.
type Switches map[Switch]bool

// DefaultSwitches returns the switches used when none are configured
func DefaultSwitches() Switches {
	return Switches{
		SwitchLyrics:           true,
		SwitchLyricsAboveStaff: false,
		SwitchChordNames:       true,
	}
}

// Enabled reports whether the switch is on
func (s Switches) Enabled(sw Switch) bool {
	return s[sw]
}

// Clone returns a copy of the switches
func (s Switches) Clone() Switches {
	out := make(Switches, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Sheet is one scanned page of the score
type Sheet struct {
	// Width and Height of the page in pixels
	Width, Height float64

	// Systems are ordered top to bottom
	Systems []*System

	// Scale is the global pixel scale
	Scale Scale

	// Skew is the global page skew
	Skew Skew

	// Switches are the processing switches in effect
	Switches Switches
}

// IsFirst reports whether s is the first system of the page
func (sh *Sheet) IsFirst(s *System) bool {
	return len(sh.Systems) > 0 && sh.Systems[0] == s
}

// IsLast reports whether s is the last system of the page
func (sh *Sheet) IsLast(s *System) bool {
	return len(sh.Systems) > 0 && sh.Systems[len(sh.Systems)-1] == s
}

// InHeader reports whether p lies in the header region, the area above the
// first staff of the first system
func (sh *Sheet) InHeader(p model.Point) bool {
	if len(sh.Systems) == 0 {
		return false
	}
	first := sh.Systems[0].FirstStaff()
	if first == nil {
		return false
	}
	return p.Y < first.TopAt(p.X)
}

// Neighbors returns each pair of vertically adjacent systems
func (sh *Sheet) Neighbors() [][2]*System {
	var pairs [][2]*System
	for i := 0; i+1 < len(sh.Systems); i++ {
		pairs = append(pairs, [2]*System{sh.Systems[i], sh.Systems[i+1]})
	}
	return pairs
}

// CenterX returns the horizontal center of the page
func (sh *Sheet) CenterX() float64 {
	return sh.Width / 2
}
