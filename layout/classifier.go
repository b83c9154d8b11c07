package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/tsawler/scoretext/score"
	"github.com/tsawler/scoretext/text"
)

// ErrNoStaff is returned when a line is classified against a system without
// staves
var ErrNoStaff = errors.New("system has no staff")

// ClassificationError reports an unexpected failure while guessing the role
// of a line
type ClassificationError struct {
	// Line is the value of the line being classified
	Line string

	// Err is the underlying cause
	Err error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("failed to classify line %q: %v", e.Line, e.Err)
}

func (e *ClassificationError) Unwrap() error {
	return e.Err
}

// Classifier assigns a semantic role to text lines from their position
// relative to the staves, their geometry and their content
type Classifier struct {
	sheet  *score.Sheet
	config Config
}

// NewClassifier creates a new classifier with default configuration
func NewClassifier(sheet *score.Sheet) *Classifier {
	return &Classifier{sheet: sheet, config: DefaultConfig()}
}

// NewClassifierWithConfig creates a classifier with custom configuration
func NewClassifierWithConfig(sheet *score.Sheet, config Config) *Classifier {
	return &Classifier{sheet: sheet, config: config}
}

// features gathers the predicates the decision procedure works on
type features struct {
	systemPos score.StaffPosition
	partPos   score.StaffPosition
	part      *score.Part

	tiny         bool
	short        bool
	tall         bool
	leftOfStaves bool
	rightAligned bool
	centered     bool
	closeToStaff bool
	farFromStaff bool

	allChords bool
	italic    bool
	vowel     bool

	firstSystem bool
	lastSystem  bool
}

// Guess returns the most likely role of the line within the system.
// It never panics; unexpected failures are returned as *ClassificationError.
func (c *Classifier) Guess(l *text.Line, system *score.System) (role text.Role, err error) {
	defer func() {
		if r := recover(); r != nil {
			role = text.RoleUnset
			err = &ClassificationError{Line: l.Value(), Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	if l.IsEmpty() {
		return text.RoleUnknown, nil
	}
	if system.FirstStaff() == nil {
		return text.RoleUnset, &ClassificationError{Line: l.Value(), Err: ErrNoStaff}
	}

	if c.config.LyricsMode == LyricsForced {
		return text.RoleLyrics, nil
	}

	f := c.features(l, system)
	return c.decide(f), nil
}

func (c *Classifier) decide(f features) text.Role {
	switches := c.sheet.Switches
	allowed := c.config.LyricsMode != LyricsForbidden
	lyrics := allowed && switches.Enabled(score.SwitchLyrics)
	aboveStaff := switches.Enabled(score.SwitchLyricsAboveStaff)
	either := allowed && (switches.Enabled(score.SwitchLyrics) || aboveStaff)

	chordOr := func(other text.Role) text.Role {
		if f.allChords {
			return text.RoleChordName
		}
		return other
	}

	switch f.systemPos {
	case score.Above:
		if f.firstSystem {
			switch {
			case f.tiny:
				return chordOr(text.RoleUnknown)
			case f.leftOfStaves:
				return text.RoleCreatorLyricist
			case f.rightAligned:
				return text.RoleCreatorComposer
			case f.closeToStaff:
				return chordOr(text.RoleDirection)
			case f.centered:
				if f.tall {
					return text.RoleTitle
				}
				return text.RoleNumber
			}
			return text.RoleUnknown
		}

		switch {
		case f.allChords:
			return text.RoleChordName
		case lyrics && f.vowel && aboveStaff && !f.italic:
			return text.RoleLyrics
		default:
			return text.RoleDirection
		}

	case score.Within:
		switch {
		case f.leftOfStaves:
			return text.RolePartName
		case f.allChords && f.partPos == score.Above:
			return text.RoleChordName
		case either && f.vowel && !f.italic &&
			(f.partPos == score.Below || (f.partPos == score.Above && aboveStaff)):
			return text.RoleLyrics
		case !f.tiny:
			return text.RoleDirection
		}

	case score.Below:
		switch {
		case f.tiny:
			return text.RoleUnknown
		case f.italic:
			return text.RoleDirection
		case f.centered && f.short && f.lastSystem && f.farFromStaff:
			return text.RoleRights
		case f.part != nil && len(f.part.Staves) == 1 &&
			lyrics && f.vowel && f.partPos == score.Below && !f.italic:
			return text.RoleLyrics
		}
	}

	return text.RoleUnknown
}

func (c *Classifier) features(l *text.Line, system *score.System) features {
	scale := c.sheet.Scale
	box := l.Bounds()
	center := box.Center()

	f := features{
		systemPos:   system.StaffPosition(center),
		firstSystem: c.sheet.IsFirst(system),
		lastSystem:  c.sheet.IsLast(system),
	}

	if f.systemPos == score.Below {
		f.part = system.LastPart()
	} else {
		f.part = system.ClosestPart(center)
	}
	if f.part != nil {
		f.partPos = f.part.StaffPosition(center)
	}

	f.tiny = box.Width < scale.ToPixels(c.config.TinyLength)
	f.short = box.Width < scale.ToPixels(c.config.ShortLength)
	f.tall = box.Height >= scale.ToPixels(c.config.TitleMinHeight)

	left, right := system.Left, system.Right
	if left == 0 && right == 0 {
		if staff := system.FirstStaff(); staff != nil {
			left, right = staff.Left, staff.Right
		}
	}
	f.leftOfStaves = box.Right() < left
	f.rightAligned = math.Abs(box.Right()-right) <= scale.ToPixels(c.config.MaxRightDx)
	f.centered = math.Abs(center.X-c.sheet.CenterX()) <= scale.ToPixels(c.config.MaxCenterDx)

	first, last := system.FirstStaff(), system.LastStaff()
	f.closeToStaff = first.TopAt(center.X)-box.Bottom() <= scale.ToPixels(c.config.MaxStaffDy)
	f.farFromStaff = box.Top()-last.BottomAt(center.X) >= scale.ToPixels(c.config.MinRightsDy)

	f.allChords = c.sheet.Switches.Enabled(score.SwitchChordNames) && l.AllWords(isChordWord)
	f.italic = l.IsMainlyItalic()
	f.vowel = l.HasVowel()

	return f
}
