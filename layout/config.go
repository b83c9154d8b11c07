package layout

import (
	"log/slog"
)

// LyricsMode is the manual override of lyrics classification
type LyricsMode int

const (
	// LyricsFree lets the classifier decide
	LyricsFree LyricsMode = iota

	// LyricsForced classifies every line as lyrics
	LyricsForced

	// LyricsForbidden never classifies a line as lyrics
	LyricsForbidden
)

// String returns a string representation of the mode
func (m LyricsMode) String() string {
	switch m {
	case LyricsForced:
		return "forced"
	case LyricsForbidden:
		return "forbidden"
	default:
		return "free"
	}
}

// Config holds the thresholds used to reconcile the text of one system.
// Distances expressed as interline fractions are converted to pixels with the
// sheet scale.
type Config struct {
	// MinConfidence is the minimum mean confidence of a valid line (default: 0.65)
	MinConfidence float64

	// MinWordConfidence is the minimum confidence of a valid word, when known
	// (default: 0.20)
	MinWordConfidence float64

	// MinWordPixels is the minimum width and height of a valid word box in
	// pixels (default: 2)
	MinWordPixels float64

	// MaxFontInterline is the maximum font size of a word, as interline
	// fraction (default: 5.0)
	MaxFontInterline float64

	// MaxHeaderFontInterline is the maximum font size of a word located in the
	// page header, as interline fraction (default: 10.0)
	MaxHeaderFontInterline float64

	// IntrinsicRatio weighs the line confidence into its grade (default: 0.8)
	IntrinsicRatio float64

	// GradeMinLength is the line length below which the grade gets no boost
	// (default: 2)
	GradeMinLength int

	// GradeMaxLength is the line length from which the grade gets full boost
	// (default: 10)
	GradeMaxLength int

	// GradeMaxBoost is the full grade boost (default: 1.5)
	GradeMaxBoost float64

	// MaxLineDy is the maximum vertical gap between the origins of lines
	// merged into one long line, as interline fraction (default: 1.0)
	MaxLineDy float64

	// WordGapRatio is the maximum horizontal gap between two words of a line,
	// as a ratio of the line font size (default: 1.0)
	WordGapRatio float64

	// ChordWordGap is the maximum horizontal gap between two chord names of
	// a line, in pixels (default: 20)
	ChordWordGap float64

	// WordMergeRatio is the horizontal gap, as a ratio of the line font size,
	// below which two adjacent words are merged (default: 0.05)
	WordMergeRatio float64

	// CharGapRatio is the maximum horizontal gap between two chars of a word,
	// as a ratio of the word font size (default: 0.5)
	CharGapRatio float64

	// MaxFontRatio is the maximum ratio between a word precise font size and
	// the line consensus size (default: 2.0)
	MaxFontRatio float64

	// TinyLength is the width below which a line is tiny, as interline
	// fraction (default: 2.0)
	TinyLength float64

	// ShortLength is the width below which a line is short, as interline
	// fraction (default: 12.0)
	ShortLength float64

	// TitleMinHeight is the minimum height of a title line, as interline
	// fraction (default: 2.0)
	TitleMinHeight float64

	// MaxStaffDy is the maximum vertical distance of a line close to the staff,
	// as interline fraction (default: 4.0)
	MaxStaffDy float64

	// MinRightsDy is the minimum vertical distance from the last staff of a
	// rights line, as interline fraction (default: 4.0)
	MinRightsDy float64

	// MaxCenterDx is the maximum horizontal distance of a centered line center
	// from the page center, as interline fraction (default: 5.0)
	MaxCenterDx float64

	// MaxRightDx is the maximum horizontal distance of a right-aligned line end
	// from the system right limit, as interline fraction (default: 3.0)
	MaxRightDx float64

	// LyricsMode is the manual lyrics override (default: LyricsFree)
	LyricsMode LyricsMode

	// Manual keeps invalid lines and words, as for user-entered text
	Manual bool

	// Logger receives diagnostics (default: slog.Default())
	Logger *slog.Logger
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		MinConfidence:          0.65,
		MinWordConfidence:      0.20,
		MinWordPixels:          2,
		MaxFontInterline:       5.0,
		MaxHeaderFontInterline: 10.0,
		IntrinsicRatio:         0.8,
		GradeMinLength:         2,
		GradeMaxLength:         10,
		GradeMaxBoost:          1.5,
		MaxLineDy:              1.0,
		WordGapRatio:           1.0,
		ChordWordGap:           20,
		WordMergeRatio:         0.05,
		CharGapRatio:           0.5,
		MaxFontRatio:           2.0,
		TinyLength:             2.0,
		ShortLength:            12.0,
		TitleMinHeight:         2.0,
		MaxStaffDy:             4.0,
		MinRightsDy:            4.0,
		MaxCenterDx:            5.0,
		MaxRightDx:             3.0,
		LyricsMode:             LyricsFree,
	}
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}
