package layout

import (
	"strings"

	"github.com/tsawler/scoretext/score"
	"github.com/tsawler/scoretext/text"
)

// Reason explains why a word or a line is invalid.
// ReasonNone means valid.
type Reason string

const (
	ReasonNone              Reason = ""
	ReasonEmptyValue        Reason = "empty-value"
	ReasonTinyBox           Reason = "tiny-box"
	ReasonLowWordConfidence Reason = "low-word-confidence"
	ReasonLowConfidence     Reason = "low-confidence"
	ReasonInvalidFontSize   Reason = "invalid-font-size"
)

// Validator checks the plausibility of recognized words and lines
type Validator struct {
	config Config
}

// NewValidator creates a new validator with default configuration
func NewValidator() *Validator {
	return &Validator{config: DefaultConfig()}
}

// NewValidatorWithConfig creates a validator with custom configuration
func NewValidatorWithConfig(config Config) *Validator {
	return &Validator{config: config}
}

// CheckWord returns why the word is invalid, or ReasonNone.
// Invalid words can be removed without invalidating the rest of their line.
func (v *Validator) CheckWord(w *text.Word) Reason {
	if strings.TrimSpace(w.Value()) == "" {
		return ReasonEmptyValue
	}

	box := w.Bounds()
	if box.Width < v.config.MinWordPixels || box.Height < v.config.MinWordPixels {
		return ReasonTinyBox
	}

	if c := w.Confidence(); c >= 0 && c < v.config.MinWordConfidence {
		return ReasonLowWordConfidence
	}

	return ReasonNone
}

// CheckLine removes the invalid words of the line, then returns why the line
// is invalid, or ReasonNone.
//
// A line is invalid when its mean confidence is undefined or below the
// minimum, or when one of its words has a font larger than allowed. The
// header region allows larger fonts.
func (v *Validator) CheckLine(l *text.Line, scale score.Scale, inHeader bool) Reason {
	var invalid []*text.Word
	for _, w := range l.Words() {
		if reason := v.CheckWord(w); reason != ReasonNone {
			v.config.logger().Debug("invalid word",
				"word", w.Value(),
				"reason", string(reason))
			invalid = append(invalid, w)
		}
	}
	l.RemoveWords(invalid...)

	if c := l.Confidence(); c < 0 || c < v.config.MinConfidence {
		return ReasonLowConfidence
	}

	if scale.Interline > 0 {
		maxFont := v.config.MaxFontInterline
		if inHeader {
			maxFont = v.config.MaxHeaderFontInterline
		}
		limit := scale.ToPixels(maxFont)

		for _, w := range l.Words() {
			if scale.FontPixels(w.Font().PointSize) > limit {
				return ReasonInvalidFontSize
			}
		}
	}

	return ReasonNone
}

// Grade returns the quality score of a line: its confidence weighed by the
// intrinsic ratio and boosted as the line gets longer, capped at 1
func (v *Validator) Grade(l *text.Line) float64 {
	conf := l.Confidence()
	if conf < 0 {
		return 0
	}

	boost := 1.0
	length := l.Length()
	minLen, maxLen := v.config.GradeMinLength, v.config.GradeMaxLength
	switch {
	case length >= maxLen:
		boost = v.config.GradeMaxBoost
	case length > minLen && maxLen > minLen:
		ratio := float64(length-minLen) / float64(maxLen-minLen)
		boost = 1 + ratio*(v.config.GradeMaxBoost-1)
	}

	grade := conf * v.config.IntrinsicRatio * boost
	if grade > 1 {
		return 1
	}
	return grade
}
