package layout

import (
	"sort"
	"strings"

	"github.com/tsawler/scoretext/score"
	"github.com/tsawler/scoretext/text"
)

// Recomposer turns the long lines of one system into final lines: it
// separates lyrics from standard lines, splits and merges lines and words,
// drops invalid content and normalizes font sizes.
//
// A Recomposer keeps no state between calls, but a call must not run
// concurrently with another call sharing the same lines.
type Recomposer struct {
	sheet      *score.Sheet
	config     Config
	validator  *Validator
	classifier *Classifier
	sizer      *text.FontSizer
}

// NewRecomposer creates a new recomposer with default configuration
func NewRecomposer(sheet *score.Sheet) *Recomposer {
	return NewRecomposerWithConfig(sheet, DefaultConfig())
}

// NewRecomposerWithConfig creates a recomposer with custom configuration
func NewRecomposerWithConfig(sheet *score.Sheet, config Config) *Recomposer {
	return &Recomposer{
		sheet:      sheet,
		config:     config,
		validator:  NewValidatorWithConfig(config),
		classifier: NewClassifierWithConfig(sheet, config),
		sizer:      text.DefaultFontSizer(),
	}
}

// Classifier returns the classifier used to guess line roles
func (r *Recomposer) Classifier() *Classifier {
	return r.classifier
}

// Validator returns the validator used to check lines and words
func (r *Recomposer) Validator() *Validator {
	return r.validator
}

// Recompose returns the final lines of the system, sorted by deskewed
// ordinate. Lines without words never appear in the result.
func (r *Recomposer) Recompose(system *score.System, lines []*text.Line) []*text.Line {
	lyrics, standard := r.separate(system, lines)

	lyrics = r.recomposeLyrics(lyrics)
	standard = r.recomposeStandard(system, standard)

	all := make([]*text.Line, 0, len(lyrics)+len(standard))
	all = append(all, lyrics...)
	all = append(all, standard...)
	text.SortByDeskewedY(all, r.sheet.Skew)

	all = r.normalizeFontSizes(all)

	r.config.logger().Info("recomposed system",
		"system", system.ID,
		"input", len(lines),
		"lyrics", len(lyrics),
		"standard", len(standard),
		"output", len(all))

	return all
}

// separate splits lines into lyrics and standard populations, guessing the
// role of unclassified lines. Empty lines are dropped.
func (r *Recomposer) separate(system *score.System, lines []*text.Line) (lyrics, standard []*text.Line) {
	for _, l := range lines {
		if l.IsEmpty() || strings.TrimSpace(l.Value()) == "" {
			l.SetProcessed(true)
			continue
		}

		if l.Role() == text.RoleUnset {
			r.guessRole(l, system)
		}

		if l.Role() == text.RoleLyrics {
			lyrics = append(lyrics, l)
		} else {
			standard = append(standard, l)
		}
	}
	return lyrics, standard
}

// guessRole assigns the guessed role, leaving the current one when
// classification fails
func (r *Recomposer) guessRole(l *text.Line, system *score.System) {
	role, err := r.classifier.Guess(l, system)
	if err != nil {
		r.config.logger().Warn("could not guess line role",
			"system", system.ID,
			"line", l.Value(),
			"error", err)
		return
	}
	l.SetRole(role)
}

func (r *Recomposer) recomposeLyrics(lines []*text.Line) []*text.Line {
	lines = r.validate(lines)

	for _, l := range lines {
		for _, w := range l.Words() {
			r.splitWord(l, w, true)
		}
	}
	return lines
}

func (r *Recomposer) recomposeStandard(system *score.System, lines []*text.Line) []*text.Line {
	lines = r.splitLines(system, lines)
	lines = r.validate(lines)
	lines = r.mergeLines(system, lines)
	lines = r.splitLines(system, lines)

	for _, l := range lines {
		r.recutWords(l)
	}

	kept := lines[:0]
	for _, l := range lines {
		if !l.IsEmpty() {
			kept = append(kept, l)
		}
	}
	return kept
}

// validate drops invalid lines, unless in manual mode
func (r *Recomposer) validate(lines []*text.Line) []*text.Line {
	kept := make([]*text.Line, 0, len(lines))
	for _, l := range lines {
		inHeader := r.sheet.InHeader(l.Bounds().Center())
		if reason := r.validator.CheckLine(l, r.sheet.Scale, inHeader); reason != ReasonNone {
			if !r.config.Manual {
				r.config.logger().Debug("invalid line",
					"line", l.Value(),
					"reason", string(reason))
				continue
			}
		}
		if l.IsEmpty() {
			continue
		}
		kept = append(kept, l)
	}
	return kept
}

// fontPixels returns the line font size in pixels, falling back to the line
// height when the recognizer reported no size
func (r *Recomposer) fontPixels(l *text.Line) float64 {
	if pt := l.MeanFont().PointSize; pt > 0 {
		return r.sheet.Scale.FontPixels(pt)
	}
	return l.Bounds().Height
}

// wordGap is the maximum horizontal gap between two words of the line
func (r *Recomposer) wordGap(l *text.Line) float64 {
	if l.Role() == text.RoleChordName {
		return r.config.ChordWordGap
	}
	return r.config.WordGapRatio * r.fontPixels(l)
}

// splitLines cuts lines wherever two consecutive words are too far apart.
// Each new piece gets its own role guess.
func (r *Recomposer) splitLines(system *score.System, lines []*text.Line) []*text.Line {
	var result []*text.Line

	for _, l := range lines {
		words := l.Words()
		if len(words) < 2 {
			result = append(result, l)
			continue
		}

		maxGap := r.wordGap(l)
		var pieces [][]*text.Word
		current := []*text.Word{words[0]}
		for _, w := range words[1:] {
			prev := current[len(current)-1]
			if prev.Bounds().HorizontalGap(w.Bounds()) > maxGap {
				pieces = append(pieces, current)
				current = nil
			}
			current = append(current, w)
		}
		pieces = append(pieces, current)

		if len(pieces) == 1 {
			result = append(result, l)
			continue
		}

		for _, piece := range pieces {
			nl := text.NewLine(piece...)
			nl.Staff = l.Staff
			nl.SetRole(l.Role())
			r.guessRole(nl, system)
			result = append(result, nl)
		}

		r.config.logger().Debug("split line",
			"line", l.Value(),
			"pieces", len(pieces))
	}

	return result
}

// mergeLines merges lines whose deskewed boxes, grown by the word gap
// horizontally and by the line gap vertically, intersect while their actual
// horizontal gap stays within the word gap.
//
// Lines are visited by abscissa. Each candidate is absorbed by the first
// compatible head line found; the head then becomes the candidate, until no
// further merge is possible.
func (r *Recomposer) mergeLines(system *score.System, lines []*text.Line) []*text.Line {
	skew := r.sheet.Skew
	maxDy := r.sheet.Scale.ToPixels(r.config.MaxLineDy)

	for _, l := range lines {
		l.SetProcessed(false)
	}
	sorted := make([]*text.Line, len(lines))
	copy(sorted, lines)
	text.SortByDeskewedX(sorted, skew)

	var heads []*text.Line
	for _, line := range sorted {
		if line.IsProcessed() {
			continue
		}

		candidate := line
		for {
			target := r.mergeTarget(heads, candidate, maxDy)
			if target == nil {
				break
			}

			r.config.logger().Debug("merging lines",
				"target", target.Value(),
				"candidate", candidate.Value())

			target.AddWords(candidate.Words()...)
			candidate.SetProcessed(true)
			r.guessRole(target, system)
			candidate = target
		}

		if !line.IsProcessed() {
			heads = append(heads, line)
		}
	}

	result := make([]*text.Line, 0, len(heads))
	for _, h := range heads {
		if !h.IsProcessed() && !h.IsEmpty() {
			result = append(result, h)
		}
	}
	return result
}

func (r *Recomposer) mergeTarget(heads []*text.Line, candidate *text.Line, maxDy float64) *text.Line {
	skew := r.sheet.Skew
	gap := r.wordGap(candidate)
	box := candidate.DeskewedBounds(skew)
	grown := box.Grow(gap, maxDy)

	for _, head := range heads {
		if head == candidate || head.IsProcessed() {
			continue
		}
		headBox := head.DeskewedBounds(skew)
		if grown.Intersects(headBox) && box.HorizontalGap(headBox) <= gap {
			return head
		}
	}
	return nil
}

// recutWords merges adjacent words that are too close, then splits each word
// on whitespace and excessive char gaps
func (r *Recomposer) recutWords(l *text.Line) {
	maxGap := r.config.WordMergeRatio * r.fontPixels(l)

	words := l.Words()
	for i := 0; i+1 < len(words); i++ {
		a, b := words[i], words[i+1]
		if a.Bounds().HorizontalGap(b.Bounds()) < maxGap {
			merged := text.MergeWords(a, b)
			l.RemoveWords(a, b)
			l.AddWords(merged)
			words[i+1] = merged
		}
	}

	for _, w := range l.Words() {
		r.splitWord(l, w, false)
	}
}

// splitWord replaces the word with the sub-words found by the scanner
func (r *Recomposer) splitWord(l *text.Line, w *text.Word, syllables bool) {
	chars := w.Chars()
	if w.IsManual() && len(chars) == 0 {
		return
	}

	maxGap := 0.0
	if pt := w.Font().PointSize; pt > 0 {
		maxGap = r.config.CharGapRatio * r.sheet.Scale.FontPixels(pt)
	}

	var scanner *text.Scanner
	if w.IsManual() {
		scanner = text.NewManualScanner(w.Value(), syllables, maxGap, chars)
	} else {
		scanner = text.NewOCRScanner(w.Value(), syllables, maxGap, chars)
	}

	runs := scanner.Runs()
	if len(runs) == 1 && runs[0].Value == w.Value() {
		return
	}

	subs := make([]*text.Word, 0, len(runs))
	for _, run := range runs {
		subs = append(subs, w.Split(run))
	}
	l.ReplaceWord(w, subs...)
}

// normalizeFontSizes snaps the precise font size of each word to the line
// consensus, dropping words whose size is implausible and lines left empty
func (r *Recomposer) normalizeFontSizes(lines []*text.Line) []*text.Line {
	kept := lines[:0]
	for _, l := range lines {
		consensus := r.consensusSize(l)
		if consensus > 0 {
			var drop []*text.Word
			for _, w := range l.Words() {
				if w.IsDashed() {
					continue
				}
				if !r.snap(w, consensus) && !r.config.Manual && !w.IsManual() {
					drop = append(drop, w)
				}
			}
			if len(drop) > 0 {
				r.config.logger().Debug("dropped words with implausible font size",
					"line", l.Value(),
					"count", len(drop))
				l.RemoveWords(drop...)
			}
		}

		if !l.IsEmpty() {
			kept = append(kept, l)
		}
	}
	return kept
}

// consensusSize is the median precise font size of the non-dashed words
func (r *Recomposer) consensusSize(l *text.Line) float64 {
	var sizes []float64
	for _, w := range l.Words() {
		if w.IsDashed() {
			continue
		}
		if size := w.PreciseFontSize(r.sizer); size > 0 {
			sizes = append(sizes, size)
		}
	}
	if len(sizes) == 0 {
		return 0
	}

	sort.Float64s(sizes)
	mid := len(sizes) / 2
	if len(sizes)%2 == 0 {
		return (sizes[mid-1] + sizes[mid]) / 2
	}
	return sizes[mid]
}

// snap adjusts the word precise font size to the consensus, returning false
// when the word size is too far from it
func (r *Recomposer) snap(w *text.Word, consensus float64) bool {
	size := w.PreciseFontSize(r.sizer)
	if size <= 0 {
		return false
	}

	ratio := size / consensus
	if ratio > r.config.MaxFontRatio || ratio < 1/r.config.MaxFontRatio {
		return false
	}

	w.SetPreciseFontSize(consensus)
	return true
}
