package text

import (
	"math"
	"unicode"
)

// Syllable separators: hyphen, extension and elision
const (
	Hyphen    = '-'
	Extension = '_'
	Elision   = '‿'
)

// IsSeparator reports whether r separates lyric syllables
func IsSeparator(r rune) bool {
	return r == Hyphen || r == Extension || r == Elision
}

// Run is one maximal sub-string found by a Scanner, with the inclusive range
// of matching char indices. Start and Stop are -1 when there are no chars.
type Run struct {
	Value string
	Start int
	Stop  int
}

// Scanner splits a string value into words or syllables.
//
// A run breaks on whitespace, whenever the abscissa gap between two
// consecutive chars exceeds the maximum gap, and, in syllable mode, around
// each separator character, which is emitted as its own one-character run.
//
// Usage follows bufio.Scanner:
//
//	s := text.NewOCRScanner(word.Value(), false, maxGap, word.Chars())
//	for s.Next() {
//	    run := s.Run()
//	}
//
// Reset restarts the scan from the beginning.
type Scanner struct {
	runes     []rune
	syllables bool
	maxGap    float64
	chars     []Char
	charIndex func(strIndex int) int

	pos int
	run Run
}

// NewOCRScanner creates a scanner for recognizer output, where each string
// character maps to the char at the same index.
// A non-positive maxGap disables gap breaking.
func NewOCRScanner(value string, syllables bool, maxGap float64, chars []Char) *Scanner {
	s := newScanner(value, syllables, maxGap, chars)
	s.charIndex = func(i int) int {
		return s.clamp(i)
	}
	return s
}

// NewManualScanner creates a scanner for manually entered text, where the
// rendered char count may differ from the string length. String index i maps
// to char index round(i × charCount / stringLength).
func NewManualScanner(value string, syllables bool, maxGap float64, chars []Char) *Scanner {
	s := newScanner(value, syllables, maxGap, chars)
	s.charIndex = func(i int) int {
		if len(s.runes) == 0 {
			return s.clamp(0)
		}
		ratio := float64(len(s.chars)) / float64(len(s.runes))
		return s.clamp(int(math.Round(float64(i) * ratio)))
	}
	return s
}

func newScanner(value string, syllables bool, maxGap float64, chars []Char) *Scanner {
	return &Scanner{
		runes:     []rune(value),
		syllables: syllables,
		maxGap:    maxGap,
		chars:     chars,
	}
}

// Next advances to the next run, returning false when the value is exhausted
func (s *Scanner) Next() bool {
	n := len(s.runes)
	for s.pos < n && unicode.IsSpace(s.runes[s.pos]) {
		s.pos++
	}
	if s.pos >= n {
		return false
	}

	start := s.pos
	end := start

	if !(s.syllables && IsSeparator(s.runes[start])) {
		for i := start + 1; i < n; i++ {
			r := s.runes[i]
			if unicode.IsSpace(r) {
				break
			}
			if s.syllables && IsSeparator(r) {
				break
			}
			if s.gapExceeded(i-1, i) {
				break
			}
			end = i
		}
	}

	s.pos = end + 1
	s.run = Run{
		Value: string(s.runes[start : end+1]),
		Start: s.charIndex(start),
		Stop:  s.charIndex(end),
	}
	return true
}

// Run returns the current run
func (s *Scanner) Run() Run {
	return s.run
}

// Reset restarts the scan from the beginning of the value
func (s *Scanner) Reset() {
	s.pos = 0
	s.run = Run{}
}

// Runs resets the scanner and returns every run
func (s *Scanner) Runs() []Run {
	s.Reset()
	var runs []Run
	for s.Next() {
		runs = append(runs, s.Run())
	}
	return runs
}

func (s *Scanner) gapExceeded(prev, next int) bool {
	if s.maxGap <= 0 || len(s.chars) == 0 {
		return false
	}
	a, b := s.charIndex(prev), s.charIndex(next)
	if a == b {
		return false
	}
	gap := s.chars[b].Bounds().Left() - s.chars[a].Bounds().Right()
	return gap > s.maxGap
}

func (s *Scanner) clamp(i int) int {
	if len(s.chars) == 0 {
		return -1
	}
	if i < 0 {
		return 0
	}
	if i >= len(s.chars) {
		return len(s.chars) - 1
	}
	return i
}
