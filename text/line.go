package text

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/scoretext/model"
	"github.com/tsawler/scoretext/score"
)

// Line is a sequence of words kept sorted by abscissa.
//
// Bounds, baseline, confidence and mean font are derived from the words,
// cached, and invalidated by every mutation of the word sequence. A line
// without words is degenerate and must be dropped by callers.
type Line struct {
	words []*Word
	role  Role

	// processed marks lines already consumed by a multi-pass algorithm
	processed bool

	// Staff is the staff the line is known to belong to, if any
	Staff *score.Staff

	bounds     *model.BBox
	baseline   *model.Segment
	confidence *float64
	font       *Font
}

// NewLine creates a line owning the given words
func NewLine(words ...*Word) *Line {
	l := &Line{}
	l.AddWords(words...)
	return l
}

// Words returns a copy of the line words in abscissa order
func (l *Line) Words() []*Word {
	ws := make([]*Word, len(l.words))
	copy(ws, l.words)
	return ws
}

// WordCount returns the number of words
func (l *Line) WordCount() int {
	return len(l.words)
}

// IsEmpty reports whether the line has no words
func (l *Line) IsEmpty() bool {
	return len(l.words) == 0
}

// AddWords appends words to the line, taking ownership of them
func (l *Line) AddWords(words ...*Word) {
	for _, w := range words {
		if w == nil {
			continue
		}
		w.line = l
		l.words = append(l.words, w)
	}
	l.sortWords()
	l.invalidate()
}

// RemoveWords removes the given words from the line
func (l *Line) RemoveWords(words ...*Word) {
	if len(words) == 0 {
		return
	}
	drop := make(map[*Word]bool, len(words))
	for _, w := range words {
		drop[w] = true
	}

	kept := l.words[:0]
	for _, w := range l.words {
		if drop[w] {
			if w.line == l {
				w.line = nil
			}
			continue
		}
		kept = append(kept, w)
	}
	for i := len(kept); i < len(l.words); i++ {
		l.words[i] = nil
	}
	l.words = kept
	l.invalidate()
}

// ReplaceWord substitutes old with the given words
func (l *Line) ReplaceWord(old *Word, subs ...*Word) {
	l.RemoveWords(old)
	l.AddWords(subs...)
}

// Bounds returns the union of the word boxes
func (l *Line) Bounds() model.BBox {
	if l.bounds == nil {
		box := BoundsOf(l.words)
		l.bounds = &box
	}
	return *l.bounds
}

// Baseline returns the segment from the first word baseline start to the
// last word baseline end
func (l *Line) Baseline() model.Segment {
	if l.baseline == nil {
		seg := BaselineOf(l.words)
		l.baseline = &seg
	}
	return *l.baseline
}

// Confidence returns the mean word confidence, or UnknownConfidence
func (l *Line) Confidence() float64 {
	if l.confidence == nil {
		c := ConfidenceOf(l.words)
		l.confidence = &c
	}
	return *l.confidence
}

// MeanFont returns the majority-vote font of the line words
func (l *Line) MeanFont() Font {
	if l.font == nil {
		f := MeanFont(l.words)
		l.font = &f
	}
	return *l.font
}

// Value returns the word values joined by single spaces
func (l *Line) Value() string {
	values := make([]string, 0, len(l.words))
	for _, w := range l.words {
		values = append(values, w.Value())
	}
	return strings.Join(values, " ")
}

// Length returns the number of characters over all words
func (l *Line) Length() int {
	n := 0
	for _, w := range l.words {
		n += w.Length()
	}
	return n
}

// Role returns the line role
func (l *Line) Role() Role {
	return l.role
}

// SetRole assigns the line role
func (l *Line) SetRole(r Role) {
	l.role = r
}

// IsProcessed reports whether the line was consumed by the current pass
func (l *Line) IsProcessed() bool {
	return l.processed
}

// SetProcessed marks or clears the processed flag
func (l *Line) SetProcessed(b bool) {
	l.processed = b
}

// Translate moves every word by (dx, dy)
func (l *Line) Translate(dx, dy float64) {
	for _, w := range l.Words() {
		w.Translate(dx, dy)
	}
	l.invalidate()
}

// DeskewedOrigin returns the deskewed start of the line baseline
func (l *Line) DeskewedOrigin(skew score.Skew) model.Point {
	return skew.Deskewed(l.Baseline().P1)
}

// DeskewedBounds returns the line box in deskewed coordinates
func (l *Line) DeskewedBounds(skew score.Skew) model.BBox {
	return skew.DeskewedBox(l.Bounds())
}

// IsMainlyItalic reports whether reliable words (longer than one character)
// are mostly italic
func (l *Line) IsMainlyItalic() bool {
	reliable, italic := 0, 0
	for _, w := range l.words {
		if w.Length() <= 1 {
			continue
		}
		reliable++
		if w.Font().Italic {
			italic++
		}
	}
	return reliable > 0 && 2*italic >= reliable
}

// HasVowel reports whether the line value contains at least one vowel,
// accented vowels included
func (l *Line) HasVowel() bool {
	for _, w := range l.words {
		if HasVowel(w.Value()) {
			return true
		}
	}
	return false
}

// AllWords reports whether every word satisfies the predicate.
// A line without words never does.
func (l *Line) AllWords(pred func(*Word) bool) bool {
	if len(l.words) == 0 {
		return false
	}
	for _, w := range l.words {
		if !pred(w) {
			return false
		}
	}
	return true
}

// String returns the line value
func (l *Line) String() string {
	return l.Value()
}

func (l *Line) sortWords() {
	sort.SliceStable(l.words, func(i, j int) bool {
		return l.words[i].Bounds().Left() < l.words[j].Bounds().Left()
	})
}

func (l *Line) invalidate() {
	l.bounds = nil
	l.baseline = nil
	l.confidence = nil
	l.font = nil
}

// HasVowel reports whether s contains a Latin vowel, ignoring diacritics
func HasVowel(s string) bool {
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		switch unicode.ToLower(r) {
		case 'a', 'e', 'i', 'o', 'u', 'y', 'æ', 'œ', 'ø':
			return true
		}
	}
	return false
}

// SortByDeskewedY sorts lines by the ordinate of their deskewed origin
func SortByDeskewedY(lines []*Line, skew score.Skew) {
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].DeskewedOrigin(skew).Y < lines[j].DeskewedOrigin(skew).Y
	})
}

// SortByDeskewedX sorts lines by the abscissa of their deskewed origin
func SortByDeskewedX(lines []*Line, skew score.Skew) {
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].DeskewedOrigin(skew).X < lines[j].DeskewedOrigin(skew).X
	})
}
