package graph

import (
	"strings"

	"github.com/tsawler/scoretext/score"
	"github.com/tsawler/scoretext/text"
)

// ItemKind is the kind of a lyric item
type ItemKind int

const (
	ItemSyllable ItemKind = iota
	ItemHyphen
	ItemExtension
	ItemElision
)

func (k ItemKind) String() string {
	switch k {
	case ItemHyphen:
		return "Hyphen"
	case ItemExtension:
		return "Extension"
	case ItemElision:
		return "Elision"
	default:
		return "Syllable"
	}
}

// Syllabic is the position of a syllable within its word
type Syllabic int

const (
	SyllabicSingle Syllabic = iota
	SyllabicBegin
	SyllabicMiddle
	SyllabicEnd
)

func (s Syllabic) String() string {
	switch s {
	case SyllabicBegin:
		return "begin"
	case SyllabicMiddle:
		return "middle"
	case SyllabicEnd:
		return "end"
	default:
		return "single"
	}
}

// LyricItem is one item of a lyric line
type LyricItem struct {
	*Word
	Kind ItemKind

	// Syllabic is only meaningful for syllables
	Syllabic Syllabic
}

// LyricLine is a line of lyrics under a staff
type LyricLine struct {
	base
	items []*LyricItem
}

func (ll *LyricLine) Type() EntityType { return EntityTypeLyricLine }

// Items returns the lyric items in reading order
func (ll *LyricLine) Items() []*LyricItem {
	out := make([]*LyricItem, len(ll.items))
	copy(out, ll.items)
	return out
}

// Syllables returns the syllable items only
func (ll *LyricLine) Syllables() []*LyricItem {
	var out []*LyricItem
	for _, it := range ll.items {
		if it.Kind == ItemSyllable {
			out = append(out, it)
		}
	}
	return out
}

// Value returns the lyrics with hyphenated syllables joined back together
func (ll *LyricLine) Value() string {
	var sb strings.Builder
	for i, it := range ll.items {
		switch it.Kind {
		case ItemSyllable:
			if i > 0 && (it.Syllabic == SyllabicSingle || it.Syllabic == SyllabicBegin) &&
				ll.items[i-1].Kind != ItemElision {
				sb.WriteByte(' ')
			}
			sb.WriteString(it.Value)
		case ItemHyphen:
			sb.WriteByte('-')
		case ItemElision:
			sb.WriteString(it.Value)
		case ItemExtension:
			sb.WriteString(" _")
		}
	}
	return sb.String()
}

// NewLyricLine builds a lyric line. Separator words become hyphen,
// extension or elision items; a hyphen links the syllables around it.
func NewLyricLine(l *text.Line, staff *score.Staff) *LyricLine {
	ll := &LyricLine{base: newBase(l, staff)}

	for _, w := range ll.words {
		ll.items = append(ll.items, &LyricItem{Word: w, Kind: kindOf(w.Value)})
	}

	for i, it := range ll.items {
		if it.Kind != ItemSyllable {
			continue
		}
		before := i > 0 && ll.items[i-1].Kind == ItemHyphen
		after := i+1 < len(ll.items) && ll.items[i+1].Kind == ItemHyphen
		switch {
		case before && after:
			it.Syllabic = SyllabicMiddle
		case before:
			it.Syllabic = SyllabicEnd
		case after:
			it.Syllabic = SyllabicBegin
		}
	}

	return ll
}

func kindOf(value string) ItemKind {
	switch value {
	case "-":
		return ItemHyphen
	case "_":
		return ItemExtension
	case "‿":
		return ItemElision
	default:
		return ItemSyllable
	}
}
