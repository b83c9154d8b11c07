package graph

import (
	"strings"

	"github.com/google/uuid"

	"github.com/tsawler/scoretext/model"
	"github.com/tsawler/scoretext/score"
	"github.com/tsawler/scoretext/text"
)

// EntityType represents the kind of score entity
type EntityType int

const (
	EntityTypeUnknown EntityType = iota
	EntityTypeSentence
	EntityTypeLyricLine
	EntityTypeChordName
)

func (et EntityType) String() string {
	switch et {
	case EntityTypeSentence:
		return "Sentence"
	case EntityTypeLyricLine:
		return "LyricLine"
	case EntityTypeChordName:
		return "ChordName"
	default:
		return "Unknown"
	}
}

// Entity is the interface for all emitted score entities
type Entity interface {
	ID() uuid.UUID
	Type() EntityType
	Role() text.Role
	Staff() *score.Staff
	BoundingBox() model.BBox
	Value() string
	Words() []*Word

	// Grade is the quality of the source line in [0, 1]
	Grade() float64
}

// Word is the score entity of one recognized word
type Word struct {
	ID         uuid.UUID
	Value      string
	BBox       model.BBox
	Baseline   model.Segment
	Confidence float64
	Font       text.Font
	Glyph      text.Glyph
	Staff      *score.Staff
}

// newWord builds the entity of a text word
func newWord(w *text.Word, staff *score.Staff) *Word {
	return &Word{
		ID:         uuid.New(),
		Value:      w.Value(),
		BBox:       w.Bounds(),
		Baseline:   w.Baseline(),
		Confidence: w.Confidence(),
		Font:       w.Font(),
		Glyph:      w.Glyph(),
		Staff:      staff,
	}
}

// base holds the fields shared by all entities
type base struct {
	id    uuid.UUID
	role  text.Role
	staff *score.Staff
	bbox  model.BBox
	grade float64
	words []*Word
}

func (b *base) ID() uuid.UUID           { return b.id }
func (b *base) Role() text.Role         { return b.role }
func (b *base) Staff() *score.Staff     { return b.staff }
func (b *base) BoundingBox() model.BBox { return b.bbox }
func (b *base) Grade() float64          { return b.grade }

func (b *base) setGrade(g float64) { b.grade = g }

func (b *base) Words() []*Word {
	out := make([]*Word, len(b.words))
	copy(out, b.words)
	return out
}

func (b *base) Value() string {
	values := make([]string, len(b.words))
	for i, w := range b.words {
		values[i] = w.Value
	}
	return strings.Join(values, " ")
}

func newBase(l *text.Line, staff *score.Staff) base {
	b := base{
		id:    uuid.New(),
		role:  l.Role(),
		staff: staff,
		bbox:  l.Bounds(),
	}
	for _, w := range l.Words() {
		b.words = append(b.words, newWord(w, staff))
	}
	return b
}

// Sentence is a plain text line: title, direction, credits, rights...
type Sentence struct {
	base
}

func (s *Sentence) Type() EntityType { return EntityTypeSentence }

// NewSentence builds a sentence from a line
func NewSentence(l *text.Line, staff *score.Staff) *Sentence {
	return &Sentence{base: newBase(l, staff)}
}

// ChordName is a line of chord symbols
type ChordName struct {
	base
}

func (c *ChordName) Type() EntityType { return EntityTypeChordName }

// Symbols returns the chord symbols in reading order
func (c *ChordName) Symbols() []string {
	symbols := make([]string, len(c.words))
	for i, w := range c.words {
		symbols[i] = w.Value
	}
	return symbols
}

// NewChordName builds a chord name line
func NewChordName(l *text.Line, staff *score.Staff) *ChordName {
	return &ChordName{base: newBase(l, staff)}
}
