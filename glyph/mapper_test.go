package glyph

import (
	"image"
	"testing"

	"github.com/tsawler/scoretext/model"
	"github.com/tsawler/scoretext/text"
)

// makeWord creates a word of 10x20 chars starting at (x, y)
func makeWord(value string, x, y float64) *text.Word {
	var chars []text.Char
	for i, r := range []rune(value) {
		chars = append(chars, text.NewChar(model.NewBBox(x+float64(i)*12, y, 10, 20), string(r)))
	}
	return text.NewWord(value, 0.9, text.Font{PointSize: 12}, chars)
}

func newTestMapper(t *testing.T, ink ...image.Rectangle) (*Mapper, *Index) {
	t.Helper()
	buf, err := NewBuffer(400, 200)
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}
	for _, r := range ink {
		buf.Fill(r)
	}
	idx := NewIndex()
	return NewMapper(NewRunTable(buf), idx), idx
}

func TestMapAttachesGlyphs(t *testing.T) {
	m, idx := newTestMapper(t,
		image.Rect(11, 12, 19, 28), // under "a"
		image.Rect(23, 12, 31, 28), // under "b"
	)

	w := makeWord("ab", 10, 10)
	l := text.NewLine(w)

	got := m.Map([]*text.Line{l})
	if len(got) != 1 {
		t.Fatalf("Map() returned %d lines, want 1", len(got))
	}
	g := w.Glyph()
	if g == nil {
		t.Fatal("Glyph() = nil, want glyph")
	}
	if g.Weight() != 2*8*16 {
		t.Errorf("Weight() = %d, want %d", g.Weight(), 2*8*16)
	}
	if idx.Len() != 1 {
		t.Errorf("Len() = %d, want 1", idx.Len())
	}
}

func TestMapShorterWordsFirst(t *testing.T) {
	// The long word box covers the only ink, which belongs to the short word
	m, _ := newTestMapper(t, image.Rect(101, 12, 109, 28))

	long := makeWord("lengthy", 100, 10)
	short := makeWord("i", 100, 10)
	longLine := text.NewLine(long)
	shortLine := text.NewLine(short)

	got := m.Map([]*text.Line{longLine, shortLine})

	if len(got) != 1 || got[0] != shortLine {
		t.Fatalf("Map() = %v, want only the short word line", got)
	}
	if short.Glyph() == nil {
		t.Error("short word has no glyph")
	}
	if !longLine.IsEmpty() {
		t.Error("long word without free sections not dropped")
	}
}

func TestMapKeepsManualWords(t *testing.T) {
	m, _ := newTestMapper(t)

	manual := text.NewManualWord(model.NewBBox(200, 100, 40, 20), "Fine", text.Font{})
	adjusted := makeWord("dal", 300, 100)
	adjusted.SetBounds(model.NewBBox(300, 100, 30, 20))
	plain := makeWord("segno", 50, 150)

	l := text.NewLine(manual, adjusted, plain)
	got := m.Map([]*text.Line{l})

	if len(got) != 1 {
		t.Fatalf("Map() returned %d lines, want 1", len(got))
	}
	words := got[0].Words()
	if len(words) != 2 || words[0] != manual || words[1] != adjusted {
		t.Errorf("Map() words = %v, want [Fine dal]", words)
	}
	if manual.Glyph() != nil {
		t.Error("manual word over blank paper got a glyph")
	}
}

func TestMapEmpty(t *testing.T) {
	m, _ := newTestMapper(t)
	if got := m.Map(nil); len(got) != 0 {
		t.Errorf("Map(nil) = %v, want empty", got)
	}
}
