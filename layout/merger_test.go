package layout

import (
	"reflect"
	"testing"

	"github.com/tsawler/scoretext/score"
	"github.com/tsawler/scoretext/text"
)

func TestMergeCloseLines(t *testing.T) {
	// Origins at 100 and 101.2 are within one interline (20 pixels)
	right := makeLine(300, 80, 0.9, "Domine")
	left := makeLine(100, 81.2, 0.9, "Deus")

	m := NewLineMerger()
	got := m.Merge([]*text.Line{right, left}, testScale, score.Skew{})

	if len(got) != 1 {
		t.Fatalf("Merge() returned %d lines, want 1", len(got))
	}
	if want := []string{"Deus", "Domine"}; !reflect.DeepEqual(wordValues(got[0]), want) {
		t.Errorf("merged words = %v, want %v", wordValues(got[0]), want)
	}
	if want := right.Bounds().Union(left.Bounds()); got[0].Bounds() != want {
		t.Errorf("Bounds() = %+v, want %+v", got[0].Bounds(), want)
	}
	if got[0].Length() != right.Length()+left.Length() {
		t.Errorf("Length() = %d, want %d", got[0].Length(), right.Length()+left.Length())
	}
}

func TestMergeDistantLines(t *testing.T) {
	first := makeLine(100, 80, 0.9, "Soprano")
	second := makeLine(100, 200, 0.9, "Alto")

	m := NewLineMerger()
	got := m.Merge([]*text.Line{second, first}, testScale, score.Skew{})

	if len(got) != 2 {
		t.Fatalf("Merge() returned %d lines, want 2", len(got))
	}
	// Single-line chunks pass through unchanged
	if got[0] != first || got[1] != second {
		t.Errorf("Merge() = %v, want the input lines in vertical order", values(got))
	}
}

func TestMergeChain(t *testing.T) {
	// Each origin is within the gap of the previous one, not of the first
	a := makeLine(100, 100, 0.9, "a")
	b := makeLine(200, 115, 0.9, "b")
	c := makeLine(300, 130, 0.9, "c")
	d := makeLine(400, 300, 0.9, "d")

	m := NewLineMerger()
	got := m.Merge([]*text.Line{d, c, b, a}, testScale, score.Skew{})

	if want := []string{"a b c", "d"}; !reflect.DeepEqual(values(got), want) {
		t.Errorf("Merge() = %v, want %v", values(got), want)
	}
}

func TestMergeSkewed(t *testing.T) {
	// On a page descending 1 pixel every 100, two fragments of one line
	skew := score.NewSkew(0.01)
	left := makeLine(0, 100, 0.9, "lux")
	right := makeLine(1000, 110, 0.9, "aeterna")
	below := makeLine(0, 160, 0.9, "luceat")

	m := NewLineMerger()
	got := m.Merge([]*text.Line{below, right, left}, testScale, skew)

	if want := []string{"lux aeterna", "luceat"}; !reflect.DeepEqual(values(got), want) {
		t.Errorf("Merge() = %v, want %v", values(got), want)
	}
}

func TestMergeDropsEmptyLines(t *testing.T) {
	m := NewLineMerger()
	got := m.Merge([]*text.Line{text.NewLine(), makeLine(0, 0, 0.9, "x")}, testScale, score.Skew{})

	if len(got) != 1 {
		t.Errorf("Merge() returned %d lines, want 1", len(got))
	}
	if got := m.Merge(nil, testScale, score.Skew{}); got != nil {
		t.Errorf("Merge(nil) = %v, want nil", got)
	}
}
