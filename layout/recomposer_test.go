package layout

import (
	"bytes"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/tsawler/scoretext/score"
	"github.com/tsawler/scoretext/text"
)

func newTestRecomposer(sheet *score.Sheet, buf *bytes.Buffer) *Recomposer {
	cfg := DefaultConfig()
	cfg.Logger = slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewRecomposerWithConfig(sheet, cfg)
}

func TestRecomposeDropsEmptyLines(t *testing.T) {
	sys := makeSystem(0, [2]float64{400, 480})
	var buf bytes.Buffer
	r := newTestRecomposer(makeSheet(sys), &buf)

	empty := text.NewLine()
	blank := text.NewLine(text.NewWord(" ", 0.9, monoFont, makeChars(" ", 100, 350, 10, 20)))
	kept := makeLine(150, 350, 0.9, "Allegro")

	got := r.Recompose(sys, []*text.Line{empty, blank, kept})

	if want := []string{"Allegro"}; !reflect.DeepEqual(values(got), want) {
		t.Errorf("Recompose() = %v, want %v", values(got), want)
	}
	if !empty.IsProcessed() || !blank.IsProcessed() {
		t.Error("empty lines not marked processed")
	}
}

func TestRecomposeLyricsSyllables(t *testing.T) {
	sys := makeSystem(0, [2]float64{400, 480})
	var buf bytes.Buffer
	r := newTestRecomposer(makeSheet(sys), &buf)

	l := makeLine(300, 500, 0.9, "a-men")
	l.SetRole(text.RoleLyrics)

	got := r.Recompose(sys, []*text.Line{l})
	if len(got) != 1 {
		t.Fatalf("Recompose() returned %d lines, want 1", len(got))
	}
	if want := []string{"a", "-", "men"}; !reflect.DeepEqual(wordValues(got[0]), want) {
		t.Errorf("syllables = %v, want %v", wordValues(got[0]), want)
	}
	if got[0].Role() != text.RoleLyrics {
		t.Errorf("Role() = %v, want %v", got[0].Role(), text.RoleLyrics)
	}
}

func TestRecomposeSplitsDistantWords(t *testing.T) {
	sys := makeSystem(0, [2]float64{400, 480})
	var buf bytes.Buffer
	r := newTestRecomposer(makeSheet(sys), &buf)

	l := text.NewLine(makeWord("Allegro", 150, 350, 0.9), makeWord("moderato", 600, 350, 0.9))
	l.SetRole(text.RoleDirection)

	got := r.Recompose(sys, []*text.Line{l})
	if len(got) != 2 {
		t.Fatalf("Recompose() = %v, want 2 lines", values(got))
	}
	gotValues := values(got)
	if !(gotValues[0] == "Allegro" && gotValues[1] == "moderato") &&
		!(gotValues[0] == "moderato" && gotValues[1] == "Allegro") {
		t.Errorf("Recompose() = %v, want [Allegro moderato]", gotValues)
	}
}

func TestRecomposeMergesCloseLines(t *testing.T) {
	sys := makeSystem(0, [2]float64{400, 480})
	var buf bytes.Buffer
	r := newTestRecomposer(makeSheet(sys), &buf)

	rit := makeLine(210, 350, 0.9, "rit.")
	poco := makeLine(150, 352, 0.9, "poco")
	rit.SetRole(text.RoleDirection)
	poco.SetRole(text.RoleDirection)

	got := r.Recompose(sys, []*text.Line{rit, poco})
	if want := []string{"poco rit."}; !reflect.DeepEqual(values(got), want) {
		t.Errorf("Recompose() = %v, want %v", values(got), want)
	}
	if !rit.IsProcessed() {
		t.Error("absorbed line not marked processed")
	}
	if got[0].Role() != text.RoleDirection {
		t.Errorf("Role() = %v, want %v", got[0].Role(), text.RoleDirection)
	}
}

func TestRecomposeMergesChain(t *testing.T) {
	sys := makeSystem(0, [2]float64{400, 480})
	var buf bytes.Buffer
	r := newTestRecomposer(makeSheet(sys), &buf)

	a := makeLine(150, 350, 0.9, "un")
	b := makeLine(190, 351, 0.9, "poco")
	c := makeLine(250, 350, 0.9, "meno")
	for _, l := range []*text.Line{a, b, c} {
		l.SetRole(text.RoleDirection)
	}

	got := r.Recompose(sys, []*text.Line{c, b, a})
	if want := []string{"un poco meno"}; !reflect.DeepEqual(values(got), want) {
		t.Errorf("Recompose() = %v, want %v", values(got), want)
	}
}

func TestRecomposeValidation(t *testing.T) {
	sys := makeSystem(0, [2]float64{400, 480})

	tests := []struct {
		name   string
		manual bool
		want   []string
	}{
		{"invalid line dropped", false, []string{"Allegro"}},
		{"manual keeps invalid line", true, []string{"unsure", "Allegro"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Manual = tt.manual
			r := NewRecomposerWithConfig(makeSheet(sys), cfg)

			low := makeLine(500, 250, 0.3, "unsure")
			good := makeLine(150, 350, 0.9, "Allegro")
			low.SetRole(text.RoleDirection)
			good.SetRole(text.RoleDirection)

			got := r.Recompose(sys, []*text.Line{good, low})
			if !reflect.DeepEqual(values(got), tt.want) {
				t.Errorf("Recompose() = %v, want %v", values(got), tt.want)
			}
		})
	}
}

func TestRecomposeMergesTouchingWords(t *testing.T) {
	sys := makeSystem(0, [2]float64{400, 480})
	var buf bytes.Buffer
	r := newTestRecomposer(makeSheet(sys), &buf)

	l := text.NewLine(makeWord("Glo", 100, 350, 0.9), makeWord("ria", 131, 350, 0.9))
	l.SetRole(text.RoleDirection)

	got := r.Recompose(sys, []*text.Line{l})
	if len(got) != 1 {
		t.Fatalf("Recompose() returned %d lines, want 1", len(got))
	}
	if want := []string{"Gloria"}; !reflect.DeepEqual(wordValues(got[0]), want) {
		t.Errorf("words = %v, want %v", wordValues(got[0]), want)
	}
}

func TestRecomposeNormalizesFontSizes(t *testing.T) {
	sys := makeSystem(0, [2]float64{400, 480})
	var buf bytes.Buffer
	r := newTestRecomposer(makeSheet(sys), &buf)

	l := text.NewLine(
		makeWord("Gloria", 100, 300, 0.9),
		makeWord("in", 180, 300, 0.9),
		makeWord("excelsis", 220, 300, 0.9),
		makeSizedWord("Deo", 320, 300, 40, 20, 0.9, monoFont),
		makeWord("---", 460, 300, 0.9),
	)
	l.SetRole(text.RoleDirection)

	got := r.Recompose(sys, []*text.Line{l})
	if len(got) != 1 {
		t.Fatalf("Recompose() returned %d lines, want 1", len(got))
	}
	if want := []string{"Gloria", "in", "excelsis", "---"}; !reflect.DeepEqual(wordValues(got[0]), want) {
		t.Errorf("words = %v, want %v", wordValues(got[0]), want)
	}

	words := got[0].Words()
	consensus := words[0].PreciseFontSize(nil)
	for _, w := range words[1:3] {
		if size := w.PreciseFontSize(nil); size != consensus {
			t.Errorf("PreciseFontSize(%q) = %v, want consensus %v", w.Value(), size, consensus)
		}
	}
	if !strings.Contains(buf.String(), "implausible font size") {
		t.Errorf("expected a font size log entry, got %q", buf.String())
	}
}

func TestRecomposeClassificationFailure(t *testing.T) {
	// A system without staves cannot classify lines; they are kept unset
	sys := &score.System{ID: 7}
	var buf bytes.Buffer
	r := newTestRecomposer(makeSheet(sys), &buf)

	l := makeLine(100, 100, 0.9, "orphan")
	got := r.Recompose(sys, []*text.Line{l})

	if want := []string{"orphan"}; !reflect.DeepEqual(values(got), want) {
		t.Errorf("Recompose() = %v, want %v", values(got), want)
	}
	if got[0].Role() != text.RoleUnset {
		t.Errorf("Role() = %v, want %v", got[0].Role(), text.RoleUnset)
	}
	if !strings.Contains(buf.String(), "could not guess line role") {
		t.Errorf("expected a warning, got %q", buf.String())
	}
}

func TestRecomposeSortsByOrdinate(t *testing.T) {
	sys := makeSystem(0, [2]float64{400, 480})
	var buf bytes.Buffer
	r := newTestRecomposer(makeSheet(sys), &buf)

	lyrics := makeLine(300, 500, 0.9, "Sanctus")
	lyrics.SetRole(text.RoleLyrics)
	tempo := makeLine(150, 350, 0.9, "Largo")
	tempo.SetRole(text.RoleDirection)

	got := r.Recompose(sys, []*text.Line{lyrics, tempo})
	if want := []string{"Largo", "Sanctus"}; !reflect.DeepEqual(values(got), want) {
		t.Errorf("Recompose() = %v, want %v", values(got), want)
	}
}
