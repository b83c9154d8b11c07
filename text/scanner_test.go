package text

import (
	"reflect"
	"strings"
	"testing"
)

func runValues(runs []Run) []string {
	var values []string
	for _, r := range runs {
		values = append(values, r.Value)
	}
	return values
}

func TestScannerRoundTrip(t *testing.T) {
	tests := []string{
		"Gloria in excelsis Deo",
		"single",
		"a b c",
		"Dm7 G7 C",
	}

	for _, value := range tests {
		t.Run(value, func(t *testing.T) {
			chars := makeChars(value, 0, 0, 10, 20, 1)
			s := NewOCRScanner(value, false, 5, chars)

			got := strings.Join(runValues(s.Runs()), " ")
			if got != value {
				t.Errorf("round trip = %q, want %q", got, value)
			}
		})
	}
}

func TestScannerSyllables(t *testing.T) {
	// Separators are kept as their own one-character run
	value := "a-men"
	s := NewOCRScanner(value, true, 0, makeChars(value, 0, 0, 10, 20, 0))

	runs := s.Runs()
	want := []Run{
		{Value: "a", Start: 0, Stop: 0},
		{Value: "-", Start: 1, Stop: 1},
		{Value: "men", Start: 2, Stop: 4},
	}
	if !reflect.DeepEqual(runs, want) {
		t.Errorf("Runs() = %+v, want %+v", runs, want)
	}
}

func TestScannerSeparatorsWithoutSyllables(t *testing.T) {
	value := "a-men"
	s := NewOCRScanner(value, false, 0, makeChars(value, 0, 0, 10, 20, 0))

	if got := runValues(s.Runs()); !reflect.DeepEqual(got, []string{"a-men"}) {
		t.Errorf("Runs() = %v, want [a-men]", got)
	}
}

func TestScannerAllSeparators(t *testing.T) {
	value := "glo_‿ry"
	s := NewOCRScanner(value, true, 0, makeChars(value, 0, 0, 10, 20, 0))

	want := []string{"glo", "_", "‿", "ry"}
	if got := runValues(s.Runs()); !reflect.DeepEqual(got, want) {
		t.Errorf("Runs() = %v, want %v", got, want)
	}
}

func TestScannerGap(t *testing.T) {
	chars := []Char{}
	chars = append(chars, makeChars("ab", 0, 0, 10, 20, 0)...)
	chars = append(chars, makeChars("cd", 60, 0, 10, 20, 0)...)

	tests := []struct {
		name   string
		maxGap float64
		want   []string
	}{
		{"gap exceeded", 25, []string{"ab", "cd"}},
		{"gap tolerated", 50, []string{"abcd"}},
		{"gap breaking disabled", 0, []string{"abcd"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewOCRScanner("abcd", false, tt.maxGap, chars)
			if got := runValues(s.Runs()); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Runs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScannerIndices(t *testing.T) {
	value := "ab cd"
	s := NewOCRScanner(value, false, 0, makeChars(value, 0, 0, 10, 20, 0))

	want := []Run{
		{Value: "ab", Start: 0, Stop: 1},
		{Value: "cd", Start: 3, Stop: 4},
	}
	if got := s.Runs(); !reflect.DeepEqual(got, want) {
		t.Errorf("Runs() = %+v, want %+v", got, want)
	}
}

func TestScannerReset(t *testing.T) {
	value := "one two"
	s := NewOCRScanner(value, false, 0, makeChars(value, 0, 0, 10, 20, 0))

	first := s.Runs()
	s.Reset()
	if !s.Next() {
		t.Fatal("Next() after Reset() = false, want true")
	}
	if got := s.Run().Value; got != "one" {
		t.Errorf("Run().Value = %q, want %q", got, "one")
	}
	if second := s.Runs(); !reflect.DeepEqual(first, second) {
		t.Errorf("Runs() not restartable: %+v vs %+v", first, second)
	}
}

func TestScannerWhitespaceOnly(t *testing.T) {
	s := NewOCRScanner("   ", false, 0, nil)
	if s.Next() {
		t.Errorf("Next() = true, want false for whitespace-only value")
	}
}

func TestManualScanner(t *testing.T) {
	// 10 string characters rendered as 5 chars
	value := "abcde fghi"
	chars := makeChars("ABCDE", 0, 0, 10, 20, 0)
	s := NewManualScanner(value, false, 0, chars)

	runs := s.Runs()
	want := []Run{
		{Value: "abcde", Start: 0, Stop: 2},
		{Value: "fghi", Start: 3, Stop: 4},
	}
	if !reflect.DeepEqual(runs, want) {
		t.Errorf("Runs() = %+v, want %+v", runs, want)
	}
}

func TestManualScannerNoChars(t *testing.T) {
	s := NewManualScanner("a b", false, 10, nil)

	want := []Run{
		{Value: "a", Start: -1, Stop: -1},
		{Value: "b", Start: -1, Stop: -1},
	}
	if got := s.Runs(); !reflect.DeepEqual(got, want) {
		t.Errorf("Runs() = %+v, want %+v", got, want)
	}
}

func TestIsSeparator(t *testing.T) {
	for _, r := range []rune{'-', '_', '‿'} {
		if !IsSeparator(r) {
			t.Errorf("IsSeparator(%q) = false, want true", r)
		}
	}
	for _, r := range []rune{'a', ' ', '.', '—'} {
		if IsSeparator(r) {
			t.Errorf("IsSeparator(%q) = true, want false", r)
		}
	}
}
