package layout

import (
	"regexp"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/scoretext/text"
)

// chordPattern matches one chord name: a root A to G, an optional accidental,
// an optional quality, extensions and an optional bass note
var chordPattern = regexp.MustCompile(
	`^[A-G](?:#|b|♯|♭)?` +
		`(?:maj|min|dim|aug|sus|m|M|°|ø|\+)?` +
		`(?:\d{1,2})?` +
		`(?:\(?(?:add|sus|maj|b|#|♭|♯)\d{1,2}\)?)*` +
		`(?:/[A-G](?:#|b|♯|♭)?)?$`)

// IsChordName reports whether value is a valid chord name such as "C", "G7",
// "F#m7b5" or "Am/C"
func IsChordName(value string) bool {
	return chordPattern.MatchString(norm.NFC.String(value))
}

// isChordWord reports whether the word value is a valid chord name
func isChordWord(w *text.Word) bool {
	return IsChordName(w.Value())
}
