// Package text provides the data model for recognized score text: characters,
// words and lines, together with the word scanner and precise font sizing.
//
// # Data Model
//
// A [Char] is an immutable box and one-character value. A [Word] owns its
// chars in reading order and carries confidence and [Font] attributes. A
// [Line] owns a mutable, abscissa-sorted sequence of words:
//
//	line := text.NewLine(w1, w2)
//	line.AddWords(w3)           // re-sorted, caches invalidated
//	box := line.Bounds()        // recomputed lazily
//	conf := line.Confidence()   // mean of word confidences
//
// Derived line attributes (bounds, baseline, confidence, mean font) are
// cached and reset on every mutation of the word sequence.
//
// # Roles
//
// Each line carries a [Role] (lyrics, chord name, title, direction, ...)
// assigned by the layout classifier. The zero value is [RoleUnset].
//
// # Word Scanner
//
// A [Scanner] splits a string into maximal runs (words or syllables), breaking
// on whitespace, on character gaps larger than a threshold and, in syllable
// mode, around separator characters:
//
//	s := text.NewOCRScanner("a-men", true, maxGap, word.Chars())
//	for s.Next() {
//	    run := s.Run() // "a", "-", "men"
//	}
//
// # Font Sizing
//
// A [FontSizer] fits a word value to its observed box width using the Go
// font family metrics, giving the word's precise font size in pixels.
package text
