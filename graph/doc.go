// Package graph holds the score entities built from reconciled text lines.
//
// Every finalized [text.Line] becomes one [Entity]:
//
//   - [LyricLine] for Lyrics lines, made of [LyricItem] values (syllables,
//     hyphens, extensions, elisions)
//   - [ChordName] for chord name lines, one symbol per word
//   - [Sentence] for any other role
//
// Each entity is tagged with the staff it belongs to and registered into a
// [Registrar]. [Graph] is the in-memory registrar, safe for concurrent
// emission from distinct systems:
//
//	g := graph.New()
//	e := graph.NewEmitter(sheet, g)
//	e.Emit(system, lines)
//
//	for _, s := range g.Entities() {
//	    fmt.Println(s.Type(), s.Value())
//	}
package graph
