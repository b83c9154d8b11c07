// Package glyph attaches pixel evidence to recognized words.
//
// A [Buffer] holds the binarized page. A [Sectioner] returns the vertical
// pixel runs ([Section]) wholly contained in a region; [RunTable] is the
// in-memory implementation built from a buffer:
//
//	buf, err := glyph.BufferFromCCITT(data, width, height, true)
//	table := glyph.NewRunTable(buf)
//
// The [Mapper] unions the sections under each word into one [Glyph]
// registered in a thread-safe [Index]. Shorter words are mapped first so
// that long words cannot swallow the sections of their neighbors. Words
// without matching sections are dropped unless entered or adjusted manually.
//
//	mapper := glyph.NewMapper(table, glyph.NewIndex())
//	lines = mapper.Map(lines)
package glyph
