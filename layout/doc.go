// Package layout reconciles the recognized text lines of a score system into
// clean, role-tagged lines.
//
// # Pipeline
//
// Per system, raw lines flow through:
//
//   - [LineMerger] - groups raw lines into long lines by vertical proximity
//   - [Partitioner] - resolves lines lying in the gutter between two systems
//     or two parts, using the widest vertical gap
//   - [Classifier] - guesses the [text.Role] of each line
//   - [Recomposer] - splits and merges lines and words, validates them and
//     normalizes font sizes
//
// Typical use:
//
//	merger := layout.NewLineMerger()
//	long := merger.Merge(raw, sheet.Scale, sheet.Skew)
//
//	layout.NewPartitioner(sheet.Skew).PurgeNeighbors(sheet, linesBySystem)
//
//	r := layout.NewRecomposer(sheet)
//	final := r.Recompose(system, long)
//
// # Validation
//
// The [Validator] prunes implausible words (empty, tiny, low confidence) and
// rejects lines whose mean confidence is too low or whose font is too large.
// Failures are [Reason] values, never errors: invalid content is dropped and
// processing goes on.
//
// # Configuration
//
// Every threshold lives in [Config]. Distances are interline fractions
// converted to pixels with the sheet scale:
//
//	config := layout.DefaultConfig()
//	config.MinConfidence = 0.5
//	config.LyricsMode = layout.LyricsForbidden
//	r := layout.NewRecomposerWithConfig(sheet, config)
package layout
