package text

// Font describes the font attributes reported by the recognizer for a word
type Font struct {
	Bold      bool
	Italic    bool
	Underline bool
	Monospace bool
	Serif     bool
	SmallCaps bool

	// PointSize is the font size in points
	PointSize float64

	// Name is the font family name
	Name string
}

// MeanFont computes a representative font for words by majority vote.
//
// Only words longer than one character take part. Each boolean attribute is
// set when at least half of them have it, the point size is their mean and
// the name is the most frequent one. When no word qualifies, the first
// word's font is returned.
func MeanFont(words []*Word) Font {
	var voters []*Word
	for _, w := range words {
		if w.Length() > 1 {
			voters = append(voters, w)
		}
	}

	if len(voters) == 0 {
		if len(words) == 0 {
			return Font{}
		}
		return words[0].Font()
	}

	var bold, italic, underline, mono, serif, smallCaps int
	sizeTotal := 0.0
	names := make(map[string]int)
	bestName := ""

	for _, w := range voters {
		f := w.Font()
		if f.Bold {
			bold++
		}
		if f.Italic {
			italic++
		}
		if f.Underline {
			underline++
		}
		if f.Monospace {
			mono++
		}
		if f.Serif {
			serif++
		}
		if f.SmallCaps {
			smallCaps++
		}
		sizeTotal += f.PointSize

		if f.Name != "" {
			names[f.Name]++
			if bestName == "" || names[f.Name] > names[bestName] {
				bestName = f.Name
			}
		}
	}

	n := len(voters)
	quorum := func(count int) bool { return 2*count >= n }

	return Font{
		Bold:      quorum(bold),
		Italic:    quorum(italic),
		Underline: quorum(underline),
		Monospace: quorum(mono),
		Serif:     quorum(serif),
		SmallCaps: quorum(smallCaps),
		PointSize: sizeTotal / float64(n),
		Name:      bestName,
	}
}
