package text

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// referenceSize is the pixel size at which values are measured
const referenceSize = 100.0

type faceKind int

const (
	faceRegular faceKind = iota
	faceBold
	faceItalic
	faceBoldItalic
	faceMono
)

// FontSizer computes precise font sizes by fitting rendered glyph advances
// to observed word widths. It is safe for concurrent use.
type FontSizer struct {
	mu    sync.Mutex
	faces map[faceKind]font.Face
}

// NewFontSizer creates a font sizer
func NewFontSizer() *FontSizer {
	return &FontSizer{faces: make(map[faceKind]font.Face)}
}

var (
	defaultSizer     *FontSizer
	defaultSizerOnce sync.Once
)

// DefaultFontSizer returns the shared font sizer
func DefaultFontSizer() *FontSizer {
	defaultSizerOnce.Do(func() {
		defaultSizer = NewFontSizer()
	})
	return defaultSizer
}

// Fit returns the pixel font size at which value, rendered with the given
// attributes, is exactly width pixels wide. It returns 0 when the value has
// no measurable advance or the width is not positive.
func (fs *FontSizer) Fit(value string, f Font, width float64) float64 {
	if width <= 0 || strings.TrimSpace(value) == "" {
		return 0
	}

	advance, err := fs.Measure(value, f)
	if err != nil || advance <= 0 {
		return 0
	}
	return referenceSize * width / advance
}

// Measure returns the advance width in pixels of value rendered at the
// reference size
func (fs *FontSizer) Measure(value string, f Font) (float64, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	face, err := fs.face(kindOf(f))
	if err != nil {
		return 0, err
	}
	adv := font.MeasureString(face, value)
	return float64(adv) / 64, nil
}

func (fs *FontSizer) face(kind faceKind) (font.Face, error) {
	if face, ok := fs.faces[kind]; ok {
		return face, nil
	}

	parsed, err := opentype.Parse(ttfOf(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    referenceSize,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}

	fs.faces[kind] = face
	return face, nil
}

func kindOf(f Font) faceKind {
	switch {
	case f.Monospace:
		return faceMono
	case f.Bold && f.Italic:
		return faceBoldItalic
	case f.Bold:
		return faceBold
	case f.Italic:
		return faceItalic
	default:
		return faceRegular
	}
}

func ttfOf(kind faceKind) []byte {
	switch kind {
	case faceBold:
		return gobold.TTF
	case faceItalic:
		return goitalic.TTF
	case faceBoldItalic:
		return gobolditalic.TTF
	case faceMono:
		return gomono.TTF
	default:
		return goregular.TTF
	}
}
