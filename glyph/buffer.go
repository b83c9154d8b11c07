package glyph

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/tsawler/scoretext/internal/filters"
)

// ErrEmptyBuffer is returned when a buffer would have no pixels
var ErrEmptyBuffer = errors.New("empty pixel buffer")

// DefaultThreshold is the gray level below which a pixel is foreground
const DefaultThreshold = 128

// Buffer is a binarized page: each pixel is foreground (ink) or background
type Buffer struct {
	width, height int
	pix           []bool
}

// NewBuffer creates an all-background buffer
func NewBuffer(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyBuffer
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]bool, width*height),
	}, nil
}

// Width returns the buffer width in pixels
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in pixels
func (b *Buffer) Height() int {
	return b.height
}

// Bounds returns the buffer rectangle
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// IsForeground reports whether the pixel at (x, y) is ink.
// Pixels outside the buffer are background.
func (b *Buffer) IsForeground(x, y int) bool {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return false
	}
	return b.pix[y*b.width+x]
}

// Set marks the pixel at (x, y) as foreground or background
func (b *Buffer) Set(x, y int, fg bool) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.pix[y*b.width+x] = fg
}

// Fill sets every pixel of r to foreground
func (b *Buffer) Fill(r image.Rectangle) {
	r = r.Intersect(b.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			b.pix[y*b.width+x] = true
		}
	}
}

// Count returns the number of foreground pixels
func (b *Buffer) Count() int {
	n := 0
	for _, fg := range b.pix {
		if fg {
			n++
		}
	}
	return n
}

// BufferFromImage binarizes an image: pixels darker than threshold are
// foreground
func BufferFromImage(img image.Image, threshold uint8) (*Buffer, error) {
	bounds := img.Bounds()
	buf, err := NewBuffer(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			if gray.Y < threshold {
				buf.pix[(y-bounds.Min.Y)*buf.width+(x-bounds.Min.X)] = true
			}
		}
	}

	return buf, nil
}

// BufferFromPacked unpacks 1-bit rows, most significant bit first, each row
// padded to a byte. A 1 bit is foreground.
func BufferFromPacked(data []byte, width, height int) (*Buffer, error) {
	buf, err := NewBuffer(width, height)
	if err != nil {
		return nil, err
	}

	bytesPerRow := (width + 7) / 8
	expectedSize := bytesPerRow * height
	if len(data) < expectedSize {
		return nil, fmt.Errorf("insufficient data for 1-bit image: got %d, expected %d", len(data), expectedSize)
	}

	for y := 0; y < height; y++ {
		rowStart := y * bytesPerRow
		for x := 0; x < width; x++ {
			bit := (data[rowStart+x/8] >> (7 - x%8)) & 1
			buf.pix[y*width+x] = bit == 1
		}
	}

	return buf, nil
}

// BufferFromCCITT decodes fax encoded page data, Group 4 or Group 3.
// A height of 0 is detected from the data.
func BufferFromCCITT(data []byte, width, height int, group4 bool) (*Buffer, error) {
	if width <= 0 {
		return nil, ErrEmptyBuffer
	}

	params := filters.Params{Columns: width, Rows: height, BlackIs1: true}
	if group4 {
		params.K = -1
	}

	packed, err := filters.CCITTFaxDecode(data, params)
	if err != nil {
		return nil, fmt.Errorf("failed to decode page: %w", err)
	}

	if height <= 0 {
		height = len(packed) / params.RowBytes()
	}
	return BufferFromPacked(packed, width, height)
}

// BufferFromFlate decompresses zlib compressed packed rows
func BufferFromFlate(data []byte, width, height int) (*Buffer, error) {
	packed, err := filters.FlateDecode(data, filters.Params{Columns: width, Rows: height})
	if err != nil {
		return nil, fmt.Errorf("failed to decode page: %w", err)
	}
	return BufferFromPacked(packed, width, height)
}
