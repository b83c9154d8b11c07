package ocr

import (
	"context"
	"errors"
	"image"

	"github.com/tsawler/scoretext/text"
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Recognizer produces raw text lines from image data (PNG, TIFF, JPEG,
// etc.). Origin is the position of the image within the page.
type Recognizer interface {
	Recognize(ctx context.Context, img []byte, origin image.Point) ([]*text.Line, error)
}
