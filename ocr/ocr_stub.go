//go:build !ocr

package ocr

import (
	"context"
	"image"

	"github.com/tsawler/scoretext/text"
)

// PageSegMode represents page segmentation modes for OCR.
// These control how Tesseract analyzes the page layout.
type PageSegMode int

// Page segmentation modes (matching the OCR-enabled implementation).
const (
	PSM_AUTO        PageSegMode = 3  // Fully automatic (default)
	PSM_SINGLE_LINE PageSegMode = 7  // Single text line
	PSM_SPARSE_TEXT PageSegMode = 11 // Find as much text as possible
	PSM_RAW_LINE    PageSegMode = 13 // Treat image as single text line
)

// Client is a stub OCR client that returns errors for all operations.
type Client struct{}

// New returns an error indicating OCR support is not enabled.
// To enable OCR, rebuild with: go build -tags ocr
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op for the stub client.
// It is safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// Recognize returns an error indicating OCR support is not enabled.
func (c *Client) Recognize(ctx context.Context, imageData []byte, origin image.Point) ([]*text.Line, error) {
	return nil, ErrOCRNotEnabled
}

// SetLanguage returns an error indicating OCR support is not enabled.
func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

// SetPageSegMode returns an error indicating OCR support is not enabled.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return ErrOCRNotEnabled
}
