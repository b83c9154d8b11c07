//go:build ocr

package ocr

import (
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/tsawler/scoretext/text"
)

// PageSegMode is the Tesseract page segmentation mode
type PageSegMode = gosseract.PageSegMode

// Client wraps Tesseract for OCR operations.
// A client is not safe for concurrent use.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	return &Client{client: client}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Recognize performs OCR on image data and returns the recognized lines
// with char boxes, in page coordinates.
func (c *Client) Recognize(ctx context.Context, imageData []byte, origin image.Point) ([]*text.Line, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}
	if err := c.client.SetVariable("hocr_char_boxes", "1"); err != nil {
		return nil, fmt.Errorf("failed to enable char boxes: %w", err)
	}

	hocr, err := c.client.HOCRText()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	return ParseHOCR(strings.NewReader(hocr), origin)
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as a "+" separated string (e.g., "eng+ita").
// Default is "eng" (English).
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(strings.Split(lang, "+")...)
}

// SetPageSegMode sets the page segmentation mode.
// This affects how Tesseract analyzes the page layout.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return c.client.SetPageSegMode(mode)
}
