package filters

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
)

// FlateDecode decompresses zlib compressed packed rows.
// When Rows is set, the decompressed size must cover every row.
func FlateDecode(data []byte, params Params) ([]byte, error) {
	decompressed, err := zlibDecompress(data)
	if err != nil {
		return nil, fmt.Errorf("zlib decompression failed: %w", err)
	}

	if params.Rows > 0 {
		expected := params.RowBytes() * params.Rows
		if len(decompressed) < expected {
			return nil, fmt.Errorf("insufficient data: got %d, expected %d", len(decompressed), expected)
		}
		decompressed = decompressed[:expected]
	}

	return decompressed, nil
}

// zlibDecompress decompresses zlib-compressed data using the standard library.
func zlibDecompress(data []byte) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create zlib reader: %w", err)
	}
	defer reader.Close()

	var buf bytes.Buffer
	_, err = io.Copy(&buf, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress: %w", err)
	}

	return buf.Bytes(), nil
}
