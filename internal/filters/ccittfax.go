package filters

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/image/ccitt"
)

// CCITTFaxDecode decodes CCITT Group 3/4 fax compressed data into packed rows.
// When Rows is 0 the height is detected from the data.
func CCITTFaxDecode(data []byte, params Params) ([]byte, error) {
	// K < 0: pure Group 4
	// K >= 0: Group 3, 1D or mixed 2D
	sf := ccitt.Group3
	if params.K < 0 {
		sf = ccitt.Group4
	}

	opts := &ccitt.Options{Invert: params.BlackIs1}

	rows := params.Rows
	if rows <= 0 {
		rows = ccitt.AutoDetectHeight
	}

	reader := ccitt.NewReader(bytes.NewReader(data), ccitt.MSB, sf, params.columns(), rows, opts)
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("ccitt decoding failed: %w", err)
	}
	return decoded, nil
}
