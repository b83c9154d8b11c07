package filters

import (
	"bytes"
	"compress/zlib"
	"testing"
)

// zlibCompress compresses data for testing
func zlibCompress(data []byte) []byte {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	w.Write(data)
	w.Close()
	return buf.Bytes()
}

func TestFlateDecodeBasic(t *testing.T) {
	original := []byte{0xFF, 0x00, 0x81, 0x7E}
	compressed := zlibCompress(original)

	decoded, err := FlateDecode(compressed, Params{})
	if err != nil {
		t.Fatalf("FlateDecode failed: %v", err)
	}

	if !bytes.Equal(decoded, original) {
		t.Errorf("FlateDecode() = %x, want %x", decoded, original)
	}
}

func TestFlateDecodeRows(t *testing.T) {
	// 10 columns make 2 bytes per row
	original := []byte{0xFF, 0xC0, 0x80, 0x40, 0x00, 0x00, 0xAA}
	compressed := zlibCompress(original)

	decoded, err := FlateDecode(compressed, Params{Columns: 10, Rows: 3})
	if err != nil {
		t.Fatalf("FlateDecode failed: %v", err)
	}
	if want := original[:6]; !bytes.Equal(decoded, want) {
		t.Errorf("FlateDecode() = %x, want %x", decoded, want)
	}
}

func TestFlateDecodeInsufficientData(t *testing.T) {
	compressed := zlibCompress([]byte{0xFF, 0xFF})

	if _, err := FlateDecode(compressed, Params{Columns: 16, Rows: 2}); err == nil {
		t.Error("expected error for truncated raster")
	}
}

func TestFlateDecodeInvalidZlib(t *testing.T) {
	if _, err := FlateDecode([]byte{0x00, 0x01, 0x02}, Params{}); err == nil {
		t.Error("expected error for invalid zlib data")
	}
}

func TestZlibDecompress(t *testing.T) {
	original := []byte("packed rows")
	decoded, err := zlibDecompress(zlibCompress(original))
	if err != nil {
		t.Fatalf("zlibDecompress failed: %v", err)
	}
	if !bytes.Equal(decoded, original) {
		t.Errorf("zlibDecompress() = %q, want %q", decoded, original)
	}
}

func TestRowBytes(t *testing.T) {
	tests := []struct {
		columns int
		want    int
	}{
		{0, 216},
		{1, 1},
		{8, 1},
		{9, 2},
		{2480, 310},
	}

	for _, tt := range tests {
		if got := (Params{Columns: tt.columns}).RowBytes(); got != tt.want {
			t.Errorf("RowBytes(%d) = %d, want %d", tt.columns, got, tt.want)
		}
	}
}
