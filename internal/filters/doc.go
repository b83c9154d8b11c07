// Package filters decodes compressed bi-level page rasters.
//
// Scanned score pages usually travel as 1-bit images, either fax encoded
// (CCITT Group 3/4) or zlib compressed. Both decoders return packed rows:
// one bit per pixel, most significant bit first, each row padded to a byte.
//
// # CCITT Fax
//
//	rows, err := filters.CCITTFaxDecode(data, filters.Params{
//	    Columns:  2480,
//	    Rows:     3508,
//	    K:        -1, // Group 4
//	    BlackIs1: true,
//	})
//
// # Flate
//
//	rows, err := filters.FlateDecode(data, filters.Params{Columns: 2480, Rows: 3508})
package filters
