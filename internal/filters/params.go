package filters

// Params describes the geometry and encoding of a bi-level raster
type Params struct {
	// Columns is the image width in pixels (default 1728)
	Columns int

	// Rows is the image height in pixels; 0 means unknown
	Rows int

	// K selects the fax encoding: negative for Group 4, 0 for Group 3 1D,
	// positive for Group 3 2D
	K int

	// BlackIs1 makes black pixels decode as 1 bits
	BlackIs1 bool
}

// columns returns the width, applying the fax default
func (p Params) columns() int {
	if p.Columns <= 0 {
		return 1728
	}
	return p.Columns
}

// RowBytes returns the size in bytes of one packed row
func (p Params) RowBytes() int {
	return (p.columns() + 7) / 8
}
