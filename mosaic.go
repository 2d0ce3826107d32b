package scrambler

// MosaicBlocker partitions a pixmap into a grid of square blocks and
// flood-fills each block with its top-left pixel's color. Blocks at the
// right and bottom edges are clipped to the buffer. A cell size of 1 is
// the identity transform.
type MosaicBlocker struct {
	// CellSize is the side length of each block in pixels. Must be >= 1.
	CellSize int
}

// NewMosaicBlocker creates a mosaic blocker with the given block side
// length.
func NewMosaicBlocker(cellSize int) *MosaicBlocker {
	return &MosaicBlocker{CellSize: cellSize}
}

// Apply mosaics the pixmap in place. The pixmap is left unmodified on
// error.
func (m *MosaicBlocker) Apply(p *Pixmap) error {
	if err := p.validate(); err != nil {
		return err
	}
	if m.CellSize < 1 {
		return ErrInvalidParameter
	}

	Logger().Debug("mosaic",
		"width", p.Width(), "height", p.Height(), "cellSize", m.CellSize)

	// Blocks do not overlap, so processing order does not affect the
	// result; row-major keeps it deterministic anyway.
	for y := 0; y < p.Height(); y += m.CellSize {
		for x := 0; x < p.Width(); x += m.CellSize {
			r, g, b, a := p.GetRGBA(x, y)

			maxY := min(y+m.CellSize, p.Height())
			maxX := min(x+m.CellSize, p.Width())
			for by := y; by < maxY; by++ {
				for bx := x; bx < maxX; bx++ {
					p.SetRGBA(bx, by, r, g, b, a)
				}
			}
		}
	}
	return nil
}
