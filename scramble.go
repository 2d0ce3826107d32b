package scrambler

import (
	"math/rand/v2"
)

// TileScrambler partitions a pixmap into a grid of rectangular tiles and
// relocates every tile to a uniformly random grid slot.
//
// Cells is a tile-count control, not a pixel size: the tile dimensions
// are floor(width/Cells) by floor(height/Cells), so a larger value
// produces more, smaller tiles. When Cells meets or exceeds a dimension
// the tile size clamps to one pixel. Tiles at the right and bottom edges
// may be ragged when the dimensions do not divide evenly; relocation
// clips them against their destination slot.
type TileScrambler struct {
	// Cells controls how many tiles the image is divided into per axis.
	Cells int

	// Region optionally restricts the shuffle to grid slots whose tile
	// center lies inside it. The zero value shuffles the whole grid.
	Region Region

	// Rand is the random source for the permutation. Nil means an
	// auto-seeded source.
	Rand *rand.Rand
}

// NewTileScrambler creates a tile scrambler with the given tile count.
func NewTileScrambler(cells int) *TileScrambler {
	return &TileScrambler{Cells: cells}
}

// tileSlot is one grid cell of the scramble partition. Slots cover the
// pixmap exhaustively; the clipped width and height of edge slots may be
// smaller than the nominal tile size.
type tileSlot struct {
	x, y int
	w, h int
}

// Apply scrambles the pixmap in place. The multiset of pixel values is
// preserved exactly when the tile size divides both dimensions; ragged
// edge tiles are clipped on relocation. The pixmap is left unmodified on
// error.
func (s *TileScrambler) Apply(p *Pixmap) error {
	if err := p.validate(); err != nil {
		return err
	}
	if s.Cells < 1 {
		return ErrInvalidParameter
	}
	if err := s.Region.validate(); err != nil {
		return err
	}

	tileW := max(p.Width()/s.Cells, 1)
	tileH := max(p.Height()/s.Cells, 1)

	slots := gridSlots(p.Width(), p.Height(), tileW, tileH)

	// Restrict the permutation to the slots the region covers. The whole
	// grid participates for a whole-image region.
	shuffled := make([]int, 0, len(slots))
	for i, slot := range slots {
		if s.Region.Contains(slot.x+slot.w/2, slot.y+slot.h/2) {
			shuffled = append(shuffled, i)
		}
	}

	Logger().Debug("tile scramble",
		"width", p.Width(), "height", p.Height(),
		"cells", s.Cells, "tileW", tileW, "tileH", tileH,
		"slots", len(slots), "shuffled", len(shuffled))

	tiles := make([]*Pixmap, len(shuffled))
	for i, si := range shuffled {
		slot := slots[si]
		tiles[i] = p.SubPixmap(slot.x, slot.y, slot.w, slot.h)
	}

	// Fisher-Yates: every permutation of the participating tiles is
	// equally likely.
	rng := ensureRand(s.Rand)
	rng.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})

	// Tiles land on the destination slot's origin, not their own, so a
	// ragged tile placed on a smaller slot clips on write.
	for i, si := range shuffled {
		slot := slots[si]
		p.Blit(tiles[i], slot.x, slot.y)
	}
	return nil
}

// gridSlots walks the grid in row-major order with the given step,
// starting at (0, 0), and returns every slot clipped to the buffer.
func gridSlots(width, height, tileW, tileH int) []tileSlot {
	var slots []tileSlot
	for y := 0; y < height; y += tileH {
		for x := 0; x < width; x += tileW {
			slots = append(slots, tileSlot{
				x: x,
				y: y,
				w: min(tileW, width-x),
				h: min(tileH, height-y),
			})
		}
	}
	return slots
}
