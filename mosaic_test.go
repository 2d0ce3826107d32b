package scrambler

import "testing"

// TestMosaicCellSizeOneIdentity verifies every 1x1 block maps to
// itself.
func TestMosaicCellSizeOneIdentity(t *testing.T) {
	pm := NewPixmap(5, 4)
	fillGradient(pm)
	want := pm.Clone()

	if err := NewMosaicBlocker(1).Apply(pm); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !pm.Equal(want) {
		t.Error("mosaic with cell size 1 should be the identity")
	}
}

// TestMosaicUniformQuadrants verifies a 4x4 image of 4 solid-color 2x2
// quadrants is unchanged by a cell size of 2.
func TestMosaicUniformQuadrants(t *testing.T) {
	pm := NewPixmap(4, 4)
	quadColors := [2][2]uint8{{10, 20}, {30, 40}}
	for y := range 4 {
		for x := range 4 {
			c := quadColors[y/2][x/2]
			pm.SetRGBA(x, y, c, c, c, 255)
		}
	}
	want := pm.Clone()

	if err := NewMosaicBlocker(2).Apply(pm); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !pm.Equal(want) {
		t.Error("already-uniform blocks should be unchanged")
	}
}

// TestMosaicCheckerboard verifies each 2x2 block of a 1-pixel
// checkerboard becomes uniform, colored by its top-left pixel.
func TestMosaicCheckerboard(t *testing.T) {
	pm := NewPixmap(4, 4)
	for y := range 4 {
		for x := range 4 {
			var c uint8
			if (x+y)%2 == 0 {
				c = 255
			}
			pm.SetRGBA(x, y, c, c, c, 255)
		}
	}

	if err := NewMosaicBlocker(2).Apply(pm); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	// Every block's top-left pixel was on the white phase of the
	// checkerboard, so the whole image becomes white.
	for y := range 4 {
		for x := range 4 {
			if r, g, b, a := pm.GetRGBA(x, y); r != 255 || g != 255 || b != 255 || a != 255 {
				t.Fatalf("pixel (%d, %d) = (%d, %d, %d, %d), want solid white", x, y, r, g, b, a)
			}
		}
	}
}

// TestMosaicRaggedBlocks verifies clipping when the cell size does not
// divide the dimensions.
func TestMosaicRaggedBlocks(t *testing.T) {
	pm := NewPixmap(5, 3)
	fillGradient(pm)

	if err := NewMosaicBlocker(2).Apply(pm); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	// The ragged right column blocks take the color of their top-left
	// pixel at x=4.
	r, _, _, _ := pm.GetRGBA(4, 1)
	wr, _, _, _ := pm.GetRGBA(4, 0)
	if r != wr {
		t.Errorf("ragged block pixel = %d, want top-left color %d", r, wr)
	}
}

// TestMosaicLargerThanImage verifies a cell size covering the whole
// image floods it with the (0, 0) color.
func TestMosaicLargerThanImage(t *testing.T) {
	pm := NewPixmap(3, 3)
	fillGradient(pm)
	wr, wg, wb, wa := pm.GetRGBA(0, 0)

	if err := NewMosaicBlocker(10).Apply(pm); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	for y := range 3 {
		for x := range 3 {
			r, g, b, a := pm.GetRGBA(x, y)
			if r != wr || g != wg || b != wb || a != wa {
				t.Fatalf("pixel (%d, %d) should take the (0,0) color", x, y)
			}
		}
	}
}

// TestMosaicErrors verifies parameter and buffer validation.
func TestMosaicErrors(t *testing.T) {
	tests := []struct {
		name     string
		pm       *Pixmap
		cellSize int
		wantErr  error
	}{
		{"zero cell size", NewPixmap(4, 4), 0, ErrInvalidParameter},
		{"negative cell size", NewPixmap(4, 4), -1, ErrInvalidParameter},
		{"zero-size buffer", NewPixmap(0, 0), 2, ErrInvalidBuffer},
		{"nil buffer", nil, 2, ErrInvalidBuffer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := NewMosaicBlocker(tt.cellSize).Apply(tt.pm); err != tt.wantErr {
				t.Errorf("Apply error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
