package imageio

import (
	"testing"

	"github.com/altunenes/scrambler"
)

// TestFitWithin verifies aspect-preserving downscaling and the no-op
// cases.
func TestFitWithin(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		maxDim int
		wantW  int
		wantH  int
	}{
		{"wide image", 200, 100, 50, 50, 25},
		{"tall image", 100, 200, 50, 25, 50},
		{"square image", 200, 200, 50, 50, 50},
		{"already fits", 40, 30, 50, 40, 30},
		{"exactly at limit", 50, 50, 50, 50, 50},
		{"disabled", 200, 100, 0, 200, 100},
		{"extreme ratio clamps to 1", 1000, 2, 10, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := scrambler.NewPixmap(tt.width, tt.height)
			out := FitWithin(pm, tt.maxDim)
			if out.Width() != tt.wantW || out.Height() != tt.wantH {
				t.Errorf("FitWithin = %dx%d, want %dx%d",
					out.Width(), out.Height(), tt.wantW, tt.wantH)
			}
		})
	}
}

// TestFitWithinNoOpReturnsSameBuffer verifies images within the limit
// are returned without copying.
func TestFitWithinNoOpReturnsSameBuffer(t *testing.T) {
	pm := scrambler.NewPixmap(10, 10)
	if out := FitWithin(pm, 20); out != pm {
		t.Error("in-limit image should be returned unchanged")
	}
}
