package imageio

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/altunenes/scrambler"
)

// FitWithin downscales the pixmap so that neither dimension exceeds
// maxDim, preserving the aspect ratio. Images already within the limit
// are returned unchanged. maxDim below 1 is a no-op.
func FitWithin(pm *scrambler.Pixmap, maxDim int) *scrambler.Pixmap {
	if maxDim < 1 {
		return pm
	}
	w, h := pm.Width(), pm.Height()
	if w <= maxDim && h <= maxDim {
		return pm
	}

	if w >= h {
		h = max(h*maxDim/w, 1)
		w = maxDim
	} else {
		w = max(w*maxDim/h, 1)
		h = maxDim
	}

	scrambler.Logger().Debug("downscaling image",
		"fromWidth", pm.Width(), "fromHeight", pm.Height(),
		"toWidth", w, "toHeight", h)

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), pm.ToImage(), pm.Bounds(), draw.Over, nil)
	return scrambler.FromImage(dst)
}
