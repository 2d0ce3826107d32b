package scrambler

import "math"

// RenderPreview returns a display copy of src with the region's circle
// outline drawn on top. It is a pure function: src is never mutated, so
// repeated previews during a drag gesture cannot accumulate artifacts.
// A whole-image or degenerate region yields a plain copy.
func RenderPreview(src *Pixmap, region Region) *Pixmap {
	out := src.Clone()
	if region.Kind != RegionCircle || region.Radius <= 0 {
		return out
	}

	minX := int(math.Floor(region.CenterX - region.Radius - 1))
	maxX := int(math.Ceil(region.CenterX + region.Radius + 1))
	minY := int(math.Floor(region.CenterY - region.Radius - 1))
	maxY := int(math.Ceil(region.CenterY + region.Radius + 1))

	minX, maxX = max(minX, 0), min(maxX, src.Width()-1)
	minY, maxY = max(minY, 0), min(maxY, src.Height()-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx := float64(x) - region.CenterX
			dy := float64(y) - region.CenterY
			dist := math.Sqrt(dx*dx + dy*dy)
			if math.Abs(dist-region.Radius) > 0.5 {
				continue
			}
			// Invert RGB along the outline so the stroke stays visible
			// on any background.
			r, g, b, a := out.GetRGBA(x, y)
			out.SetRGBA(x, y, 255-r, 255-g, 255-b, a)
		}
	}
	return out
}
