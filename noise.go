package scrambler

import (
	"math/rand/v2"
)

// NoiseMode selects the per-pixel effect applied by NoiseInjector.
type NoiseMode uint8

const (
	// NoiseRandomColor replaces a pixel's RGB channels with independent
	// uniform random bytes. Alpha is untouched.
	NoiseRandomColor NoiseMode = iota

	// NoisePixelSwap copies the RGB channels of another uniformly chosen
	// pixel from the buffer onto the current pixel. Alpha is untouched.
	NoisePixelSwap
)

// String returns a string representation of the noise mode.
func (m NoiseMode) String() string {
	switch m {
	case NoiseRandomColor:
		return "RandomColor"
	case NoisePixelSwap:
		return "PixelSwap"
	default:
		return "Unknown"
	}
}

// NoiseInjector replaces pixels with noise. Every pixel inside the
// region is considered independently: with probability Ratio the mode's
// effect is applied to it.
type NoiseInjector struct {
	// Ratio is the per-pixel application probability in [0, 1].
	Ratio float64

	// Mode selects the noise effect.
	Mode NoiseMode

	// Region optionally restricts the noise to part of the buffer. The
	// zero value covers the whole image. Swap sources are always drawn
	// from the entire buffer, not just the region.
	Region Region

	// Rand is the random source. Nil means an auto-seeded source.
	Rand *rand.Rand
}

// NewNoiseInjector creates a noise injector with the given probability
// and mode.
func NewNoiseInjector(ratio float64, mode NoiseMode) *NoiseInjector {
	return &NoiseInjector{Ratio: ratio, Mode: mode}
}

// Apply injects noise into the pixmap in place. The pixmap is left
// unmodified on error.
func (n *NoiseInjector) Apply(p *Pixmap) error {
	if err := p.validate(); err != nil {
		return err
	}
	if n.Ratio < 0 || n.Ratio > 1 {
		return ErrInvalidParameter
	}
	if n.Mode != NoiseRandomColor && n.Mode != NoisePixelSwap {
		return ErrInvalidParameter
	}
	if err := n.Region.validate(); err != nil {
		return err
	}

	Logger().Debug("noise",
		"width", p.Width(), "height", p.Height(),
		"ratio", n.Ratio, "mode", n.Mode, "region", n.Region.Kind)

	rng := ensureRand(n.Rand)
	data := p.Data()
	pixels := p.Width() * p.Height()

	for y := range p.Height() {
		for x := range p.Width() {
			if !n.Region.Contains(x, y) {
				continue
			}
			if rng.Float64() >= n.Ratio {
				continue
			}

			i := (y*p.Width() + x) * 4
			switch n.Mode {
			case NoiseRandomColor:
				data[i+0] = uint8(rng.IntN(256))
				data[i+1] = uint8(rng.IntN(256))
				data[i+2] = uint8(rng.IntN(256))
			case NoisePixelSwap:
				// Source offset is pixel-aligned; channels never
				// straddle two pixels.
				j := rng.IntN(pixels) * 4
				data[i+0] = data[j+0]
				data[i+1] = data[j+1]
				data[i+2] = data[j+2]
			}
		}
	}
	return nil
}
