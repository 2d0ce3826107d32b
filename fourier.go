package scrambler

import (
	"math"
	"math/cmplx"
	"math/rand/v2"

	"gonum.org/v1/gonum/dsp/fourier"
)

// PaddingMode selects how a channel is padded to the square FFT size.
type PaddingMode uint8

const (
	// PaddingZero pads with zeros.
	PaddingZero PaddingMode = iota

	// PaddingReflect mirrors the image content into the padding.
	PaddingReflect

	// PaddingWrap tiles the image content into the padding.
	PaddingWrap
)

// String returns a string representation of the padding mode.
func (m PaddingMode) String() string {
	switch m {
	case PaddingZero:
		return "Zero"
	case PaddingReflect:
		return "Reflect"
	case PaddingWrap:
		return "Wrap"
	default:
		return "Unknown"
	}
}

// FourierScrambler scrambles an image in the frequency domain: each RGB
// channel is transformed with a 2-D FFT, the phase of every coefficient
// is pushed toward a random phase while its magnitude is preserved, and
// the channel is transformed back. Magnitude-preserving phase
// randomization keeps the image's power spectrum intact, which is what
// makes the transform useful as a perception-experiment control
// condition.
//
// Channels are padded to a power-of-two square before the transform;
// alpha is untouched.
type FourierScrambler struct {
	// Intensity interpolates between the original phase (0) and a fully
	// random phase (1).
	Intensity float64

	// Padding selects how channels are padded to the FFT size.
	Padding PaddingMode

	// Rand is the random source for phase draws. Nil means an
	// auto-seeded source.
	Rand *rand.Rand
}

// NewFourierScrambler creates a Fourier scrambler with the given
// intensity and zero padding.
func NewFourierScrambler(intensity float64) *FourierScrambler {
	return &FourierScrambler{Intensity: intensity}
}

// Apply phase-scrambles the pixmap in place. The pixmap is left
// unmodified on error.
func (f *FourierScrambler) Apply(p *Pixmap) error {
	if err := p.validate(); err != nil {
		return err
	}
	if f.Intensity < 0 || f.Intensity > 1 {
		return ErrInvalidParameter
	}
	if f.Padding > PaddingWrap {
		return ErrInvalidParameter
	}

	width, height := p.Width(), p.Height()
	n := nextPowTwo(max(width, height))
	fft := fourier.NewCmplxFFT(n)
	rng := ensureRand(f.Rand)

	Logger().Debug("fourier scramble",
		"width", width, "height", height, "fftSize", n,
		"intensity", f.Intensity, "padding", f.Padding)

	data := p.Data()
	for c := range 3 {
		channel := make([]float64, width*height)
		for i := range channel {
			channel[i] = float64(data[i*4+c]) / 255
		}

		padded := f.pad(channel, width, height, n)
		fft2d(fft, padded, n)
		phaseScramble(padded, n, f.Intensity, rng)
		ifft2d(fft, padded, n)

		// Unpad, clamp to [0, 1], and write the channel back.
		for y := range height {
			for x := range width {
				v := real(padded[y*n+x])
				v = math.Min(math.Max(v, 0), 1)
				data[(y*width+x)*4+c] = uint8(v*255 + 0.5)
			}
		}
	}
	return nil
}

// pad expands a width x height channel into an n x n complex grid using
// the configured padding mode.
func (f *FourierScrambler) pad(channel []float64, width, height, n int) []complex128 {
	padded := make([]complex128, n*n)

	switch f.Padding {
	case PaddingReflect:
		for y := range height {
			for x := range width {
				padded[y*n+x] = complex(channel[y*width+x], 0)
			}
			for x := width; x < n; x++ {
				// Mirror horizontally; repeat the reflection for
				// padding wider than the image.
				sx := reflectIndex(x, width)
				padded[y*n+x] = complex(channel[y*width+sx], 0)
			}
		}
		for y := height; y < n; y++ {
			sy := reflectIndex(y, height)
			copy(padded[y*n:(y+1)*n], padded[sy*n:(sy+1)*n])
		}
	case PaddingWrap:
		for y := range n {
			for x := range n {
				padded[y*n+x] = complex(channel[(y%height)*width+x%width], 0)
			}
		}
	default: // PaddingZero
		for y := range height {
			for x := range width {
				padded[y*n+x] = complex(channel[y*width+x], 0)
			}
		}
	}
	return padded
}

// reflectIndex mirrors index i into [0, size) across the boundary at
// size-1, bouncing back and forth for arbitrarily deep padding.
func reflectIndex(i, size int) int {
	if size == 1 {
		return 0
	}
	period := 2 * (size - 1)
	i %= period
	if i >= size {
		i = period - i
	}
	return i
}

// fft2d computes the 2-D FFT of an n x n grid in place by transforming
// rows, then columns.
func fft2d(fft *fourier.CmplxFFT, data []complex128, n int) {
	scratch := make([]complex128, n)
	for row := range n {
		copy(scratch, data[row*n:(row+1)*n])
		fft.Coefficients(data[row*n:(row+1)*n], scratch)
	}

	column := make([]complex128, n)
	for col := range n {
		for row := range n {
			column[row] = data[row*n+col]
		}
		fft.Coefficients(scratch, column)
		for row := range n {
			data[row*n+col] = scratch[row]
		}
	}
}

// ifft2d computes the 2-D inverse FFT of an n x n grid in place,
// scaling the result by 1/(n*n).
func ifft2d(fft *fourier.CmplxFFT, data []complex128, n int) {
	scratch := make([]complex128, n)
	for row := range n {
		copy(scratch, data[row*n:(row+1)*n])
		fft.Sequence(data[row*n:(row+1)*n], scratch)
	}

	column := make([]complex128, n)
	for col := range n {
		for row := range n {
			column[row] = data[row*n+col]
		}
		fft.Sequence(scratch, column)
		for row := range n {
			data[row*n+col] = scratch[row]
		}
	}

	scale := complex(1/float64(n*n), 0)
	for i := range data {
		data[i] *= scale
	}
}

// phaseScramble replaces the phase of each frequency coefficient while
// preserving its magnitude. For each coefficient the new phase is
//
//	orig + intensity*angleDiff(random, orig)
//
// and the symmetric counterpart is set to the conjugate so the inverse
// transform stays real.
func phaseScramble(data []complex128, n int, intensity float64, rng *rand.Rand) {
	for y := range n {
		for x := range n {
			symY := (n - y) % n
			symX := (n - x) % n
			// Process each Hermitian pair only once.
			if y > symY || (y == symY && x > symX) {
				continue
			}

			idx := y*n + x
			orig := data[idx]
			mag := cmplx.Abs(orig)
			origPhase := cmplx.Phase(orig)
			randomPhase := rng.Float64() * 2 * math.Pi

			newPhase := origPhase + intensity*angleDiff(randomPhase, origPhase)
			newVal := cmplx.Rect(mag, newPhase)
			data[idx] = newVal
			if y != symY || x != symX {
				data[symY*n+symX] = cmplx.Conj(newVal)
			}
		}
	}
}

// angleDiff computes the minimal angular difference a-b in radians,
// wrapped to (-pi, pi].
func angleDiff(a, b float64) float64 {
	diff := a - b
	for diff > math.Pi {
		diff -= 2 * math.Pi
	}
	for diff < -math.Pi {
		diff += 2 * math.Pi
	}
	return diff
}

// nextPowTwo returns the smallest power of two >= v.
func nextPowTwo(v int) int {
	n := 1
	for n < v {
		n <<= 1
	}
	return n
}
