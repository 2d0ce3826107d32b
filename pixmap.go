package scrambler

import (
	"image"
	"image/color"
)

// Pixmap represents a rectangular pixel buffer.
// Pixel data is stored as non-premultiplied RGBA, 4 bytes per pixel,
// row-major; the byte offset of pixel (x, y) channel c is (y*width+x)*4+c.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new pixmap with the given dimensions.
// Dimensions below 1 are clamped to 0, producing an empty pixmap that
// transforms reject with ErrInvalidBuffer.
func NewPixmap(width, height int) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// FromRaw creates a pixmap wrapping existing RGBA data without copying.
// Returns ErrInvalidBuffer if dimensions are non-positive or the data
// length does not equal width*height*4.
func FromRaw(data []uint8, width, height int) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidBuffer
	}
	if len(data) != width*height*4 {
		return nil, ErrInvalidBuffer
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   data,
	}, nil
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
// Modifying the returned slice modifies the pixmap.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// GetRGBA returns the color at (x, y) as (r, g, b, a) in 0-255 range.
// Returns (0, 0, 0, 0) if coordinates are out of bounds.
func (p *Pixmap) GetRGBA(x, y int) (r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0, 0, 0, 0
	}
	i := (y*p.width + x) * 4
	return p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3]
}

// SetRGBA sets the color at (x, y) from (r, g, b, a) in 0-255 range.
// Coordinates outside the pixmap bounds are ignored.
func (p *Pixmap) SetRGBA(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = r
	p.data[i+1] = g
	p.data[i+2] = b
	p.data[i+3] = a
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (p *Pixmap) PixelOffset(x, y int) int {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return -1
	}
	return (y*p.width + x) * 4
}

// RowBytes returns a slice of the pixel data for row y.
// Returns nil if y is out of bounds.
func (p *Pixmap) RowBytes(y int) []uint8 {
	if y < 0 || y >= p.height {
		return nil
	}
	start := y * p.width * 4
	return p.data[start : start+p.width*4]
}

// SubPixmap extracts the rectangle (x, y, w, h) into a new pixmap.
// The rectangle is clipped to the pixmap bounds, so edge tiles whose
// nominal size overhangs the image come back smaller. Returns an empty
// pixmap when the clipped rectangle is degenerate.
func (p *Pixmap) SubPixmap(x, y, w, h int) *Pixmap {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, p.width), min(y+h, p.height)
	if x0 >= x1 || y0 >= y1 {
		return NewPixmap(0, 0)
	}

	sub := NewPixmap(x1-x0, y1-y0)
	for row := y0; row < y1; row++ {
		src := p.data[(row*p.width+x0)*4 : (row*p.width+x1)*4]
		dst := sub.RowBytes(row - y0)
		copy(dst, src)
	}
	return sub
}

// Blit writes src's pixels into the pixmap starting at (x, y).
// Any portion falling outside the pixmap bounds is clipped rather than
// reported as an error; tile reassembly relies on this when a relocated
// tile lands on a slot smaller than its own captured size.
func (p *Pixmap) Blit(src *Pixmap, x, y int) {
	if src == nil || src.width == 0 || src.height == 0 {
		return
	}

	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+src.width, p.width), min(y+src.height, p.height)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	for row := y0; row < y1; row++ {
		srcRow := src.RowBytes(row - y)
		srcStart := (x0 - x) * 4
		dst := p.data[(row*p.width+x0)*4 : (row*p.width+x1)*4]
		copy(dst, srcRow[srcStart:srcStart+(x1-x0)*4])
	}
}

// Clone creates a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	data := make([]uint8, len(p.data))
	copy(data, p.data)
	return &Pixmap{
		width:  p.width,
		height: p.height,
		data:   data,
	}
}

// Equal reports whether two pixmaps have identical dimensions and pixel
// data.
func (p *Pixmap) Equal(other *Pixmap) bool {
	if other == nil || p.width != other.width || p.height != other.height {
		return false
	}
	for i, v := range p.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// validate reports whether the pixmap can be transformed.
func (p *Pixmap) validate() error {
	if p == nil || p.width <= 0 || p.height <= 0 {
		return ErrInvalidBuffer
	}
	if len(p.data) != p.width*p.height*4 {
		return ErrInvalidBuffer
	}
	return nil
}

// ToImage converts the pixmap to an image.NRGBA sharing no memory with
// the pixmap.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	// Fast path for NRGBA images.
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range height {
			srcStart := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(pm.RowBytes(y), nrgba.Pix[srcStart:srcStart+width*4])
		}
		return pm
	}

	// Generic slow path for any image type.
	for y := range height {
		for x := range width {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			nc := color.NRGBAModel.Convert(c).(color.NRGBA)
			pm.SetRGBA(x, y, nc.R, nc.G, nc.B, nc.A)
		}
	}
	return pm
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	r, g, b, a := p.GetRGBA(x, y)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
