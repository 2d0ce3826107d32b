package scrambler

import "math"

// RegionKind identifies the shape of a Region.
type RegionKind uint8

const (
	// RegionWhole selects every pixel of the buffer.
	RegionWhole RegionKind = iota

	// RegionCircle selects pixels strictly inside a circle.
	RegionCircle
)

// String returns a string representation of the region kind.
func (k RegionKind) String() string {
	switch k {
	case RegionWhole:
		return "Whole"
	case RegionCircle:
		return "Circle"
	default:
		return "Unknown"
	}
}

// Region is a predicate over pixel coordinates restricting where a
// transform applies. The zero value selects the whole buffer.
//
// A Region is owned transiently by one operation invocation; transforms
// read it but never modify it.
type Region struct {
	Kind    RegionKind
	CenterX float64
	CenterY float64
	Radius  float64
}

// WholeImage returns a region selecting every pixel.
func WholeImage() Region {
	return Region{Kind: RegionWhole}
}

// Circle returns a circular region centered at (cx, cy) with the given
// radius. A radius of 0 denotes a degenerate region selecting no pixels.
func Circle(cx, cy, radius float64) Region {
	return Region{
		Kind:    RegionCircle,
		CenterX: cx,
		CenterY: cy,
		Radius:  radius,
	}
}

// Contains reports whether pixel (x, y) lies inside the region.
// For a circle the test is strict: a pixel at distance exactly equal to
// the radius is outside.
func (r Region) Contains(x, y int) bool {
	switch r.Kind {
	case RegionCircle:
		dx := float64(x) - r.CenterX
		dy := float64(y) - r.CenterY
		return math.Sqrt(dx*dx+dy*dy) < r.Radius
	default:
		return true
	}
}

// validate reports whether the region parameters are usable.
func (r Region) validate() error {
	if r.Kind == RegionCircle && r.Radius < 0 {
		return ErrInvalidParameter
	}
	return nil
}
