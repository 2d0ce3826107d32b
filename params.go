package scrambler

// Control value bounds for the shared UI slider.
const (
	ControlMin = 1
	ControlMax = 150
)

// ControlValue is the raw value of the single UI control shared between
// the transforms. Each transform interprets it differently: a tile count
// for tile scrambling, a block side length for mosaic, and a percentage
// for noise. Converting it here keeps the ambiguously-typed number out
// of the engine; transforms only ever see explicit typed parameters.
type ControlValue int

// Validate reports whether the control value is within the supported
// 1-150 range.
func (v ControlValue) Validate() error {
	if v < ControlMin || v > ControlMax {
		return ErrInvalidParameter
	}
	return nil
}

// TileCells interprets the control as a tile-count parameter: larger
// values produce more, smaller tiles.
func (v ControlValue) TileCells() int {
	return int(v)
}

// CellSize interprets the control as a mosaic block side length in
// pixels.
func (v ControlValue) CellSize() int {
	return int(v)
}

// Ratio interprets the control as a per-pixel application probability,
// value/100 clamped to [0, 1]. Control values above 100 saturate: a
// probability above certainty is indistinguishable from certainty.
func (v ControlValue) Ratio() float64 {
	r := float64(v) / 100
	if r > 1 {
		return 1
	}
	return r
}
