package scrambler

import "math"

// trackerState enumerates the PointerTracker states.
type trackerState uint8

const (
	trackerIdle trackerState = iota
	trackerDragging
)

// PointerTracker converts a press/drag/release pointer sequence into a
// circular Region. The press point becomes the circle center; the radius
// is the distance from the center to the release point. Move events while
// dragging emit live preview regions the caller can render with
// RenderPreview without touching the underlying buffer.
//
// A tracker is reusable across any number of drag gestures. Move and
// Release while idle are no-ops, not errors.
type PointerTracker struct {
	state   trackerState
	centerX float64
	centerY float64
	radius  float64
}

// NewPointerTracker creates an idle tracker.
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{}
}

// Dragging reports whether a drag gesture is in progress.
func (t *PointerTracker) Dragging() bool {
	return t.state == trackerDragging
}

// Press begins a drag gesture at (x, y). The point becomes the center of
// the region being selected and the radius resets to 0. Pressing during
// an ongoing drag restarts the gesture at the new point.
func (t *PointerTracker) Press(x, y float64) {
	t.state = trackerDragging
	t.centerX = x
	t.centerY = y
	t.radius = 0
}

// Move updates the drag gesture with the pointer at (x, y) and returns a
// live preview region. The second return value is false when no drag is
// in progress, in which case the move is ignored.
func (t *PointerTracker) Move(x, y float64) (Region, bool) {
	if t.state != trackerDragging {
		return Region{}, false
	}
	t.radius = math.Hypot(x-t.centerX, y-t.centerY)
	return Circle(t.centerX, t.centerY, t.radius), true
}

// Release ends the drag gesture at (x, y) and returns the finalized
// region with radius equal to the distance from the press point. Any
// interim preview radius from Move is discarded. The second return value
// is false when no drag was in progress.
func (t *PointerTracker) Release(x, y float64) (Region, bool) {
	if t.state != trackerDragging {
		return Region{}, false
	}
	t.state = trackerIdle
	t.radius = math.Hypot(x-t.centerX, y-t.centerY)
	return Circle(t.centerX, t.centerY, t.radius), true
}
