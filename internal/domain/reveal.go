package domain

import "math"

// Scratch card geometry, in logical units.
const (
	RevealWidth  = 280
	RevealHeight = 80
	EraseRadius  = 14

	// OcclusionColor is the colour of the scratchable layer.
	OcclusionColor = "#b0b0b0"
)

// Supported device pixel ratios. The mask holds ceil(280·ratio)×ceil(80·ratio) cells.
const (
	MinPixelRatio = 1.0
	MaxPixelRatio = 4.0
)

// ValidPixelRatio reports whether ratio is within [MinPixelRatio, MaxPixelRatio].
func ValidPixelRatio(ratio float64) bool {
	return ratio >= MinPixelRatio && ratio <= MaxPixelRatio
}

// RevealStatus is the state of a RevealSurface.
type RevealStatus int

// Available RevealStatus values.
const (
	RevealUninitialized RevealStatus = iota
	RevealOccluded
	RevealPartiallyRevealed
)

// Point is a position, either on screen or in logical surface units.
type Point struct {
	X, Y float64
}

// Box is an axis-aligned rectangle. For Layout it is the surface's on-screen box;
// for Coverage it is a region in logical units.
type Box struct {
	Left, Top, Width, Height float64
}

// affine maps on-screen points to logical points.
type affine struct {
	originX, originY float64
	scaleX, scaleY   float64
}

func (a affine) apply(p Point) Point {
	return Point{
		X: (p.X - a.originX) * a.scaleX,
		Y: (p.Y - a.originY) * a.scaleY,
	}
}

// RevealSurface is a scratch card: an occlusion mask over a message that gestures erase.
// The mask is stored at backing-store resolution (logical size times pixel ratio).
// It is not safe for concurrent use; drive it from a single goroutine.
type RevealSurface struct {
	pixelRatio float64
	message    string

	cols, rows int
	mask       []bool // true while occluded
	occluded   int

	box       Box
	toLogical affine
	engaged   bool
}

// NewRevealSurface creates an uninitialized surface. A non-positive or non-finite
// ratio means 1; other ratios are clamped to [MinPixelRatio, MaxPixelRatio].
func NewRevealSurface(pixelRatio float64) *RevealSurface {
	switch {
	case pixelRatio <= 0 || math.IsNaN(pixelRatio) || math.IsInf(pixelRatio, 0):
		pixelRatio = 1
	case pixelRatio < MinPixelRatio:
		pixelRatio = MinPixelRatio
	case pixelRatio > MaxPixelRatio:
		pixelRatio = MaxPixelRatio
	}

	return &RevealSurface{
		pixelRatio: pixelRatio,
		box:        Box{Width: RevealWidth, Height: RevealHeight},
	}
}

// SetMessage re-initializes the surface when msg differs from the current message.
// A non-empty message yields a fully occluded card; an empty one discards the layer.
// Any gesture in progress is dropped either way.
func (s *RevealSurface) SetMessage(msg string) {
	if msg == s.message && (msg == "" || s.mask != nil) {
		return
	}

	s.message = msg
	s.Reset()
}

// Reset re-covers the whole card for the current message.
func (s *RevealSurface) Reset() {
	s.engaged = false

	if s.message == "" {
		s.cols, s.rows = 0, 0
		s.mask = nil
		s.occluded = 0

		return
	}

	s.cols = int(math.Ceil(RevealWidth * s.pixelRatio))
	s.rows = int(math.Ceil(RevealHeight * s.pixelRatio))
	s.mask = make([]bool, s.cols*s.rows)

	for i := range s.mask {
		s.mask[i] = true
	}

	s.occluded = len(s.mask)
	s.recomputeTransform()
}

// Layout records where the surface is drawn on screen and recomputes the input transform.
// Degenerate boxes are ignored.
func (s *RevealSurface) Layout(box Box) {
	if box.Width <= 0 || box.Height <= 0 {
		return
	}

	s.box = box
	s.recomputeTransform()
}

func (s *RevealSurface) recomputeTransform() {
	cols, rows := float64(s.cols), float64(s.rows)
	if s.mask == nil {
		cols, rows = RevealWidth*s.pixelRatio, RevealHeight*s.pixelRatio
	}

	s.toLogical = affine{
		originX: s.box.Left,
		originY: s.box.Top,
		scaleX:  cols / s.box.Width / s.pixelRatio,
		scaleY:  rows / s.box.Height / s.pixelRatio,
	}
}

// ToLogical converts an on-screen point to logical surface coordinates.
func (s *RevealSurface) ToLogical(p Point) Point {
	return s.toLogical.apply(p)
}

// Engage starts a stroke and erases under p (on-screen coordinates).
func (s *RevealSurface) Engage(p Point) {
	if s.mask == nil {
		return
	}

	s.engaged = true
	s.EraseAt(s.ToLogical(p))
}

// Continue erases under p while a stroke is active.
func (s *RevealSurface) Continue(p Point) {
	if !s.engaged || s.mask == nil {
		return
	}

	s.EraseAt(s.ToLogical(p))
}

// Disengage ends the stroke. Erased areas stay erased.
func (s *RevealSurface) Disengage() {
	s.engaged = false
}

// Engaged reports whether a stroke is active.
func (s *RevealSurface) Engaged() bool {
	return s.engaged
}

// EraseAt clears a disc of EraseRadius around the logical point and returns how
// many backing pixels it newly revealed.
func (s *RevealSurface) EraseAt(p Point) int {
	if s.mask == nil {
		return 0
	}

	cx, cy := p.X*s.pixelRatio, p.Y*s.pixelRatio
	r := EraseRadius * s.pixelRatio

	x0 := clamp(int(math.Floor(cx-r)), 0, s.cols)
	x1 := clamp(int(math.Ceil(cx+r)), 0, s.cols)
	y0 := clamp(int(math.Floor(cy-r)), 0, s.rows)
	y1 := clamp(int(math.Ceil(cy+r)), 0, s.rows)

	revealed := 0

	for y := y0; y < y1; y++ {
		dy := float64(y) + 0.5 - cy
		for x := x0; x < x1; x++ {
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy > r*r {
				continue
			}

			i := y*s.cols + x
			if s.mask[i] {
				s.mask[i] = false
				revealed++
			}
		}
	}

	s.occluded -= revealed

	return revealed
}

// Status reports the surface state.
func (s *RevealSurface) Status() RevealStatus {
	switch {
	case s.mask == nil:
		return RevealUninitialized
	case s.occluded == len(s.mask):
		return RevealOccluded
	default:
		return RevealPartiallyRevealed
	}
}

// Message returns the hidden message.
func (s *RevealSurface) Message() string {
	return s.message
}

// Occluded reports whether the logical point is still covered. Points outside the card are not.
func (s *RevealSurface) Occluded(p Point) bool {
	if s.mask == nil {
		return false
	}

	x := int(math.Floor(p.X * s.pixelRatio))
	y := int(math.Floor(p.Y * s.pixelRatio))

	if x < 0 || y < 0 || x >= s.cols || y >= s.rows {
		return false
	}

	return s.mask[y*s.cols+x]
}

// Coverage returns the occluded fraction of backing pixels whose centres lie in
// the logical region. A region too small to contain a centre samples its midpoint.
func (s *RevealSurface) Coverage(region Box) float64 {
	if s.mask == nil {
		return 0
	}

	x0 := clamp(int(math.Ceil(region.Left*s.pixelRatio-0.5)), 0, s.cols)
	x1 := clamp(int(math.Ceil((region.Left+region.Width)*s.pixelRatio-0.5)), 0, s.cols)
	y0 := clamp(int(math.Ceil(region.Top*s.pixelRatio-0.5)), 0, s.rows)
	y1 := clamp(int(math.Ceil((region.Top+region.Height)*s.pixelRatio-0.5)), 0, s.rows)

	total, covered := 0, 0

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			total++

			if s.mask[y*s.cols+x] {
				covered++
			}
		}
	}

	if total == 0 {
		if s.Occluded(Point{X: region.Left + region.Width/2, Y: region.Top + region.Height/2}) {
			return 1
		}

		return 0
	}

	return float64(covered) / float64(total)
}

// RevealedFraction is the share of the card that has been scratched off.
func (s *RevealSurface) RevealedFraction() float64 {
	if len(s.mask) == 0 {
		return 0
	}

	return 1 - float64(s.occluded)/float64(len(s.mask))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
