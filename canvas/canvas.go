package canvas

import (
	"fmt"
	"math"
)

// Canvas accepts straight line segments from the turtle and reports its
// dimensions. Implementations own bounds clipping: DrawSegment returns the
// endpoint actually reached, which becomes the turtle's next position, so
// the turtle never needs bounds knowledge.
type Canvas interface {
	Size() (width, height int)
	DrawSegment(x0, y0 float32, heading int, distance float32, color int) (float32, float32, error)
}

// Segment is one recorded line in canvas coordinates.
type Segment struct {
	X0, Y0, X1, Y1 float32
	Color          int
}

// Image is an in-memory Canvas that records segments for later encoding.
type Image struct {
	width, height int
	segments      []Segment
}

// NewImage creates an empty canvas of the given dimensions.
func NewImage(width, height int) *Image {
	return &Image{width: width, height: height}
}

func (im *Image) Size() (int, int) {
	return im.width, im.height
}

// Segments returns the recorded segments in draw order.
func (im *Image) Segments() []Segment {
	return im.segments
}

// EndPoint computes the destination of a move from (x, y) along heading for
// distance. Heading 0 points up and y grows downward, the screen
// convention.
func EndPoint(x, y float32, heading int, distance float32) (float32, float32) {
	rad := float64(heading) * math.Pi / 180
	ex := x + distance*float32(math.Sin(rad))
	ey := y - distance*float32(math.Cos(rad))
	return ex, ey
}

// DrawSegment records the visible portion of the segment from (x0, y0)
// along heading for distance, clipped to the canvas bounds, and returns the
// endpoint reached. A segment that never enters the canvas records nothing
// and returns the geometric destination, so an off-canvas turtle can wander
// back later. Non-finite coordinates are the unrecoverable sink failure.
func (im *Image) DrawSegment(x0, y0 float32, heading int, distance float32, color int) (float32, float32, error) {
	x1, y1 := EndPoint(x0, y0, heading, distance)
	if !finite(x0) || !finite(y0) || !finite(x1) || !finite(y1) {
		return 0, 0, fmt.Errorf("segment endpoint not representable: (%v,%v) -> (%v,%v)", x0, y0, x1, y1)
	}
	seg, visible, clipped := clip(x0, y0, x1, y1, float32(im.width), float32(im.height))
	if !visible {
		return x1, y1, nil
	}
	seg.Color = color
	im.segments = append(im.segments, seg)
	if clipped {
		return seg.X1, seg.Y1, nil
	}
	return x1, y1, nil
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// clip runs Liang-Barsky against the rectangle [0,w] x [0,h]. clipped
// reports that the far endpoint was cut short.
func clip(x0, y0, x1, y1, w, h float32) (seg Segment, visible, clipped bool) {
	dx := x1 - x0
	dy := y1 - y0
	t0, t1 := float32(0), float32(1)
	p := [4]float32{-dx, dx, -dy, dy}
	q := [4]float32{x0, w - x0, y0, h - y0}
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return Segment{}, false, false
			}
			continue
		}
		r := q[i] / p[i]
		if p[i] < 0 {
			if r > t1 {
				return Segment{}, false, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return Segment{}, false, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	seg = Segment{
		X0: x0 + t0*dx,
		Y0: y0 + t0*dy,
		X1: x0 + t1*dx,
		Y1: y0 + t1*dy,
	}
	return seg, true, t1 < 1
}
