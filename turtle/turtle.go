// Package turtle implements the pen state machine that converts heading and
// distance commands into canvas draw requests.
package turtle

import (
	"errors"
	"fmt"

	"github.com/Sheeplet1/gologo/canvas"
)

// ErrColorOutOfRange reports a SETPENCOLOR index outside [0, 15].
var ErrColorOutOfRange = errors.New("colour index must be between 0 and 15 inclusive")

// Turtle is the virtual pen. Position and heading change only through
// command execution; queries read the exported fields directly.
type Turtle struct {
	X, Y     float32
	Heading  int // degrees, 0 is up, never normalised
	PenColor int

	penDown bool
	canvas  canvas.Canvas
}

// New places a pen-up turtle at the canvas center with heading 0 and the
// default white pen. The turtle owns the canvas for one script run.
func New(c canvas.Canvas) *Turtle {
	w, h := c.Size()
	return &Turtle{
		X:        float32(w) / 2,
		Y:        float32(h) / 2,
		PenColor: 7,
		canvas:   c,
	}
}

func (t *Turtle) PenUp()   { t.penDown = false }
func (t *Turtle) PenDown() { t.penDown = true }

// IsPenDown reports whether motion currently draws.
func (t *Turtle) IsPenDown() bool { return t.penDown }

// SetPenColor applies the [0, 15] range check regardless of whether the
// value came from a literal, a variable, or a query.
func (t *Turtle) SetPenColor(color int) error {
	if color < 0 || color > 15 {
		return ErrColorOutOfRange
	}
	t.PenColor = color
	return nil
}

// Turn adds degrees to the heading without normalising.
func (t *Turtle) Turn(degrees int) {
	t.Heading += degrees
}

// SetHeading overwrites the heading without normalising.
func (t *Turtle) SetHeading(degrees int) {
	t.Heading = degrees
}

// SetX teleports the turtle horizontally; no line is drawn even with the
// pen down.
func (t *Turtle) SetX(x float32) {
	t.X = x
}

// SetY teleports the turtle vertically; no line is drawn even with the pen
// down.
func (t *Turtle) SetY(y float32) {
	t.Y = y
}

// Move advances distance along the given heading. With the pen down the
// canvas draws the segment, possibly clipped, and the turtle adopts
// whatever endpoint the canvas reports. With the pen up the destination is
// computed directly and no draw request is issued.
func (t *Turtle) Move(heading int, distance float32) error {
	if !t.penDown {
		t.X, t.Y = canvas.EndPoint(t.X, t.Y, heading, distance)
		return nil
	}
	x, y, err := t.canvas.DrawSegment(t.X, t.Y, heading, distance, t.PenColor)
	if err != nil {
		return fmt.Errorf("drawing segment: %w", err)
	}
	t.X, t.Y = x, y
	return nil
}

func (t *Turtle) Forward(distance float32) error { return t.Move(t.Heading, distance) }
func (t *Turtle) Back(distance float32) error    { return t.Move(t.Heading+180, distance) }
func (t *Turtle) Left(distance float32) error    { return t.Move(t.Heading-90, distance) }
func (t *Turtle) Right(distance float32) error   { return t.Move(t.Heading+90, distance) }
