package debug

import (
	"fmt"
	"image/color"
)

// Entry is a single debug fact: a Message or a Shape.
//
// The variant set is closed. Consumers dispatch through Visitor so a new variant
// is a compile error at every consumer instead of a silent miss.
type Entry interface {
	Accept(v Visitor)
	fmt.Stringer
	entry()
}

// Visitor handles every Entry variant.
type Visitor interface {
	VisitMessage(m Message)
	VisitShape(s Shape)
}

// Message is an opaque, pre-formatted line of text.
type Message struct {
	Text string
}

func (m Message) Accept(v Visitor) { v.VisitMessage(m) }
func (m Message) String() string   { return m.Text }
func (Message) entry()             {}

// Shape is an axis-aligned rectangle in world coordinates.
//
// Geometry and color are not validated; they reach the canvas as given.
type Shape struct {
	X, Y  float32
	W, H  float32
	Color color.RGBA
}

func (s Shape) Accept(v Visitor) { v.VisitShape(s) }

func (s Shape) String() string {
	return fmt.Sprintf("rect %g,%g %gx%g #%02x%02x%02x%02x", s.X, s.Y, s.W, s.H, s.Color.R, s.Color.G, s.Color.B, s.Color.A)
}

func (Shape) entry() {}

// Record is a persistent entry stamped with the frame it was recorded in.
type Record struct {
	Frame uint64
	Entry Entry
}

func (r Record) String() string {
	return fmt.Sprintf("%d: %s", r.Frame, r.Entry)
}
