// Package overlay draws the contents of a debug.Instrument onto a Canvas.
package overlay

import (
	"fmt"
	"image/color"

	"gamedebug/debug"
)

// Canvas is the drawing boundary. Coordinates are in pixels, y grows downward,
// and text y is the baseline.
type Canvas interface {
	DrawRectangle(x, y, w, h float32, c color.RGBA)
	DrawText(text string, x, y, size float32, c color.RGBA)
	ViewportHeight() float32
}

const (
	// FontSize is the text size and the line advance of both panels.
	FontSize = 20
	// PanelWidth is the width of the translucent panel behind each text block.
	PanelWidth = 420
	// LogLines is how many persistent records the bottom panel shows.
	LogLines = 10
)

var (
	// PanelColor is the translucent black behind overlay text.
	PanelColor = color.RGBA{R: 0, G: 0, B: 0, A: 100}
	// TextColor is the overlay text color.
	TextColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// DrawWorld draws every immediate Shape in world space. Messages are ignored.
func DrawWorld(c Canvas, in *debug.Instrument) {
	if !in.Enabled() {
		return
	}
	v := worldVisitor{c: c}
	for _, e := range in.Immediate.Snapshot() {
		e.Accept(v)
	}
}

type worldVisitor struct {
	c Canvas
}

func (v worldVisitor) VisitMessage(debug.Message) {}

func (v worldVisitor) VisitShape(s debug.Shape) {
	v.c.DrawRectangle(s.X, s.Y, s.W, s.H, s.Color)
}

// textVisitor collects message text; shapes carry none.
type textVisitor struct {
	lines []string
}

func (v *textVisitor) VisitMessage(m debug.Message) { v.lines = append(v.lines, m.Text) }
func (v *textVisitor) VisitShape(debug.Shape)       {}

// DrawOverlay draws the per-frame message panel at the top of the viewport and
// the persistent log tail at the bottom.
func DrawOverlay(c Canvas, in *debug.Instrument) {
	if !in.Enabled() {
		return
	}

	var imm textVisitor
	for _, e := range in.Immediate.Snapshot() {
		e.Accept(&imm)
	}

	c.DrawRectangle(0, 0, PanelWidth, float32(len(imm.lines)+2)*FontSize, PanelColor)
	y := float32(FontSize)
	c.DrawText(fmt.Sprintf("= Debug (frame %d) =", in.Frame()), 0, y, FontSize, TextColor)
	for _, s := range imm.lines {
		y += FontSize
		c.DrawText(s, 0, y, FontSize, TextColor)
	}

	vh := c.ViewportHeight()
	h := float32(FontSize * LogLines)
	c.DrawRectangle(0, vh-h, PanelWidth, h, PanelColor)
	for i, r := range in.Persistent.Recent(LogLines) {
		// shapes keep their slot in the tail but have nothing to print
		var v textVisitor
		r.Entry.Accept(&v)
		for _, s := range v.lines {
			c.DrawText(fmt.Sprintf("%d: %s", r.Frame, s), 0, vh-float32(i)*FontSize, FontSize, TextColor)
		}
	}
}

// Offset returns a Canvas that translates every draw by (dx, dy). It maps world
// coordinates to screen coordinates for a camera positioned at (-dx, -dy).
func Offset(c Canvas, dx, dy float32) Canvas {
	return offsetCanvas{c: c, dx: dx, dy: dy}
}

type offsetCanvas struct {
	c      Canvas
	dx, dy float32
}

func (o offsetCanvas) DrawRectangle(x, y, w, h float32, c color.RGBA) {
	o.c.DrawRectangle(x+o.dx, y+o.dy, w, h, c)
}

func (o offsetCanvas) DrawText(text string, x, y, size float32, c color.RGBA) {
	o.c.DrawText(text, x+o.dx, y+o.dy, size, c)
}

func (o offsetCanvas) ViewportHeight() float32 { return o.c.ViewportHeight() }
