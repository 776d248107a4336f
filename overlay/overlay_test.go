package overlay

import (
	"fmt"
	"image/color"
	"testing"

	"gamedebug/debug"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rectCall struct {
	X, Y, W, H float32
	C          color.RGBA
}

type textCall struct {
	Text string
	X, Y float32
}

type recorder struct {
	height float32
	rects  []rectCall
	texts  []textCall
}

func (r *recorder) DrawRectangle(x, y, w, h float32, c color.RGBA) {
	r.rects = append(r.rects, rectCall{x, y, w, h, c})
}

func (r *recorder) DrawText(text string, x, y, size float32, c color.RGBA) {
	r.texts = append(r.texts, textCall{text, x, y})
}

func (r *recorder) ViewportHeight() float32 { return r.height }

var red = color.RGBA{R: 0xff, A: 0xff}

func TestGateOffDrawsNothing(t *testing.T) {
	in := debug.New()
	in.Persistf("history")
	c := &recorder{height: 480}

	DrawWorld(c, in)
	DrawOverlay(c, in)
	assert.Empty(t, c.rects)
	assert.Empty(t, c.texts)
}

func TestShapeExcludedFromPanel(t *testing.T) {
	in := debug.New()
	in.Toggle()
	in.Rect(0, 0, 10, 10, red)
	in.Msgf("hp:100")

	world := &recorder{height: 480}
	DrawWorld(world, in)
	require.Len(t, world.rects, 1)
	assert.Equal(t, rectCall{0, 0, 10, 10, red}, world.rects[0])
	assert.Empty(t, world.texts)

	c := &recorder{height: 480}
	DrawOverlay(c, in)
	require.Len(t, c.rects, 2)
	assert.Equal(t, rectCall{0, 0, PanelWidth, 3 * FontSize, PanelColor}, c.rects[0])
	assert.Equal(t, rectCall{0, 480 - 10*FontSize, PanelWidth, 10 * FontSize, PanelColor}, c.rects[1])

	assert.Equal(t, []textCall{
		{"= Debug (frame 0) =", 0, FontSize},
		{"hp:100", 0, 2 * FontSize},
	}, c.texts)
}

func TestOverlayHeaderFrame(t *testing.T) {
	in := debug.New()
	in.Toggle()
	for range 7 {
		in.EndFrame()
	}

	c := &recorder{height: 300}
	DrawOverlay(c, in)
	require.NotEmpty(t, c.texts)
	assert.Equal(t, "= Debug (frame 7) =", c.texts[0].Text)
	assert.Equal(t, float32(2*FontSize), c.rects[0].H)
}

func TestOverlayPersistentTail(t *testing.T) {
	in := debug.New()
	in.Toggle()
	for i := range 12 {
		in.Persistf("m%d", i)
		in.Clock.Advance()
	}

	c := &recorder{height: 600}
	DrawOverlay(c, in)

	// header only in the top panel, then ten log lines
	require.Len(t, c.texts, 1+LogLines)
	tail := c.texts[1:]
	for i, tc := range tail {
		n := 11 - i
		assert.Equal(t, fmt.Sprintf("%d: m%d", n, n), tc.Text)
		assert.Equal(t, float32(600-i*FontSize), tc.Y)
	}
}

func TestOverlaySkipsPersistentShapes(t *testing.T) {
	in := debug.New()
	in.Toggle()
	in.Persistf("old")
	in.Per(debug.Shape{W: 1, H: 1})
	in.Persistf("new")

	c := &recorder{height: 400}
	DrawOverlay(c, in)

	require.Len(t, c.texts, 3)
	assert.Equal(t, textCall{"0: new", 0, 400}, c.texts[1])
	// the shape keeps its row
	assert.Equal(t, textCall{"0: old", 0, 400 - 2*FontSize}, c.texts[2])
}

func TestMalformedGeometryPassesThrough(t *testing.T) {
	in := debug.New()
	in.Toggle()
	odd := color.RGBA{R: 1, G: 2, B: 3, A: 0}
	in.Rect(-5, 3, -10, 0, odd)

	c := &recorder{}
	DrawWorld(c, in)
	require.Len(t, c.rects, 1)
	assert.Equal(t, rectCall{-5, 3, -10, 0, odd}, c.rects[0])
}

func TestOffset(t *testing.T) {
	in := debug.New()
	in.Toggle()
	in.Rect(10, 20, 5, 5, red)

	c := &recorder{height: 100}
	DrawWorld(Offset(c, -10, 30), in)
	require.Len(t, c.rects, 1)
	assert.Equal(t, rectCall{0, 50, 5, 5, red}, c.rects[0])
	assert.Equal(t, float32(100), Offset(c, 1, 1).ViewportHeight())
}
