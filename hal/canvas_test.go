package hal

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pixelAt(fb *hostFramebuffer, x, y int) (r, g, b uint8) {
	off := y*fb.stride + x*2
	return rgb888From565(uint16(fb.buf[off]) | uint16(fb.buf[off+1])<<8)
}

func countLit(fb *hostFramebuffer) int {
	n := 0
	for i := 0; i < len(fb.buf); i += 2 {
		if fb.buf[i] != 0 || fb.buf[i+1] != 0 {
			n++
		}
	}
	return n
}

func TestCanvasOpaqueRectangle(t *testing.T) {
	fb := newHostFramebuffer(16, 16)
	c := NewFBCanvas(fb)

	c.DrawRectangle(2, 3, 4, 5, color.RGBA{R: 0xff, A: 0xff})

	r, g, b := pixelAt(fb, 2, 3)
	assert.Equal(t, [3]uint8{0xff, 0, 0}, [3]uint8{r, g, b})
	r, _, _ = pixelAt(fb, 5, 7)
	assert.Equal(t, uint8(0xff), r)
	r, _, _ = pixelAt(fb, 6, 3)
	assert.Equal(t, uint8(0), r)
	assert.Equal(t, 4*5, countLit(fb))
}

func TestCanvasClipsAndIgnoresNegativeSize(t *testing.T) {
	fb := newHostFramebuffer(8, 8)
	c := NewFBCanvas(fb)

	c.DrawRectangle(-4, -4, 6, 6, color.RGBA{G: 0xff, A: 0xff})
	assert.Equal(t, 4, countLit(fb))

	c.DrawRectangle(5, 5, -3, 2, color.RGBA{G: 0xff, A: 0xff})
	c.DrawRectangle(100, 100, 10, 10, color.RGBA{G: 0xff, A: 0xff})
	assert.Equal(t, 4, countLit(fb))
}

func TestCanvasBlendsTranslucentPanel(t *testing.T) {
	fb := newHostFramebuffer(4, 4)
	c := NewFBCanvas(fb)
	c.Clear(color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})

	c.DrawRectangle(0, 0, 4, 4, color.RGBA{A: 100})

	r, g, b := pixelAt(fb, 1, 1)
	// 255 * (255-100)/255 ≈ 155, quantised by RGB565
	assert.InDelta(t, 155, int(r), 8)
	assert.InDelta(t, 155, int(g), 8)
	assert.InDelta(t, 155, int(b), 8)

	before := append([]byte(nil), fb.buf...)
	c.DrawRectangle(0, 0, 4, 4, color.RGBA{R: 0xff})
	assert.Equal(t, before, fb.buf, "fully transparent draws change nothing")
}

func TestCanvasDrawText(t *testing.T) {
	fb := newHostFramebuffer(300, 80)
	c := NewFBCanvas(fb)

	c.DrawText("hp:100", 0, 60, 40, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	lit := countLit(fb)
	require.Positive(t, lit)

	small := newHostFramebuffer(300, 80)
	NewFBCanvas(small).DrawText("hp:100", 0, 60, 1, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	assert.Greater(t, lit, countLit(small), "larger size scales glyphs up")

	empty := newHostFramebuffer(10, 10)
	NewFBCanvas(empty).DrawText("", 0, 5, 20, color.RGBA{R: 0xff, A: 0xff})
	assert.Zero(t, countLit(empty))
}

func TestCanvasViewportHeight(t *testing.T) {
	c := NewFBCanvas(newHostFramebuffer(32, 24))
	assert.Equal(t, float32(24), c.ViewportHeight())
	w, h := c.Size()
	assert.Equal(t, int16(32), w)
	assert.Equal(t, int16(24), h)
	assert.Positive(t, c.TextWidth("abc"))
}

func TestSnapshot(t *testing.T) {
	fb := newHostFramebuffer(4, 2)
	c := NewFBCanvas(fb)
	c.DrawRectangle(1, 1, 1, 1, color.RGBA{B: 0xff, A: 0xff})

	img, err := Snapshot(fb)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{B: 0xff, A: 0xff}, img.RGBAAt(1, 1))
	assert.Equal(t, color.RGBA{A: 0xff}, img.RGBAAt(0, 0))

	_, err = Snapshot(nil)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
