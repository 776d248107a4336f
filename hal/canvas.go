package hal

import (
	"image/color"
	"math"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// FBCanvas draws rectangles and text into an RGB565 framebuffer.
// Colors with alpha below 0xff are blended over the existing pixels.
//
// It implements drivers.Displayer so tinyfont can rasterise into it.
type FBCanvas struct {
	fb   Framebuffer
	font tinyfont.Fonter
}

var _ drivers.Displayer = (*FBCanvas)(nil)

// NewFBCanvas returns a canvas drawing into fb with the default font.
func NewFBCanvas(fb Framebuffer) *FBCanvas {
	return &FBCanvas{fb: fb, font: &proggy.TinySZ8pt7b}
}

func (c *FBCanvas) Size() (x, y int16) {
	if c.fb == nil {
		return 0, 0
	}
	return int16(c.fb.Width()), int16(c.fb.Height())
}

func (c *FBCanvas) SetPixel(x, y int16, col color.RGBA) {
	c.blend(int(x), int(y), col)
}

func (c *FBCanvas) Display() error {
	if c.fb == nil {
		return nil
	}
	return c.fb.Present()
}

// Clear fills the whole framebuffer with an opaque color.
func (c *FBCanvas) Clear(col color.RGBA) {
	if c.fb == nil {
		return
	}
	c.fb.ClearRGB(col.R, col.G, col.B)
}

// ViewportHeight returns the framebuffer height in pixels.
func (c *FBCanvas) ViewportHeight() float32 {
	if c.fb == nil {
		return 0
	}
	return float32(c.fb.Height())
}

// DrawRectangle fills the rectangle, clipped to the framebuffer. Rectangles with
// non-positive width or height cover no pixels.
func (c *FBCanvas) DrawRectangle(x, y, w, h float32, col color.RGBA) {
	if c.fb == nil || c.fb.Format() != PixelFormatRGB565 {
		return
	}
	fw, fh := c.fb.Width(), c.fb.Height()
	x0 := clampInt(round(x), 0, fw)
	y0 := clampInt(round(y), 0, fh)
	x1 := clampInt(round(x+w), 0, fw)
	y1 := clampInt(round(y+h), 0, fh)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.blend(px, py, col)
		}
	}
}

// DrawText writes a single line with its baseline at y. The bitmap font is
// scaled by the nearest integer factor that matches size.
func (c *FBCanvas) DrawText(text string, x, y, size float32, col color.RGBA) {
	if c.fb == nil || text == "" {
		return
	}
	scale := int16(1)
	if adv := c.font.GetYAdvance(); adv > 0 {
		if s := int16(math.Round(float64(size) / float64(adv))); s > 1 {
			scale = s
		}
	}
	ox, oy := int16(round(x)), int16(round(y))
	d := &scaledDisplay{c: c, ox: ox, oy: oy, scale: scale}
	tinyfont.WriteLine(d, c.font, ox, oy, text, col)
}

// TextWidth returns the unscaled pixel width of s in the canvas font.
func (c *FBCanvas) TextWidth(s string) int {
	_, outbox := tinyfont.LineWidth(c.font, s)
	return int(outbox)
}

func (c *FBCanvas) blend(x, y int, col color.RGBA) {
	if c.fb == nil || c.fb.Format() != PixelFormatRGB565 || col.A == 0 {
		return
	}
	buf := c.fb.Buffer()
	if buf == nil {
		return
	}
	if x < 0 || x >= c.fb.Width() || y < 0 || y >= c.fb.Height() {
		return
	}
	off := y*c.fb.StrideBytes() + x*2
	if off < 0 || off+1 >= len(buf) {
		return
	}

	r, g, b := col.R, col.G, col.B
	if col.A != 0xff {
		dr, dg, db := rgb888From565(uint16(buf[off]) | uint16(buf[off+1])<<8)
		r = mix(col.R, dr, col.A)
		g = mix(col.G, dg, col.A)
		b = mix(col.B, db, col.A)
	}
	pixel := rgb565(r, g, b)
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

// scaledDisplay magnifies glyph pixels around the text origin.
type scaledDisplay struct {
	c      *FBCanvas
	ox, oy int16
	scale  int16
}

func (d *scaledDisplay) Size() (x, y int16) { return d.c.Size() }
func (d *scaledDisplay) Display() error     { return nil }

func (d *scaledDisplay) SetPixel(x, y int16, col color.RGBA) {
	bx := int(d.ox) + int(x-d.ox)*int(d.scale)
	by := int(d.oy) + int(y-d.oy)*int(d.scale)
	for j := 0; j < int(d.scale); j++ {
		for i := 0; i < int(d.scale); i++ {
			d.c.blend(bx+i, by+j, col)
		}
	}
}

func round(v float32) int {
	return int(math.Round(float64(v)))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
