package hal

import (
	"image"
	"image/color"
	"sync"
)

type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }
func (f *hostFramebuffer) Present() error      { return nil }

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *hostFramebuffer) snapshotRGB565(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}

// snapshotRGBA converts the framebuffer into 8-bit RGBA pixels.
func (f *hostFramebuffer) snapshotRGBA(scratch, dst []byte) {
	f.snapshotRGB565(scratch)
	for i := 0; i+1 < len(scratch) && i/2*4+3 < len(dst); i += 2 {
		r, g, b := rgb888From565(uint16(scratch[i]) | uint16(scratch[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = g
		dst[j+2] = b
		dst[j+3] = 0xFF
	}
}

// Snapshot copies an RGB565 framebuffer into a new RGBA image.
func Snapshot(fb Framebuffer) (*image.RGBA, error) {
	if fb == nil || fb.Format() != PixelFormatRGB565 {
		return nil, ErrUnsupportedFormat
	}
	img := image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
	if hf, ok := fb.(*hostFramebuffer); ok {
		hf.snapshotRGBA(make([]byte, len(hf.buf)), img.Pix)
		return img, nil
	}
	buf := fb.Buffer()
	stride := fb.StrideBytes()
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			off := y*stride + x*2
			if off+1 >= len(buf) {
				return img, nil
			}
			r, g, b := rgb888From565(uint16(buf[off]) | uint16(buf[off+1])<<8)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xff})
		}
	}
	return img, nil
}
