package app

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"gamedebug/debug"
	"gamedebug/hal"
)

const panicLineHeight = 12

// installPoisonHandler reports a poisoned debug store on the logger and paints
// a fatal screen into the framebuffer before the panic continues.
func installPoisonHandler(h hal.HAL, in *debug.Instrument) {
	in.SetPoisonHandler(func(info debug.PoisonInfo) {
		lines := poisonLines(info)
		if l := h.Logger(); l != nil {
			for _, line := range lines {
				l.WriteLineString(line)
			}
		}

		disp := h.Display()
		if disp == nil {
			return
		}
		fb := disp.Framebuffer()
		if fb == nil {
			return
		}

		c := hal.NewFBCanvas(fb)
		c.Clear(color.RGBA{R: 0x60, A: 0xff})
		fg := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

		cols := fb.Width() / max(1, c.TextWidth("0"))
		if cols <= 0 {
			cols = 1
		}
		y := panicLineHeight
		for _, line := range lines {
			for len(line) > 0 {
				if y > fb.Height() {
					_ = c.Display()
					return
				}
				chunk, rest := takeRunes(line, cols)
				c.DrawText(chunk, 0, float32(y), panicLineHeight, fg)
				y += panicLineHeight
				line = strings.TrimLeft(rest, " ")
			}
		}
		_ = c.Display()
	})
}

func poisonLines(info debug.PoisonInfo) []string {
	lines := []string{
		"debug store poisoned:",
		fmt.Sprintf("store: %s", info.Store),
		fmt.Sprintf("panic: %v", info.Value),
	}
	if len(info.Stack) == 0 {
		return append(lines, "stack: unavailable")
	}
	lines = append(lines, "stack:")
	for _, line := range strings.Split(string(info.Stack), "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
	}
	return lines
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
