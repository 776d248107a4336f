package debug

import "sync/atomic"

// Gate is the master on/off switch for immediate recording and drawing.
// The zero value is off.
type Gate struct {
	on atomic.Bool
}

// Toggle flips the gate.
func (g *Gate) Toggle() {
	for {
		old := g.on.Load()
		if g.on.CompareAndSwap(old, !old) {
			return
		}
	}
}

// Set forces the gate on or off.
func (g *Gate) Set(on bool) { g.on.Store(on) }

// Enabled reports whether the gate is on.
func (g *Gate) Enabled() bool { return g.on.Load() }

// Clock counts frames. It starts at 0 and only moves forward.
type Clock struct {
	frame atomic.Uint64
}

// Advance moves the clock to the next frame.
//
// Call once per loop iteration, after drawing and after the immediate clear.
func (c *Clock) Advance() { c.frame.Add(1) }

// Current returns the current frame number.
func (c *Clock) Current() uint64 { return c.frame.Load() }
