package debug

import (
	"fmt"
	"image/color"
	"sync"
)

// Instrument owns one gate, one clock and both stores.
type Instrument struct {
	Gate       *Gate
	Clock      *Clock
	Immediate  *Immediate
	Persistent *Persistent

	poison poisonNotifier
}

// New returns an Instrument with the gate off and the clock at frame 0.
func New() *Instrument {
	gate := &Gate{}
	clock := &Clock{}
	in := &Instrument{
		Gate:       gate,
		Clock:      clock,
		Immediate:  newImmediate(gate),
		Persistent: newPersistent(clock),
	}
	in.Immediate.g.onPoison = in.poison.notify
	in.Persistent.g.onPoison = in.poison.notify
	return in
}

// SetPoisonHandler installs fn to be called once, on the first store poisoning.
// fn runs before the panic resumes unwinding and must not panic.
func (in *Instrument) SetPoisonHandler(fn func(PoisonInfo)) {
	in.poison.set(fn)
}

// Poisoned reports whether either store has been poisoned.
func (in *Instrument) Poisoned() bool {
	return in.Immediate.g.isPoisoned() || in.Persistent.g.isPoisoned()
}

// Toggle flips the gate.
func (in *Instrument) Toggle() { in.Gate.Toggle() }

// Enabled reports whether the gate is on.
func (in *Instrument) Enabled() bool { return in.Gate.Enabled() }

// Frame returns the current frame number.
func (in *Instrument) Frame() uint64 { return in.Clock.Current() }

// Imm records an immediate entry (gated).
func (in *Instrument) Imm(e Entry) { in.Immediate.Record(e) }

// Per records a persistent entry (not gated).
func (in *Instrument) Per(e Entry) { in.Persistent.Record(e) }

// Msgf records a formatted immediate message. Formatting is skipped when the gate is off.
func (in *Instrument) Msgf(format string, args ...any) {
	if !in.Gate.Enabled() {
		return
	}
	in.Immediate.Record(Message{Text: fmt.Sprintf(format, args...)})
}

// Rect records an immediate world-space rectangle.
func (in *Instrument) Rect(x, y, w, h float32, c color.RGBA) {
	in.Immediate.Record(Shape{X: x, Y: y, W: w, H: h, Color: c})
}

// Persistf records a formatted persistent message regardless of the gate.
func (in *Instrument) Persistf(format string, args ...any) {
	in.Persistent.Record(Message{Text: fmt.Sprintf(format, args...)})
}

// EndFrame clears the immediate store and advances the clock, in that order.
// The driver calls it once per iteration after both renderers have drawn.
func (in *Instrument) EndFrame() {
	in.Immediate.Clear()
	in.Clock.Advance()
}

var (
	defaultOnce sync.Once
	defaultInst *Instrument
)

// Default returns the process-wide Instrument, creating it on first use.
func Default() *Instrument {
	defaultOnce.Do(func() {
		defaultInst = New()
	})
	return defaultInst
}
