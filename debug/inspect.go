package debug

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/sanity-io/litter"
)

var inspectCfg = litter.Options{
	Compact:           true,
	StripPackageNames: true,
}

// Inspect records "label = value" as an immediate message and returns v unchanged,
// so it can wrap an expression without changing what the call site computes.
func Inspect[T any](in *Instrument, label string, v T) T {
	if in == nil || !in.Gate.Enabled() {
		return v
	}
	in.Immediate.Record(Message{Text: label + " = " + String(v)})
	return v
}

// Dbg is Inspect against the default Instrument.
func Dbg[T any](label string, v T) T {
	return Inspect(Default(), label, v)
}

// Toggle flips the default Instrument's gate.
func Toggle() { Default().Toggle() }

// Enabled reports whether the default Instrument's gate is on.
func Enabled() bool { return Default().Enabled() }

// Frame returns the default Instrument's frame number.
func Frame() uint64 { return Default().Frame() }

// Imm records an immediate entry on the default Instrument.
func Imm(e Entry) { Default().Imm(e) }

// ImmMsg records an immediate message on the default Instrument.
func ImmMsg(format string, args ...any) { Default().Msgf(format, args...) }

// ImmRect records an immediate rectangle on the default Instrument.
func ImmRect(x, y, w, h float32, c color.RGBA) { Default().Rect(x, y, w, h, c) }

// Per records a persistent entry on the default Instrument.
func Per(e Entry) { Default().Per(e) }

// PerMsg records a formatted persistent message on the default Instrument.
func PerMsg(format string, args ...any) { Default().Persistf(format, args...) }

// EndFrame clears and advances the default Instrument.
func EndFrame() { Default().EndFrame() }

// String renders v the way Inspect does, without recording it.
func String(v any) string {
	// fmt guards Stringers: nil receivers print <nil> and panics are caught.
	if _, ok := v.(fmt.Stringer); ok {
		return fmt.Sprint(v)
	}
	return strings.TrimSpace(inspectCfg.Sdump(v))
}
