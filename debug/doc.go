// Package debug is the in-process instrumentation store for render-loop applications.
//
// Call sites record two kinds of data:
//
//   - immediate entries, valid for one frame and cleared by the driver after drawing;
//   - persistent entries, stamped with the frame number and kept in a bounded history.
//
// The store is owned by an Instrument handle. A process-wide default Instrument is
// created on first use for call sites that cannot be handed one.
//
// Frame order (driver contract, not enforced by the store):
//
//	Enabled? → Record… → draw world → draw overlay → ClearImmediate → Advance
//
// EndFrame performs the last two steps in the required order. Advancing the clock
// before recording shifts persistent frame stamps by one.
package debug
