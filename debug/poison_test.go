package debug

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recovered runs fn and returns the value it panicked with, or nil.
func recovered(fn func()) (v any) {
	defer func() {
		v = recover()
	}()
	fn()
	return nil
}

func TestBorrowPanicPoisonsStore(t *testing.T) {
	in := New()
	in.Toggle()
	in.Msgf("a")

	var calls []PoisonInfo
	in.SetPoisonHandler(func(info PoisonInfo) {
		calls = append(calls, info)
	})

	v := recovered(func() {
		in.Immediate.Borrow(func([]Entry) {
			panic("producer bug")
		})
	})
	assert.Equal(t, "producer bug", v)
	assert.True(t, in.Poisoned())

	require.Len(t, calls, 1)
	assert.Equal(t, "immediate", calls[0].Store)
	assert.Equal(t, "producer bug", calls[0].Value)
	assert.NotEmpty(t, calls[0].Stack)

	for _, op := range []func(){
		func() { in.Msgf("b") },
		func() { in.Immediate.Clear() },
		func() { in.Immediate.Snapshot() },
		func() { in.Immediate.Len() },
	} {
		v := recovered(op)
		err, ok := v.(error)
		require.True(t, ok, "want error panic, got %v", v)
		assert.True(t, errors.Is(err, ErrPoisoned))
	}

	// the handler fires once per instrument
	assert.Len(t, calls, 1)
}

func TestPoisonIsPerStore(t *testing.T) {
	in := New()
	in.Toggle()

	recovered(func() {
		in.Immediate.Borrow(func([]Entry) { panic("boom") })
	})

	in.Persistf("still works")
	assert.Equal(t, 1, in.Persistent.Len())
	in.Clock.Advance()
	in.Gate.Toggle()
	assert.Equal(t, uint64(1), in.Frame())
}

type panicWriter struct{}

func (panicWriter) Write([]byte) (int, error) { panic("echo sink broken") }

func TestEchoPanicLeavesPersistentUsable(t *testing.T) {
	in := New()
	poisoned := 0
	in.SetPoisonHandler(func(PoisonInfo) { poisoned++ })
	in.Persistent.SetEcho(panicWriter{})

	v := recovered(func() { in.Persistf("x") })
	assert.Equal(t, "echo sink broken", v)

	// the record landed before the echo ran, outside the critical section
	assert.Nil(t, recovered(func() {
		assert.Equal(t, []string{"x"}, messages(in.Persistent.Recent(1)))
	}))
	assert.False(t, in.Poisoned())
	assert.Zero(t, poisoned)
}

func TestGateOffSkipsPoisonedImmediate(t *testing.T) {
	in := New()
	in.Toggle()
	recovered(func() {
		in.Immediate.Borrow(func([]Entry) { panic("boom") })
	})
	in.Toggle()

	// gated records never reach the critical section
	assert.Nil(t, recovered(func() { in.Msgf("ignored") }))
}
