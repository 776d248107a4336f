package hal

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunHeadlessTicks(t *testing.T) {
	steps := 0
	var got HAL
	err := RunHeadless(context.Background(), HostConfig{Width: 32, Height: 16}, zerolog.Nop(), func(h HAL) func() error {
		got = h
		return func() error {
			steps++
			return nil
		}
	}, HeadlessConfig{Hz: 1000, Ticks: 5, StepBudget: 2})

	require.NoError(t, err)
	assert.Equal(t, 10, steps)
	require.NotNil(t, got)
	fb := got.Display().Framebuffer()
	assert.Equal(t, 32, fb.Width())
	assert.Equal(t, 16, fb.Height())
	assert.Equal(t, 64, fb.StrideBytes())
}

func TestRunHeadlessQuit(t *testing.T) {
	steps := 0
	err := RunHeadless(context.Background(), HostConfig{}, zerolog.Nop(), func(HAL) func() error {
		return func() error {
			steps++
			if steps == 3 {
				return ErrQuit
			}
			return nil
		}
	}, HeadlessConfig{Hz: 1000})

	require.NoError(t, err)
	assert.Equal(t, 3, steps)
}

func TestRunHeadlessStepError(t *testing.T) {
	boom := errors.New("boom")
	err := RunHeadless(context.Background(), HostConfig{}, zerolog.Nop(), func(HAL) func() error {
		return func() error { return boom }
	}, HeadlessConfig{Hz: 1000})
	assert.ErrorIs(t, err, boom)
}

func TestRunHeadlessCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunHeadless(ctx, HostConfig{}, zerolog.Nop(), func(HAL) func() error { return nil }, HeadlessConfig{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHostDefaults(t *testing.T) {
	h := New(HostConfig{}, zerolog.Nop())
	fb := h.Display().Framebuffer()
	assert.Equal(t, 640, fb.Width())
	assert.Equal(t, 480, fb.Height())
	assert.Equal(t, PixelFormatRGB565, fb.Format())
	assert.NotNil(t, h.Input().Keyboard().Events())
}
