//go:build !cgo

package hal

import (
	"errors"

	"github.com/rs/zerolog"
)

func RunWindow(_ HostConfig, _ zerolog.Logger, _ func(HAL) func() error) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
