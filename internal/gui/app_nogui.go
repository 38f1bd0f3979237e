//go:build nogui

package gui

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/san-kum/hanoi/internal/config"
)

// ErrUnavailable is returned by binaries built with -tags nogui.
var ErrUnavailable = errors.New("gui: built without window support (nogui)")

func Run(cfg *config.Config, log zerolog.Logger) error {
	return ErrUnavailable
}
