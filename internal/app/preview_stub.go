//go:build !ebiten

package app

import (
	"errors"

	"cellgrid/internal/pattern"
)

// RunPreview is unavailable without the ebiten build tag.
func RunPreview(cfg *Config, fillA, fillB pattern.Func) error {
	return errors.New("preview backend requires the ebiten build tag; rebuild with `-tags ebiten`")
}
