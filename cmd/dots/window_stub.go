//go:build !ebiten

package main

import (
	"fmt"

	"dots/internal/app"
)

func runWindow(*app.Config) error {
	return fmt.Errorf("%w; re-run with `go run -tags ebiten ./cmd/dots` or use the headless command", app.ErrNoWindow)
}
