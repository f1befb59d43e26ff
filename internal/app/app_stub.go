//go:build !ebiten

package app

import "errors"

// ErrNoWindow reports a build without the ebiten tag.
var ErrNoWindow = errors.New("the window requires building with the 'ebiten' tag")

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New always fails in the headless build.
func New(*Config) (*Game, error) {
	return nil, ErrNoWindow
}

// Reset is a no-op placeholder.
func (g *Game) Reset(int) {}

// Close is a no-op placeholder.
func (g *Game) Close() error { return nil }

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error { return ErrNoWindow }

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
