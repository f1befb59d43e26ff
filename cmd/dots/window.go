//go:build ebiten

package main

import (
	"errors"
	"log"

	"dots/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func runWindow(cfg *app.Config) error {
	game, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer game.Close()

	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle("dots — " + cfg.Sim)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	log.Printf("running %s: %dx%d, %d dots, %s", cfg.Sim, cfg.Width, cfg.Height, cfg.Dots, cfg.Strategy)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
