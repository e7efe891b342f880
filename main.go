package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/triangles/internal/config"
	"github.com/iburimskiy/triangles/internal/game"
)

func main() {
	log.SetFlags(log.LstdFlags)
	log.SetPrefix(config.LogPrefix)

	ebiten.SetWindowSize(config.Width, config.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := run(game.New()); err != nil {
		log.Print(err)
		if derr := zenity.Error(err.Error(), zenity.Title(config.WindowTitle), zenity.ErrorIcon); derr != nil {
			log.Printf("error dialog: %v", derr)
		}
		os.Exit(1)
	}
}

func run(g ebiten.Game) error {
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
