package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/dverbeek/panmodal/internal/config"
	"github.com/dverbeek/panmodal/internal/demo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	app := demo.NewApp(cfg)

	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("panmodal demo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.UI.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
