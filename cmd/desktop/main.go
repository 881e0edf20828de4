package main

import (
	"log"
	"shootinggallery/internal/assets"
	"shootinggallery/internal/audio"
	"shootinggallery/internal/config"
	"shootinggallery/internal/desktop"
	"shootinggallery/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	appCfg := config.Load()
	catalog := assets.Load(appCfg.AssetsDir)

	var listener game.Listener = game.NopListener{}
	if appCfg.Sound {
		player := audio.NewPlayer(0.8)
		if err := player.Init(); err != nil {
			// Non-fatal, the game runs without sound
			log.Printf("[Audio] %v", err)
		}
		defer player.Close()
		listener = player
	}

	g := desktop.New(appCfg.Game(), appCfg.Mode(), catalog, listener, appCfg.SurfaceWidth, appCfg.SurfaceHeight)

	ebiten.SetWindowSize(appCfg.SurfaceWidth, appCfg.SurfaceHeight)
	ebiten.SetWindowTitle("Shooting Gallery")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
