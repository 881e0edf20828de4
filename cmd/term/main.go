package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"shootinggallery/internal/assets"
	"shootinggallery/internal/audio"
	"shootinggallery/internal/config"
	"shootinggallery/internal/game"
	"shootinggallery/internal/targets"
	"shootinggallery/internal/terminal"
	"syscall"

	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to run: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	appCfg := config.Load()

	// The terminal shows no images, but the pool still names each target.
	catalog := assets.Load(appCfg.AssetsDir)
	factory := targets.NewFactory(appCfg.Mode(), catalog.Visuals(), nil)

	var listener game.Listener = game.NopListener{}
	if appCfg.Sound {
		player := audio.NewPlayer(0.8)
		if err := player.Init(); err != nil {
			log.Printf("[Audio] %v", err)
		}
		defer player.Close()
		listener = player
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	host := terminal.New(screen, appCfg.Game(), factory, listener)
	return host.Run(ctx, appCfg.FrameRate)
}
