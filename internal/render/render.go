package render

import (
	"fmt"

	"shootinggallery/internal/game"
)

// Surface is anything a frame can be painted on: a browser canvas behind a
// websocket, an ebiten screen, a terminal.
type Surface interface {
	Clear()
	// DrawCircleImage paints visual scaled to a 2r square centred on (x, y).
	// Hosts without the visual paint a plain disc instead.
	DrawCircleImage(visual string, x, y, r float64)
	DrawText(label string, x, y float64)
}

// HUD anchor points as fractions of the surface size.
const (
	hudLeft    = 0.02
	hudRight   = 0.70
	hudLine1   = 0.05
	hudLine2   = 0.10
	promptLeft = 0.30
	promptTop  = 0.45
	promptSub  = 0.55
)

// Draw paints one frame: live targets in draw order, then the HUD.
func Draw(s Surface, snap game.Snapshot) {
	s.Clear()
	for _, t := range snap.Targets {
		if t.Hit {
			continue
		}
		s.DrawCircleImage(t.Visual, t.X, t.Y, t.Radius)
	}
	s.DrawText(fmt.Sprintf("Score: %d", snap.Score), snap.Width*hudLeft, snap.Height*hudLine1)
	s.DrawText(fmt.Sprintf("Ammo: %d", snap.Ammo), snap.Width*hudLeft, snap.Height*hudLine2)
	s.DrawText(fmt.Sprintf("Time: %ds", snap.TimeLeft), snap.Width*hudRight, snap.Height*hudLine1)
}

// Overlay adds the start and game-over prompts for hosts that have no page
// around the surface to show them. It draws nothing while a round runs.
func Overlay(s Surface, snap game.Snapshot, startHint string) {
	x := snap.Width * promptLeft
	switch snap.Phase {
	case game.PhaseIdle:
		s.DrawText("Shooting Gallery", x, snap.Height*promptTop)
		s.DrawText(startHint, x, snap.Height*promptSub)
	case game.PhaseOver:
		s.DrawText(fmt.Sprintf("Game Over! Final score: %d", snap.Score), x, snap.Height*promptTop)
		s.DrawText(startHint, x, snap.Height*promptSub)
	}
}
