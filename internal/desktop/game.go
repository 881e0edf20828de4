package desktop

import (
	"image/color"
	"log"
	"shootinggallery/internal/assets"
	"shootinggallery/internal/clock"
	"shootinggallery/internal/game"
	"shootinggallery/internal/render"
	"shootinggallery/internal/targets"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// maxStep caps how much simulated time one Update may cover, so a stalled
// window does not fast-forward the round.
const maxStep = 100 * time.Millisecond

const startHint = "Press Enter or Space to start"

// Game runs one Session inside an ebiten window. ebiten calls Update once per
// tick on its own goroutine; that call is the frame cadence, and every
// session method runs from it.
type Game struct {
	session *game.Session
	clock   *clock.Manual
	images  map[string]*ebiten.Image

	snap   game.Snapshot
	width  int
	height int
	outW   int
	outH   int
	last   time.Time
	now    func() time.Time
}

// New builds the game. Images from catalog that fail to decode are logged and
// drawn as plain discs.
func New(cfg game.Config, mode targets.Mode, catalog *assets.Catalog, listener game.Listener, width, height int) *Game {
	g := &Game{
		clock:  clock.NewManual(),
		images: loadImages(catalog),
		width:  width,
		height: height,
		outW:   width,
		outH:   height,
		now:    time.Now,
	}
	factory := targets.NewFactory(mode, catalog.Visuals(), nil)
	g.session = game.NewSession(cfg, factory, g.clock, g, listener)
	g.session.Resize(float64(width), float64(height))
	g.last = g.now()
	return g
}

func loadImages(catalog *assets.Catalog) map[string]*ebiten.Image {
	images := make(map[string]*ebiten.Image)
	for _, ids := range catalog.Visuals() {
		for _, id := range ids {
			img, err := catalog.Decode(id)
			if err != nil {
				log.Printf("[Desktop] %v", err)
				continue
			}
			images[id] = ebiten.NewImageFromImage(img)
		}
	}
	return images
}

// Redraw keeps the latest snapshot for the next Draw call.
func (g *Game) Redraw(snap game.Snapshot) {
	g.snap = snap
}

func (g *Game) Update() error {
	if g.outW != g.width || g.outH != g.height {
		g.width, g.height = g.outW, g.outH
		g.session.Resize(float64(g.width), float64(g.height))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.Start()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.session.Click(float64(x), float64(y))
	}

	now := g.now()
	dt := min(now.Sub(g.last), maxStep)
	g.last = now
	g.clock.Step(dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	s := &surface{dst: screen, images: g.images}
	render.Draw(s, g.snap)
	render.Overlay(s, g.snap, startHint)
}

// Layout follows the window size. The session sees the new size on the next
// Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outW, g.outH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

var (
	background = color.RGBA{0x1d, 0x2b, 0x1f, 0xff}
	discColor  = color.RGBA{0xc0, 0x39, 0x2b, 0xff}
)
