package terminal

import (
	"context"
	"shootinggallery/internal/clock"
	"shootinggallery/internal/game"
	"shootinggallery/internal/render"
	"shootinggallery/internal/targets"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

const startHint = "Press s or Enter to start, q to quit"

// Host plays one session in a terminal. Input is polled on its own goroutine
// and posted to the loop, so only the loop touches the session and the
// screen.
type Host struct {
	screen   tcell.Screen
	loop     *game.Loop
	cfg      game.Config
	factory  *targets.Factory
	listener game.Listener

	session *game.Session
	pressed bool
	quit    func()
}

func New(screen tcell.Screen, cfg game.Config, factory *targets.Factory, listener game.Listener) *Host {
	return &Host{
		screen:   screen,
		loop:     game.NewLoop(128),
		cfg:      cfg,
		factory:  factory,
		listener: listener,
		quit:     func() {},
	}
}

// attach creates the session on sched and sizes it to the screen.
func (h *Host) attach(sched clock.Scheduler) {
	h.session = game.NewSession(h.cfg, h.factory, sched, h, h.listener)
	w, ht := h.screen.Size()
	h.session.Resize(float64(w*CellWidth), float64(ht*CellHeight))
}

// Run plays until the user quits or ctx is done. The screen must already be
// initialised; the caller finalises it afterwards.
func (h *Host) Run(ctx context.Context, frameRate int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	h.quit = cancel

	h.screen.EnableMouse()
	h.attach(clock.NewTicker(ctx, h.loop.Post, frameRate))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return h.loop.Run(ctx)
	})
	g.Go(func() error {
		for {
			ev := h.screen.PollEvent()
			if ev == nil || ctx.Err() != nil {
				return nil
			}
			if !h.loop.Post(ctx, func() { h.handle(ev) }) {
				return nil
			}
		}
	})
	g.Go(func() error {
		// Wake the poller so it sees the cancellation.
		<-ctx.Done()
		h.screen.PostEvent(tcell.NewEventInterrupt(nil))
		return nil
	})
	return g.Wait()
}

// handle applies one terminal event. It runs on the loop goroutine.
func (h *Host) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			h.quit()
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			h.quit()
		case ev.Key() == tcell.KeyEnter:
			h.session.Start()
		case ev.Key() == tcell.KeyRune && ev.Rune() == 's':
			h.session.Start()
		}

	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !h.pressed {
			col, row := ev.Position()
			h.session.Click((float64(col)+0.5)*CellWidth, (float64(row)+0.5)*CellHeight)
		}
		h.pressed = down

	case *tcell.EventResize:
		w, ht := ev.Size()
		h.screen.Sync()
		h.session.Resize(float64(w*CellWidth), float64(ht*CellHeight))
	}
}

func (h *Host) Redraw(snap game.Snapshot) {
	s := cellSurface{screen: h.screen}
	render.Draw(s, snap)
	render.Overlay(s, snap, startHint)
	h.screen.Show()
}
