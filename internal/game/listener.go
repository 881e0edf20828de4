package game

import "shootinggallery/internal/targets"

//go:generate go tool mockgen -destination=./mocks/game_mock.go -package=mocks . Presenter,Listener

// Presenter receives a fresh snapshot whenever the session wants the surface
// redrawn.
type Presenter interface {
	Redraw(Snapshot)
}

// Listener is told about gameplay events. Calls are fire-and-forget and must
// not call back into the session.
type Listener interface {
	OnStart(round uint64)
	OnHit(t targets.Target)
	OnMiss(ammoLeft uint32)
	OnGameOver(r Result)
}

// NopListener ignores every event. Embed it to implement only part of Listener.
type NopListener struct{}

func (NopListener) OnStart(uint64)       {}
func (NopListener) OnHit(targets.Target) {}
func (NopListener) OnMiss(uint32)        {}
func (NopListener) OnGameOver(Result)    {}

type nopPresenter struct{}

func (nopPresenter) Redraw(Snapshot) {}

// Listeners fans every event out to each listener in order.
type Listeners []Listener

func (ls Listeners) OnStart(round uint64) {
	for _, l := range ls {
		l.OnStart(round)
	}
}

func (ls Listeners) OnHit(t targets.Target) {
	for _, l := range ls {
		l.OnHit(t)
	}
}

func (ls Listeners) OnMiss(ammoLeft uint32) {
	for _, l := range ls {
		l.OnMiss(ammoLeft)
	}
}

func (ls Listeners) OnGameOver(r Result) {
	for _, l := range ls {
		l.OnGameOver(r)
	}
}
