package game

import (
	"time"

	"shootinggallery/internal/clock"
	"shootinggallery/internal/targets"
)

type Phase string

const (
	PhaseIdle    = Phase("idle")
	PhaseRunning = Phase("running")
	PhaseOver    = Phase("over")
)

// OverReason says which budget ran out.
type OverReason string

const (
	OverTime = OverReason("time")
	OverAmmo = OverReason("ammo")
)

type Config struct {
	RoundDuration uint32 // seconds
	Ammo          uint32
	RespawnDelay  time.Duration
}

func DefaultConfig() Config {
	return Config{
		RoundDuration: 60,
		Ammo:          3,
		RespawnDelay:  500 * time.Millisecond,
	}
}

// Result is reported once per round when it ends.
type Result struct {
	Round  uint64
	Score  uint32
	Reason OverReason
}

// Snapshot is a read-only view of the session for presentation.
type Snapshot struct {
	Phase    Phase
	Round    uint64
	Score    uint32
	Ammo     uint32
	TimeLeft uint32
	Width    float64
	Height   float64
	Targets  []targets.Target
}

type Outcome int

const (
	ClickIgnored Outcome = iota
	ClickHit
	ClickMiss
)

type ClickResult struct {
	Outcome Outcome
	Points  uint32
	Target  targets.Target
}

// Session is one player's game. It is not safe for concurrent use: every
// method, and every callback it hands to its scheduler, must run on the same
// goroutine.
type Session struct {
	cfg       Config
	factory   *targets.Factory
	targets   *targets.Store
	clock     clock.Scheduler
	presenter Presenter
	listener  Listener

	phase    Phase
	round    uint64
	score    uint32
	ammo     uint32
	timeLeft uint32
	width    float64
	height   float64
}

func NewSession(cfg Config, factory *targets.Factory, sched clock.Scheduler, p Presenter, l Listener) *Session {
	if p == nil {
		p = nopPresenter{}
	}
	if l == nil {
		l = NopListener{}
	}
	def := DefaultConfig()
	if cfg.RoundDuration == 0 {
		cfg.RoundDuration = def.RoundDuration
	}
	if cfg.Ammo == 0 {
		cfg.Ammo = def.Ammo
	}
	return &Session{
		cfg:       cfg,
		factory:   factory,
		targets:   targets.NewStore(),
		clock:     sched,
		presenter: p,
		listener:  l,
		phase:     PhaseIdle,
		ammo:      cfg.Ammo,
		timeLeft:  cfg.RoundDuration,
	}
}

func (s *Session) Phase() Phase {
	return s.phase
}

func (s *Session) Score() uint32 {
	return s.score
}

func (s *Session) Ammo() uint32 {
	return s.ammo
}

func (s *Session) TimeLeft() uint32 {
	return s.timeLeft
}

func (s *Session) Round() uint64 {
	return s.round
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Phase:    s.phase,
		Round:    s.round,
		Score:    s.score,
		Ammo:     s.ammo,
		TimeLeft: s.timeLeft,
		Width:    s.width,
		Height:   s.height,
		Targets:  s.targets.GetList(),
	}
}

// Start begins a new round from Idle or Over. It reports false, and changes
// nothing, while a round is already running.
func (s *Session) Start() bool {
	if s.phase == PhaseRunning {
		return false
	}
	s.clock.StopAll()

	s.round++
	round := s.round
	s.score = 0
	s.ammo = s.cfg.Ammo
	s.timeLeft = s.cfg.RoundDuration
	s.phase = PhaseRunning
	s.targets.Reset(s.factory.InitialLayout(s.width, s.height))

	s.listener.OnStart(round)
	s.redraw()
	s.clock.Start(
		func() { s.frameTick(round) },
		func() { s.secondTick(round) },
	)
	return true
}

// Click resolves one shot at surface coordinates (x, y).
func (s *Session) Click(x, y float64) ClickResult {
	if s.phase != PhaseRunning || s.ammo == 0 {
		return ClickResult{Outcome: ClickIgnored}
	}

	var res ClickResult
	if t := HitTest(s.targets.All(), x, y); t != nil {
		t.MarkHit()
		s.score += t.Score
		res = ClickResult{Outcome: ClickHit, Points: t.Score, Target: *t}
		s.listener.OnHit(*t)

		round := s.round
		s.clock.AfterFunc(s.cfg.RespawnDelay, func() { s.respawn(round) })
	} else {
		s.ammo--
		res = ClickResult{Outcome: ClickMiss}
		s.listener.OnMiss(s.ammo)
		if s.ammo == 0 {
			s.end(OverAmmo)
		}
	}

	s.redraw()
	return res
}

// Resize records new surface dimensions. While idle the initial layout is
// rebuilt for the new size; otherwise targets keep their coordinates.
func (s *Session) Resize(width, height float64) {
	s.width = max(width, 0)
	s.height = max(height, 0)
	if s.phase == PhaseIdle {
		s.targets.Reset(s.factory.InitialLayout(s.width, s.height))
	}
	s.redraw()
}

func (s *Session) frameTick(round uint64) {
	if !s.current(round) {
		return
	}
	s.targets.Update(s.width)
	s.redraw()
}

func (s *Session) secondTick(round uint64) {
	if !s.current(round) || s.timeLeft == 0 {
		return
	}
	s.timeLeft--
	if s.timeLeft == 0 {
		s.end(OverTime)
		s.redraw()
	}
}

func (s *Session) respawn(round uint64) {
	if !s.current(round) {
		return
	}
	s.targets.Add(s.factory.Spawn(s.width, s.height))
}

// current reports whether a callback scheduled for round may still act.
func (s *Session) current(round uint64) bool {
	return round == s.round && s.phase == PhaseRunning
}

func (s *Session) end(reason OverReason) {
	s.clock.StopAll()
	s.phase = PhaseOver
	s.listener.OnGameOver(Result{Round: s.round, Score: s.score, Reason: reason})
}

func (s *Session) redraw() {
	s.presenter.Redraw(s.Snapshot())
}
