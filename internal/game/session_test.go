package game_test

import (
	"math/rand"
	"testing"
	"time"

	"shootinggallery/internal/clock"
	"shootinggallery/internal/game"
	"shootinggallery/internal/game/mocks"
	"shootinggallery/internal/targets"

	"go.uber.org/mock/gomock"
)

type recorder struct {
	game.NopListener
	starts []uint64
	hits   []targets.Target
	misses []uint32
	overs  []game.Result
}

func (r *recorder) OnStart(round uint64)     { r.starts = append(r.starts, round) }
func (r *recorder) OnHit(t targets.Target)   { r.hits = append(r.hits, t) }
func (r *recorder) OnMiss(ammoLeft uint32)   { r.misses = append(r.misses, ammoLeft) }
func (r *recorder) OnGameOver(g game.Result) { r.overs = append(r.overs, g) }

func newTestSession(t *testing.T, p game.Presenter, l game.Listener) (*game.Session, *clock.Manual) {
	t.Helper()
	clk := clock.NewManual()
	f := targets.NewFactory(targets.Responsive, nil, rand.New(rand.NewSource(7)))
	s := game.NewSession(game.DefaultConfig(), f, clk, p, l)
	s.Resize(800, 600)
	return s, clk
}

// missX/missY is a point no initial target can reach on an 800x600 surface.
const missX, missY = 400, 10

func TestNewSession_StartsIdle(t *testing.T) {
	s, _ := newTestSession(t, nil, nil)
	if s.Phase() != game.PhaseIdle {
		t.Errorf("initial phase = %q, want %q", s.Phase(), game.PhaseIdle)
	}
	if got := len(s.Snapshot().Targets); got != 6 {
		t.Errorf("idle layout = %d targets, want 6", got)
	}
}

func TestSession_Start800x600(t *testing.T) {
	rec := &recorder{}
	s, clk := newTestSession(t, nil, rec)

	if !s.Start() {
		t.Fatal("Start() = false from idle")
	}

	snap := s.Snapshot()
	if snap.Phase != game.PhaseRunning {
		t.Errorf("phase = %q, want %q", snap.Phase, game.PhaseRunning)
	}
	if snap.Score != 0 || snap.Ammo != 3 || snap.TimeLeft != 60 {
		t.Errorf("score/ammo/time = %d/%d/%d, want 0/3/60", snap.Score, snap.Ammo, snap.TimeLeft)
	}
	if len(snap.Targets) != 6 {
		t.Fatalf("targets = %d, want 6", len(snap.Targets))
	}

	perTier := map[targets.Tier]int{}
	for _, tg := range snap.Targets {
		perTier[tg.Tier]++
		want := map[targets.Tier]uint32{targets.Small: 300, targets.Medium: 200, targets.Large: 100}[tg.Tier]
		if tg.Score != want {
			t.Errorf("%v score = %d, want %d", tg.Tier, tg.Score, want)
		}
	}
	for _, tier := range targets.Tiers {
		if perTier[tier] != 2 {
			t.Errorf("%v targets = %d, want 2", tier, perTier[tier])
		}
	}
	if !clk.Running() {
		t.Error("cadences should run while Running")
	}
	if len(rec.starts) != 1 || rec.starts[0] != 1 {
		t.Errorf("OnStart calls = %v, want [1]", rec.starts)
	}
}

func TestSession_StartWhileRunningIsRejected(t *testing.T) {
	s, _ := newTestSession(t, nil, nil)
	s.Start()
	s.Click(missX, missY)

	if s.Start() {
		t.Error("Start() = true while running")
	}
	if s.Ammo() != 2 || s.Round() != 1 {
		t.Errorf("ammo/round = %d/%d, want 2/1 (unchanged)", s.Ammo(), s.Round())
	}
}

func TestSession_ClickAtCentreScoresAndRemoves(t *testing.T) {
	rec := &recorder{}
	s, _ := newTestSession(t, nil, rec)
	s.Start()

	// Small tier, left lane.
	res := s.Click(160, 120)
	if res.Outcome != game.ClickHit {
		t.Fatalf("outcome = %v, want hit", res.Outcome)
	}
	if res.Points != 300 || s.Score() != 300 {
		t.Errorf("points/score = %d/%d, want 300/300", res.Points, s.Score())
	}
	if s.Ammo() != 3 {
		t.Errorf("ammo = %d, want 3 (hits are free)", s.Ammo())
	}
	if len(rec.hits) != 1 || rec.hits[0].Tier != targets.Small {
		t.Errorf("OnHit calls = %v", rec.hits)
	}
	if got := len(s.Snapshot().Targets); got != 5 {
		t.Errorf("live targets = %d, want 5", got)
	}

	res = s.Click(160, 120)
	if res.Outcome != game.ClickMiss {
		t.Errorf("second click outcome = %v, want miss", res.Outcome)
	}
	if s.Score() != 300 || s.Ammo() != 2 {
		t.Errorf("score/ammo = %d/%d, want 300/2", s.Score(), s.Ammo())
	}
}

func TestSession_MissDecrementsAmmoOnly(t *testing.T) {
	s, _ := newTestSession(t, nil, nil)
	s.Start()
	s.Click(160, 300) // medium hit, 200

	res := s.Click(missX, missY)
	if res.Outcome != game.ClickMiss {
		t.Fatalf("outcome = %v, want miss", res.Outcome)
	}
	if s.Ammo() != 2 {
		t.Errorf("ammo = %d, want 2", s.Ammo())
	}
	if s.Score() != 200 {
		t.Errorf("score = %d, want 200", s.Score())
	}
}

func TestSession_ThreeMissesEndGame(t *testing.T) {
	ctrl := gomock.NewController(t)
	l := mocks.NewMockListener(ctrl)

	gomock.InOrder(
		l.EXPECT().OnStart(uint64(1)),
		l.EXPECT().OnMiss(uint32(2)),
		l.EXPECT().OnMiss(uint32(1)),
		l.EXPECT().OnMiss(uint32(0)),
		l.EXPECT().OnGameOver(game.Result{Round: 1, Score: 0, Reason: game.OverAmmo}).Times(1),
	)

	s, clk := newTestSession(t, nil, l)
	s.Start()
	for i := 0; i < 3; i++ {
		s.Click(missX, missY)
	}

	if s.Phase() != game.PhaseOver {
		t.Fatalf("phase = %q, want %q", s.Phase(), game.PhaseOver)
	}
	if s.Ammo() != 0 {
		t.Errorf("ammo = %d, want 0", s.Ammo())
	}
	if clk.Running() {
		t.Error("cadences should stop on game over")
	}

	// Nothing moves after the round is over.
	if res := s.Click(160, 120); res.Outcome != game.ClickIgnored {
		t.Errorf("click after over = %v, want ignored", res.Outcome)
	}
	clk.Step(5 * time.Second)
	if s.TimeLeft() != 60 || s.Score() != 0 {
		t.Errorf("time/score after over = %d/%d, want 60/0", s.TimeLeft(), s.Score())
	}
}

func TestSession_TimeRunsOut(t *testing.T) {
	rec := &recorder{}
	s, clk := newTestSession(t, nil, rec)
	s.Start()

	clk.Advance(59 * time.Second)
	if s.TimeLeft() != 1 || s.Phase() != game.PhaseRunning {
		t.Fatalf("after 59s time/phase = %d/%q, want 1/running", s.TimeLeft(), s.Phase())
	}

	clk.Advance(time.Second)
	if s.TimeLeft() != 0 || s.Phase() != game.PhaseOver {
		t.Fatalf("after 60s time/phase = %d/%q, want 0/over", s.TimeLeft(), s.Phase())
	}

	clk.Advance(10 * time.Second)
	if len(rec.overs) != 1 {
		t.Fatalf("OnGameOver calls = %d, want 1", len(rec.overs))
	}
	if rec.overs[0].Reason != game.OverTime {
		t.Errorf("reason = %q, want %q", rec.overs[0].Reason, game.OverTime)
	}
	if res := s.Click(missX, missY); res.Outcome != game.ClickIgnored || s.Ammo() != 3 {
		t.Errorf("click after timeout: outcome=%v ammo=%d, want ignored/3", res.Outcome, s.Ammo())
	}
}

func TestSession_RestartResets(t *testing.T) {
	s, clk := newTestSession(t, nil, nil)
	s.Start()
	s.Click(160, 120)
	clk.Advance(10 * time.Second)
	for s.Phase() == game.PhaseRunning {
		s.Click(missX, missY)
	}

	if !s.Start() {
		t.Fatal("Start() = false from over")
	}
	if s.Score() != 0 || s.Ammo() != 3 || s.TimeLeft() != 60 {
		t.Errorf("after restart score/ammo/time = %d/%d/%d, want 0/3/60", s.Score(), s.Ammo(), s.TimeLeft())
	}
	if s.Round() != 2 {
		t.Errorf("round = %d, want 2", s.Round())
	}
	if got := len(s.Snapshot().Targets); got != 6 {
		t.Errorf("targets after restart = %d, want 6", got)
	}
}

func TestSession_RespawnAfterDelay(t *testing.T) {
	s, clk := newTestSession(t, nil, nil)
	s.Start()
	s.Click(640, 480)

	if clk.Pending() != 1 {
		t.Fatalf("pending respawns = %d, want 1", clk.Pending())
	}
	clk.Advance(499 * time.Millisecond)
	if got := len(s.Snapshot().Targets); got != 5 {
		t.Fatalf("live targets before delay = %d, want 5", got)
	}
	clk.Advance(time.Millisecond)
	snap := s.Snapshot()
	if len(snap.Targets) != 6 {
		t.Fatalf("live targets after delay = %d, want 6", len(snap.Targets))
	}
	if snap.Targets[5].ID != 7 {
		t.Errorf("respawned target ID = %d, want 7 (appended last)", snap.Targets[5].ID)
	}
}

func TestSession_RespawnSuppressedAfterOver(t *testing.T) {
	s, clk := newTestSession(t, nil, nil)
	s.Start()
	s.Click(640, 480)
	for i := 0; i < 3; i++ {
		s.Click(missX, missY)
	}

	clk.Advance(time.Second)
	if got := len(s.Snapshot().Targets); got != 5 {
		t.Errorf("live targets = %d, want 5 (respawn after over must be dropped)", got)
	}
}

func TestSession_RespawnFromOldRoundDropped(t *testing.T) {
	s, clk := newTestSession(t, nil, nil)
	s.Start()
	s.Click(640, 480)
	for i := 0; i < 3; i++ {
		s.Click(missX, missY)
	}
	s.Start()

	clk.Advance(time.Second)
	if got := len(s.Snapshot().Targets); got != 6 {
		t.Errorf("live targets = %d, want 6 (stale respawn leaked into new round)", got)
	}
}

func TestSession_FrameTickMovesLiveTargets(t *testing.T) {
	s, clk := newTestSession(t, nil, nil)
	s.Start()
	before := s.Snapshot().Targets

	clk.Step(16 * time.Millisecond)

	after := s.Snapshot().Targets
	for i := range before {
		if after[i].X != before[i].X+before[i].VX {
			t.Errorf("target %d X = %v, want %v", after[i].ID, after[i].X, before[i].X+before[i].VX)
		}
		if after[i].Y != before[i].Y {
			t.Errorf("target %d Y changed", after[i].ID)
		}
	}
}

func TestSession_IdleIgnoresClicksAndTicks(t *testing.T) {
	s, clk := newTestSession(t, nil, nil)
	before := s.Snapshot().Targets

	if res := s.Click(160, 120); res.Outcome != game.ClickIgnored {
		t.Errorf("idle click = %v, want ignored", res.Outcome)
	}
	clk.Step(time.Second)

	after := s.Snapshot().Targets
	if after[0].X != before[0].X {
		t.Error("targets moved while idle")
	}
}

func TestSession_ResizeIdleRebuildsLayout(t *testing.T) {
	s, _ := newTestSession(t, nil, nil)
	s.Resize(1000, 500)

	snap := s.Snapshot()
	if snap.Width != 1000 || snap.Height != 500 {
		t.Errorf("dims = %vx%v, want 1000x500", snap.Width, snap.Height)
	}
	if snap.Targets[0].X != 200 || snap.Targets[0].Y != 100 {
		t.Errorf("first target = (%v, %v), want (200, 100)", snap.Targets[0].X, snap.Targets[0].Y)
	}
}

func TestSession_ResizeRunningKeepsTargets(t *testing.T) {
	s, _ := newTestSession(t, nil, nil)
	s.Start()
	before := s.Snapshot().Targets

	s.Resize(300, 200)

	after := s.Snapshot().Targets
	if len(after) != len(before) {
		t.Fatalf("targets = %d, want %d", len(after), len(before))
	}
	for i := range before {
		if after[i].X != before[i].X || after[i].Y != before[i].Y {
			t.Errorf("target %d moved on resize", before[i].ID)
		}
	}
	if s.Phase() != game.PhaseRunning {
		t.Errorf("phase = %q, want running", s.Phase())
	}
}

func TestSession_ResizeOverStaysOver(t *testing.T) {
	s, _ := newTestSession(t, nil, nil)
	s.Start()
	for i := 0; i < 3; i++ {
		s.Click(missX, missY)
	}
	s.Resize(1024, 768)

	if s.Phase() != game.PhaseOver {
		t.Errorf("phase = %q, want over", s.Phase())
	}
}

func TestSession_RedrawsOnEveryMutation(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockPresenter(ctrl)

	var last game.Snapshot
	p.EXPECT().Redraw(gomock.Any()).Do(func(s game.Snapshot) { last = s }).Times(4)

	s, clk := newTestSession(t, p, nil) // Resize
	s.Start()                           // initial frame
	clk.Step(16 * time.Millisecond)     // frame tick
	s.Click(missX, missY)               // click

	if last.Ammo != 2 || last.Phase != game.PhaseRunning {
		t.Errorf("last redraw ammo/phase = %d/%q, want 2/running", last.Ammo, last.Phase)
	}
}

func TestNewSession_ZeroConfigFallsBack(t *testing.T) {
	f := targets.NewFactory(targets.Responsive, nil, rand.New(rand.NewSource(1)))
	s := game.NewSession(game.Config{}, f, clock.NewManual(), nil, nil)
	s.Resize(800, 600)
	s.Start()

	if s.Ammo() != 3 || s.TimeLeft() != 60 {
		t.Errorf("ammo/time = %d/%d, want 3/60", s.Ammo(), s.TimeLeft())
	}
}

// heldClock keeps every cadence it was handed, like ticks already queued on
// the loop when StopAll runs.
type heldClock struct {
	frames  []func()
	seconds []func()
}

func (c *heldClock) Start(frame, second func()) {
	c.frames = append(c.frames, frame)
	c.seconds = append(c.seconds, second)
}
func (c *heldClock) StopAll()                        {}
func (c *heldClock) AfterFunc(time.Duration, func()) {}

func TestSession_TicksFromOldRoundDropped(t *testing.T) {
	clk := &heldClock{}
	f := targets.NewFactory(targets.Responsive, nil, rand.New(rand.NewSource(7)))
	s := game.NewSession(game.DefaultConfig(), f, clk, nil, nil)
	s.Resize(800, 600)

	s.Start()
	for i := 0; i < 3; i++ {
		s.Click(missX, missY)
	}
	if !s.Start() {
		t.Fatal("Start() = false from over")
	}

	before := s.Snapshot()
	clk.frames[0]()
	clk.seconds[0]()
	after := s.Snapshot()

	if after.TimeLeft != before.TimeLeft {
		t.Errorf("time left = %d after a stale second tick, want %d", after.TimeLeft, before.TimeLeft)
	}
	for i := range before.Targets {
		if after.Targets[i].X != before.Targets[i].X {
			t.Errorf("target %d moved on a stale frame tick: %v -> %v", i, before.Targets[i].X, after.Targets[i].X)
		}
	}

	// The new round's own ticks still apply.
	clk.frames[1]()
	clk.seconds[1]()
	now := s.Snapshot()
	if now.TimeLeft != before.TimeLeft-1 {
		t.Errorf("time left = %d, want %d", now.TimeLeft, before.TimeLeft-1)
	}
	if now.Targets[0].X == before.Targets[0].X {
		t.Error("current frame tick did not move targets")
	}
}
