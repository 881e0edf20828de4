package clock

import (
	"sort"
	"time"
)

type deferred struct {
	at  time.Duration
	seq int
	fn  func()
}

// Manual is a stepped Scheduler for hosts that already own a frame callback
// (and for tests). Time only moves when Advance or Step is called, and every
// callback runs on the caller's goroutine.
type Manual struct {
	now        time.Duration
	frame      func()
	second     func()
	running    bool
	nextSecond time.Duration
	pending    []deferred
	seq        int
}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Start(frame, second func()) {
	m.StopAll()
	m.frame = frame
	m.second = second
	m.running = true
	m.nextSecond = m.now + SecondPeriod
}

func (m *Manual) StopAll() {
	m.running = false
	m.frame = nil
	m.second = nil
}

func (m *Manual) AfterFunc(d time.Duration, fn func()) {
	m.seq++
	m.pending = append(m.pending, deferred{at: m.now + d, seq: m.seq, fn: fn})
}

// Now is the virtual time elapsed since the clock was created.
func (m *Manual) Now() time.Duration {
	return m.now
}

func (m *Manual) Running() bool {
	return m.running
}

// Pending is the number of deferred calls that have not fired yet.
func (m *Manual) Pending() int {
	return len(m.pending)
}

// Advance moves virtual time forward by d, firing second ticks and deferred
// calls in time order. Callbacks may start, stop or schedule again.
func (m *Manual) Advance(d time.Duration) {
	until := m.now + d
	for {
		at, fire, ok := m.next(until)
		if !ok {
			break
		}
		m.now = at
		fire()
	}
	m.now = until
}

// Frame fires one frame tick if the cadences are running.
func (m *Manual) Frame() {
	if m.running && m.frame != nil {
		m.frame()
	}
}

// Step advances by dt and then fires one frame tick.
func (m *Manual) Step(dt time.Duration) {
	m.Advance(dt)
	m.Frame()
}

// next pops the earliest event due at or before until. Deferred calls due at
// the same instant as a second tick run first.
func (m *Manual) next(until time.Duration) (time.Duration, func(), bool) {
	sort.SliceStable(m.pending, func(i, j int) bool {
		if m.pending[i].at != m.pending[j].at {
			return m.pending[i].at < m.pending[j].at
		}
		return m.pending[i].seq < m.pending[j].seq
	})

	if len(m.pending) > 0 && m.pending[0].at <= until &&
		(!m.running || m.pending[0].at <= m.nextSecond) {
		d := m.pending[0]
		m.pending = m.pending[1:]
		return d.at, d.fn, true
	}

	if m.running && m.second != nil && m.nextSecond <= until {
		at := m.nextSecond
		m.nextSecond += SecondPeriod
		return at, m.second, true
	}
	return 0, nil, false
}
