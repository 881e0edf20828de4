package clock

import (
	"context"
	"time"
)

// PostFunc hands fn to the goroutine that owns the session state. It blocks
// until fn is queued and reports false if ctx ended first.
type PostFunc func(ctx context.Context, fn func()) bool

// task is a named repeating cadence that can be cancelled.
type task struct {
	name   string
	cancel context.CancelFunc
}

func (t *task) stop() {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}

// Ticker is a wall-clock Scheduler. Its cadences run on their own goroutines
// and never call back directly: every tick is posted to the owning loop.
// Start, StopAll and AfterFunc must be called from that loop.
type Ticker struct {
	parent context.Context
	post   PostFunc
	frame  task
	second task
	every  time.Duration
}

// minFrame bounds the frame cadence for very high frame rates.
const minFrame = time.Millisecond

// NewTicker returns a Ticker whose frame cadence runs at frameRate ticks per
// second, at most one per millisecond. All tasks end when ctx is done.
func NewTicker(ctx context.Context, post PostFunc, frameRate int) *Ticker {
	if frameRate <= 0 {
		frameRate = 60
	}
	return &Ticker{
		parent: ctx,
		post:   post,
		frame:  task{name: "frame"},
		second: task{name: "second"},
		every:  max(time.Second/time.Duration(frameRate), minFrame),
	}
}

func (t *Ticker) Start(frame, second func()) {
	t.StopAll()
	t.run(&t.frame, t.every, frame)
	t.run(&t.second, SecondPeriod, second)
}

func (t *Ticker) StopAll() {
	t.frame.stop()
	t.second.stop()
}

// AfterFunc posts fn to the loop once d has elapsed.
func (t *Ticker) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, func() {
		t.post(t.parent, fn)
	})
}

func (t *Ticker) run(tk *task, every time.Duration, fn func()) {
	ctx, cancel := context.WithCancel(t.parent)
	tk.cancel = cancel
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !t.post(ctx, fn) {
					return
				}
			}
		}
	}()
}

// Active returns the names of the cadences currently running.
func (t *Ticker) Active() []string {
	var names []string
	for _, tk := range []*task{&t.frame, &t.second} {
		if tk.cancel != nil {
			names = append(names, tk.name)
		}
	}
	return names
}
