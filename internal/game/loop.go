package game

import "context"

// Loop serialises everything that touches a session onto one goroutine.
// Timers, network readers and input pollers post closures; only Run executes
// them.
type Loop struct {
	inbox chan func()
}

func NewLoop(size int) *Loop {
	if size <= 0 {
		size = 64
	}
	return &Loop{inbox: make(chan func(), size)}
}

// Post queues fn, blocking while the inbox is full. It reports false when ctx
// ends before fn could be queued.
func (l *Loop) Post(ctx context.Context, fn func()) bool {
	select {
	case l.inbox <- fn:
		return true
	case <-ctx.Done():
		return false
	}
}

// Run executes posted closures until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case fn := <-l.inbox:
			fn()
		}
	}
}
