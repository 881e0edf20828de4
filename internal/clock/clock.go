// Package clock drives the two cadences of a running round, the per-frame
// tick and the per-second countdown tick, plus one-shot deferred calls.
package clock

import "time"

// Scheduler is the clock a game session runs on.
//
// Start replaces any cadences still running from an earlier call, so a new
// round never shares ticks with an old one. StopAll cancels both cadences
// together. Deferred calls are not cancelled by StopAll; callers guard them
// themselves.
type Scheduler interface {
	Start(frame, second func())
	StopAll()
	AfterFunc(d time.Duration, fn func())
}

// SecondPeriod is the countdown cadence.
const SecondPeriod = time.Second
