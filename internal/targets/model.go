package targets

import (
	"math"
	"time"
)

type Target struct {
	ID        int
	X         float64
	Y         float64
	Radius    float64
	VX        float64
	Score     uint32
	Tier      Tier
	Visual    string
	Hit       bool
	SpawnedAt time.Time
}

// Update moves the target one step and flips its direction once the circle
// has crossed the left or right edge. The edge test uses the post-move
// position, so a target may overshoot the boundary by up to one step.
func (t *Target) Update(width float64) {
	if t.Hit {
		return
	}
	t.X += t.VX
	if t.X-t.Radius < 0 || t.X+t.Radius > width {
		t.VX = -t.VX
	}
}

// Contains reports whether the point lies strictly inside a live target.
func (t *Target) Contains(px, py float64) bool {
	if t.Hit {
		return false
	}
	return math.Hypot(px-t.X, py-t.Y) < t.Radius
}

func (t *Target) MarkHit() {
	t.Hit = true
}
