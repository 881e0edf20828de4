package targets

import (
	"math/rand"
	"time"
)

// VisualPool holds the visual ids available to each tier. A tier with no
// entries yields targets with an empty visual id.
type VisualPool map[Tier][]string

// Factory builds targets for one scaling mode. The initial layout and every
// respawn go through the same Factory so the two never disagree on sizes.
type Factory struct {
	mode    Mode
	visuals VisualPool
	rng     *rand.Rand
	now     func() time.Time
}

func NewFactory(mode Mode, visuals VisualPool, rng *rand.Rand) *Factory {
	if mode == "" {
		mode = Responsive
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Factory{
		mode:    mode,
		visuals: visuals,
		rng:     rng,
		now:     time.Now,
	}
}

func (f *Factory) Mode() Mode {
	return f.mode
}

// InitialLayout returns two targets per tier, top row first. In each pair the
// left target moves right and the right target moves left.
func (f *Factory) InitialLayout(width, height float64) []*Target {
	leftX, rightX := f.mode.lanes(width)
	layout := make([]*Target, 0, len(Tiers)*2)
	for _, tier := range Tiers {
		p := f.mode.Params(tier, width, height)
		layout = append(layout,
			f.build(tier, p, leftX, p.Speed),
			f.build(tier, p, rightX, -p.Speed),
		)
	}
	return layout
}

// Spawn returns one replacement target with a random tier, position and
// direction.
func (f *Factory) Spawn(width, height float64) *Target {
	tier := Tiers[f.rng.Intn(len(Tiers))]
	p := f.mode.Params(tier, width, height)

	var x float64
	if f.mode == Fixed {
		leftX, rightX := f.mode.lanes(width)
		x = leftX
		if f.rng.Intn(2) == 1 {
			x = rightX
		}
	} else {
		width = clampDim(width)
		span := width - 2*p.Radius
		if span > 0 {
			x = p.Radius + f.rng.Float64()*span
		} else {
			x = width / 2
		}
	}

	dir := 1.0
	if f.rng.Intn(2) == 0 {
		dir = -1
	}
	return f.build(tier, p, x, dir*p.Speed)
}

func (f *Factory) build(tier Tier, p Params, x, vx float64) *Target {
	return &Target{
		X:         x,
		Y:         p.Y,
		Radius:    p.Radius,
		VX:        vx,
		Score:     p.Score,
		Tier:      tier,
		Visual:    f.pickVisual(tier),
		SpawnedAt: f.now(),
	}
}

func (f *Factory) pickVisual(tier Tier) string {
	pool := f.visuals[tier]
	if len(pool) == 0 {
		return ""
	}
	return pool[f.rng.Intn(len(pool))]
}
