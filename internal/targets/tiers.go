package targets

import "fmt"

type Tier int

const (
	Small Tier = iota
	Medium
	Large
)

// Tiers lists every tier in layout order, top row first.
var Tiers = [...]Tier{Small, Medium, Large}

func (t Tier) String() string {
	switch t {
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// Mode selects how tier parameters follow the surface size.
type Mode string

const (
	Responsive = Mode("responsive")
	Fixed      = Mode("fixed")
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case Responsive, Fixed:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown scale mode %q", s)
	}
}

const (
	// referenceWidth is the surface width the base speeds were tuned for.
	referenceWidth = 800

	leftFraction  = 0.2
	rightFraction = 0.8

	fixedLeftX  = 150
	fixedRightX = 450
)

type tierRow struct {
	minRadius   float64
	radiusScale float64
	heightFrac  float64
	fixedY      float64
	score       uint32
	speed       float64
}

var tierTable = map[Tier]tierRow{
	Small:  {minRadius: 30, radiusScale: 0.7, heightFrac: 0.2, fixedY: 150, score: 300, speed: 4},
	Medium: {minRadius: 50, radiusScale: 1.0, heightFrac: 0.5, fixedY: 300, score: 200, speed: 2.5},
	Large:  {minRadius: 80, radiusScale: 1.3, heightFrac: 0.8, fixedY: 450, score: 100, speed: 1.5},
}

// Params are the tier-derived values for one target on a given surface.
type Params struct {
	Radius float64
	Y      float64
	Speed  float64
	Score  uint32
}

// Params resolves a tier on a surface of the given size. Radii never drop
// below the tier minimum, whatever the surface dimensions.
func (m Mode) Params(tier Tier, width, height float64) Params {
	row, ok := tierTable[tier]
	if !ok {
		row = tierTable[Medium]
	}
	width, height = clampDim(width), clampDim(height)

	if m == Fixed {
		return Params{
			Radius: row.minRadius,
			Y:      row.fixedY,
			Speed:  row.speed,
			Score:  row.score,
		}
	}

	baseRadius := min(width, height) / 10
	return Params{
		Radius: max(row.minRadius, baseRadius*row.radiusScale),
		Y:      height * row.heightFrac,
		Speed:  row.speed * (width / referenceWidth),
		Score:  row.score,
	}
}

// lanes returns the left and right starting x positions.
func (m Mode) lanes(width float64) (float64, float64) {
	if m == Fixed {
		return fixedLeftX, fixedRightX
	}
	width = clampDim(width)
	return width * leftFraction, width * rightFraction
}

func clampDim(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
