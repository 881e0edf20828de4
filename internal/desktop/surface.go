package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// surface paints render calls onto one ebiten frame.
type surface struct {
	dst    *ebiten.Image
	images map[string]*ebiten.Image
}

func (s *surface) Clear() {
	s.dst.Fill(background)
}

func (s *surface) DrawCircleImage(visual string, x, y, r float64) {
	img, ok := s.images[visual]
	if !ok {
		vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(r), discColor, true)
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(2*r/float64(b.Dx()), 2*r/float64(b.Dy()))
	op.GeoM.Translate(x-r, y-r)
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(img, op)
}

func (s *surface) DrawText(label string, x, y float64) {
	text.Draw(s.dst, label, basicfont.Face7x13, int(x), int(y), color.White)
}
