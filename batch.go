package starfield

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// submit draws every queued command onto target. Each sprite is scaled
// around its center, which lands on the projected point.
func (e *Effect) submit(target *ebiten.Image) {
	if len(e.commands) == 0 {
		return
	}

	var op ebiten.DrawImageOptions
	op.Blend = e.blend.EbitenBlend()

	for i := range e.commands {
		cmd := &e.commands[i]
		sp := cmd.sprite
		if sp == nil || sp.Image == nil {
			continue
		}
		op.GeoM.Reset()
		op.GeoM.Concat(commandGeoM(cmd))

		// Premultiplied tint: color channels carry the alpha.
		a := sp.Alpha
		op.ColorScale.Reset()
		op.ColorScale.Scale(sp.R*a, sp.G*a, sp.B*a, a)

		target.DrawImage(sp.Image, &op)
	}
}

// commandGeoM scales the sprite around its center and translates the center
// to the command position.
func commandGeoM(cmd *drawCommand) ebiten.GeoM {
	var m ebiten.GeoM
	b := cmd.sprite.Image.Bounds()
	hw, hh := float64(b.Dx())/2, float64(b.Dy())/2
	m.Translate(-hw, -hh)
	m.Scale(cmd.sprite.Scale, cmd.sprite.Scale)
	m.Translate(cmd.x, cmd.y)
	return m
}
