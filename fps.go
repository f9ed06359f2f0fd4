package starfield

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay displays the current FPS, TPS and star counts.
// The text is refreshed every ~0.5 seconds.
type fpsOverlay struct {
	img     *ebiten.Image
	elapsed float64
}

func newFPSOverlay() *fpsOverlay {
	// 120x64 is enough for four short lines of debug font.
	return &fpsOverlay{img: ebiten.NewImage(120, 64), elapsed: 0.5}
}

func (f *fpsOverlay) update(dt float64, stats FrameStats) {
	f.elapsed += dt
	if f.elapsed < 0.5 {
		return
	}
	f.elapsed = 0

	f.img.Clear()
	// Semi-transparent background for readability
	f.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(f.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nDrawn: %d\nCulled: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), stats.Drawn, stats.Culled))
}

func (f *fpsOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(f.img, nil)
}
