package starfield

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type nullHost struct{}

func (nullHost) Emit(int, float64, float64) {}
func (nullHost) RequestNextFrame()          {}

func benchSimulator(b *testing.B, amount int) *Simulator {
	b.Helper()
	cfg := DefaultConfig().Centered(1280, 720)
	cfg.Amount = amount
	cfg.Seed = 1
	sim, err := NewSimulator(cfg, nil)
	if err != nil {
		b.Fatal(err)
	}
	return sim
}

func BenchmarkBuildTransforms_Depth16(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		BuildTransforms(16)
	}
}

func BenchmarkAdvance_10000Stars(b *testing.B) {
	sim := benchSimulator(b, 10000)
	sim.Advance(0)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sim.Advance(float64(i+1) / 60)
	}
}

func BenchmarkRender_10000Stars(b *testing.B) {
	sim := benchSimulator(b, 10000)
	r := NewFrameRenderer(sim, func(Transform) int { return 0 })
	r.Render(0, 1280, 720, nullHost{})

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r.Render(float64(i+1)/60, 1280, 720, nullHost{})
	}
}

func BenchmarkEffectFrame_10000Stars(b *testing.B) {
	cfg := DefaultConfig()
	cfg.Amount = 10000
	cfg.Seed = 1
	e, err := NewEffect(EffectConfig{Config: cfg, Width: 1280, Height: 720, BlendMode: BlendAdd})
	if err != nil {
		b.Fatal(err)
	}
	screen := ebiten.NewImage(1280, 720)

	// Warm up: the first frame grows the command buffer.
	_ = e.Update()
	e.Draw(screen)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = e.Update()
		e.Draw(screen)
	}
}
