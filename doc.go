// Package starfield renders a projection starfield: a fixed pool of stars
// emanates from a projection origin, moving toward the viewer along the depth
// axis, growing in size and brightness, and wrapping back to random positions
// once they pass the viewer.
//
// The core is host agnostic. A [Simulator] owns the star pool and advances it
// once per frame, a [Projector] maps stars to screen coordinates, and a
// [FrameRenderer] culls stars and emits draw calls to a [Host]:
//
//	sim, err := starfield.NewSimulator(starfield.DefaultConfig().Centered(800, 600), nil)
//	if err != nil {
//		return err
//	}
//	r := starfield.NewFrameRenderer(sim, func(tr starfield.Transform) myHandle {
//		return newHandle(tr.Scale, tr.Opacity)
//	})
//	// every frame:
//	r.Render(seconds, width, height, host)
//
// # Ebitengine
//
// [Effect] implements [ebiten.Game] and is the batteries-included host:
//
//	e, _ := starfield.NewEffect(starfield.EffectConfig{
//		Config:    starfield.DefaultConfig(),
//		BlendMode: starfield.BlendAdd,
//	})
//	starfield.Run(e, starfield.RunConfig{Title: "Stars", Width: 800, Height: 600})
//
// Speed changes can be eased with [Simulator.WarpTo] (via [gween]), and
// captures automated with [LoadScript].
//
// # Terminal hosts
//
// Package starfield/tui runs the effect as a [Bubble Tea] model, and package
// starfield/console draws straight to a [tcell] screen. Module
// starfield/ecs forwards star events into a [Donburi] world.
//
// [gween]: https://github.com/tanema/gween
// [Bubble Tea]: https://github.com/charmbracelet/bubbletea
// [tcell]: https://github.com/gdamore/tcell
// [Donburi]: https://github.com/yohamta/donburi
package starfield
