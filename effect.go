package starfield

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const defaultCommandCap = 256

// Sprite is the ebiten drawable for one transform table entry. Sprites are
// built once per table entry and shared by every star at that index.
type Sprite struct {
	Image   *ebiten.Image
	Scale   float64
	R, G, B float32
	Alpha   float32
}

// drawCommand is a single draw instruction emitted during Render.
type drawCommand struct {
	sprite *Sprite
	x, y   float64
}

// EffectConfig controls an Effect.
type EffectConfig struct {
	// Config configures the simulator. A zero origin is centered on the
	// screen once its size is known.
	Config Config
	// Source overrides the random source. Nil uses Config.Seed.
	Source Source
	// Image is the star texture, drawn centered on the projected point.
	// Nil uses a small white square.
	Image *ebiten.Image
	// Tint multiplies the star texture. The zero value means white.
	Tint Color
	// BlendMode is the compositing operation for stars.
	BlendMode BlendMode
	// ClampOpacity caps transform opacities at 1. Without it near stars
	// overshoot and render brighter than the texture.
	ClampOpacity bool
	// Width and Height fix the logical screen size. Zero follows the
	// outside size passed to Layout.
	Width, Height int
	// CenterOnResize re-centers the projection origin whenever the logical
	// screen size changes.
	CenterOnResize bool
}

// Effect runs a starfield as an ebiten.Game. Render happens in Update, and
// only when the previous frame requested another one; Draw submits the
// resulting commands.
type Effect struct {
	renderer *FrameRenderer[*Sprite]
	sim      *Simulator
	commands []drawCommand
	blend    BlendMode

	fixedW, fixedH int
	width, height  int
	center         bool

	st     float64
	redraw bool
	paused bool
	stats  FrameStats

	// ClearColor fills the screen before stars are drawn. A zero alpha
	// leaves the screen untouched so the effect can be layered.
	ClearColor Color
	// ScreenshotDir is where queued screenshots are written.
	ScreenshotDir string

	screenshotQueue []string
	script          *ScriptRunner
	fps             *fpsOverlay
}

// NewEffect builds the simulator, renderer and one Sprite per transform.
func NewEffect(cfg EffectConfig) (*Effect, error) {
	simCfg := cfg.Config
	center := cfg.CenterOnResize || (simCfg.OriginX == 0 && simCfg.OriginY == 0)
	if center && cfg.Width > 0 && cfg.Height > 0 {
		simCfg = simCfg.Centered(cfg.Width, cfg.Height)
	}
	sim, err := NewSimulator(simCfg, cfg.Source)
	if err != nil {
		return nil, err
	}

	img := cfg.Image
	if img == nil {
		img = ensureStarImage()
	}
	tint := cfg.Tint
	if tint == (Color{}) {
		tint = ColorWhite
	}
	clampOpacity := cfg.ClampOpacity
	renderer := NewFrameRenderer(sim, func(tr Transform) *Sprite {
		a := tr.Opacity * tint.A
		if clampOpacity {
			a = min(a, 1)
		}
		return &Sprite{
			Image: img,
			Scale: tr.Scale,
			R:     float32(tint.R),
			G:     float32(tint.G),
			B:     float32(tint.B),
			Alpha: float32(a),
		}
	})

	e := &Effect{
		renderer:      renderer,
		sim:           sim,
		commands:      make([]drawCommand, 0, defaultCommandCap),
		blend:         cfg.BlendMode,
		fixedW:        cfg.Width,
		fixedH:        cfg.Height,
		width:         cfg.Width,
		height:        cfg.Height,
		center:        center,
		redraw:        true,
		ClearColor:    ColorBlack,
		ScreenshotDir: "screenshots",
	}
	return e, nil
}

// Simulator returns the underlying simulator, e.g. for WarpTo.
func (e *Effect) Simulator() *Simulator {
	return e.sim
}

// Renderer returns the frame renderer.
func (e *Effect) Renderer() *FrameRenderer[*Sprite] {
	return e.renderer
}

// SetDebugMode enables or disables debug mode on the renderer.
func (e *Effect) SetDebugMode(enabled bool) {
	e.renderer.SetDebugMode(enabled)
}

// SetShowFPS toggles the FPS/TPS overlay in the top-left corner.
func (e *Effect) SetShowFPS(show bool) {
	if !show {
		e.fps = nil
		return
	}
	if e.fps == nil {
		e.fps = newFPSOverlay()
	}
}

// Pause freezes the clock. The last frame keeps being drawn.
func (e *Effect) Pause() {
	e.paused = true
}

// Resume continues from the frozen clock without a jump.
func (e *Effect) Resume() {
	e.paused = false
}

// IsPaused reports whether the effect is paused.
func (e *Effect) IsPaused() bool {
	return e.paused
}

// Stats returns the stats of the last rendered frame.
func (e *Effect) Stats() FrameStats {
	return e.stats
}

// Emit queues a draw command. Implements Host.
func (e *Effect) Emit(s *Sprite, x, y float64) {
	e.commands = append(e.commands, drawCommand{sprite: s, x: x, y: y})
}

// RequestNextFrame marks the effect for rendering on the next Update.
// Implements Host.
func (e *Effect) RequestNextFrame() {
	e.redraw = true
}

// Update advances the clock by one tick and renders a frame if one was
// requested.
func (e *Effect) Update() error {
	dt := tickSeconds(ebiten.TPS(), ebiten.ActualFPS())
	if e.script != nil {
		e.script.step(e)
	}
	if e.fps != nil {
		e.fps.update(dt, e.stats)
	}
	if e.paused || !e.redraw {
		return nil
	}
	e.redraw = false
	e.st += dt
	e.commands = e.commands[:0]
	e.stats = e.renderer.Render(e.st, e.width, e.height, e)
	return nil
}

// tickSeconds is the clock step of one Update. With ebiten.SyncWithFPS the
// TPS is negative, so the step follows the measured frame rate instead, or
// 1/60 before one has been measured. The step is never negative.
func tickSeconds(tps int, actualFPS float64) float64 {
	switch {
	case tps > 0:
		return 1 / float64(tps)
	case actualFPS > 0:
		return 1 / actualFPS
	}
	return 1.0 / 60
}

// Draw fills the clear color, submits the queued stars and flushes
// screenshots.
func (e *Effect) Draw(screen *ebiten.Image) {
	if e.ClearColor.A > 0 {
		screen.Fill(e.ClearColor.toRGBA())
	}
	e.submit(screen)
	if e.fps != nil {
		e.fps.draw(screen)
	}
	e.flushScreenshots(screen)
}

// Layout returns the logical screen size. Without a fixed size the outside
// size is used, and the origin follows it when centering is enabled.
func (e *Effect) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := outsideWidth, outsideHeight
	if e.fixedW > 0 && e.fixedH > 0 {
		w, h = e.fixedW, e.fixedH
	}
	e.resize(w, h)
	return w, h
}

// resize records the screen size and re-centers the origin if needed.
func (e *Effect) resize(w, h int) {
	if w == e.width && h == e.height {
		return
	}
	e.width, e.height = w, h
	if e.center {
		e.sim.SetOrigin(float64(w)*0.5, float64(h)*0.5)
	}
}

// starImage is the default star texture, created on first use.
var starImage *ebiten.Image

func ensureStarImage() *ebiten.Image {
	if starImage == nil {
		starImage = ebiten.NewImage(3, 3)
		starImage.Fill(ColorWhite.toRGBA())
	}
	return starImage
}
