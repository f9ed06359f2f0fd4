package starfield

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ShowFPS       bool
	Debug         bool
}

// Run opens a resizable window and runs the effect until the window is
// closed.
func Run(e *Effect, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 800, 600
	}
	if cfg.Title == "" {
		cfg.Title = "Starfield"
	}
	e.SetShowFPS(cfg.ShowFPS)
	e.SetDebugMode(cfg.Debug)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(e)
}
