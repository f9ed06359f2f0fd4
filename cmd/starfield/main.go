// Command starfield flies through a field of stars in a window, a Bubble Tea
// program or a raw tcell screen.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/phanxgames/starfield"
	"github.com/phanxgames/starfield/console"
	"github.com/phanxgames/starfield/internal/logging"
	"github.com/phanxgames/starfield/tui"
)

const (
	modeWindow  = "window"
	modeTUI     = "tui"
	modeConsole = "console"
)

type options struct {
	mode       string
	configPath string
	scriptPath string
	debug      bool
	showFPS    bool
	width      int
	height     int

	seed        uint64
	amount      int
	depth       int
	perspective float64
	speed       float64
}

func main() {
	var o options
	flag.StringVar(&o.mode, "mode", modeWindow, "Output: window, tui or console")
	flag.StringVar(&o.configPath, "config", "", "JSON config file")
	flag.StringVar(&o.scriptPath, "script", "", "JSON script of timed actions (window mode)")
	flag.BoolVar(&o.debug, "debug", false, "Log per-frame timing and check star depth")
	flag.BoolVar(&o.showFPS, "fps", true, "Show the FPS overlay (window mode)")
	flag.IntVar(&o.width, "width", 800, "Window width")
	flag.IntVar(&o.height, "height", 600, "Window height")
	flag.Uint64Var(&o.seed, "seed", 0, "Random seed; 0 picks one from the clock")
	flag.IntVar(&o.amount, "amount", 0, "Number of stars")
	flag.IntVar(&o.depth, "depth", 0, "Maximum spawn depth")
	flag.Float64Var(&o.perspective, "perspective", 0, "Perspective factor")
	flag.Float64Var(&o.speed, "speed", 0, "Depth units per second")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if o.debug {
		level = logging.LevelDebug
	}
	logger := logging.New(level)

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if err := run(o, set, logger); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

func run(o options, set map[string]bool, logger *logging.Logger) error {
	if o.debug {
		starfield.SetDebugOutput(logger.With("frame").Writer(logging.LevelDebug))
	}

	base := starfield.DefaultConfig()
	if o.mode != modeWindow {
		base = tui.DefaultConfig()
	}
	cfg, err := loadConfig(o.configPath, base)
	if err != nil {
		return err
	}
	applyFlags(&cfg, o, set)
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger.Debug("config: %+v", cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	switch o.mode {
	case modeWindow:
		return runWindow(cfg, o, logger.With(modeWindow))
	case modeTUI:
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("tui mode needs a terminal on stdout")
		}
		return runTUI(ctx, cfg, o, logger.With(modeTUI))
	case modeConsole:
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("console mode needs a terminal on stdout")
		}
		return runConsole(ctx, cfg, logger.With(modeConsole))
	}
	return fmt.Errorf("unknown mode %q", o.mode)
}

// loadConfig reads path over base. An empty path returns base.
func loadConfig(path string, base starfield.Config) (starfield.Config, error) {
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config: %w", err)
	}
	cfg, err := starfield.LoadConfig(data)
	if err != nil {
		return base, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// applyFlags overrides cfg with the flags given on the command line.
func applyFlags(cfg *starfield.Config, o options, set map[string]bool) {
	if set["seed"] {
		cfg.Seed = o.seed
	}
	if set["amount"] {
		cfg.Amount = o.amount
	}
	if set["depth"] {
		cfg.Depth = o.depth
	}
	if set["perspective"] {
		cfg.Perspective = o.perspective
	}
	if set["speed"] {
		cfg.Speed = o.speed
	}
}

func runWindow(cfg starfield.Config, o options, logger *logging.Logger) error {
	effect, err := starfield.NewEffect(starfield.EffectConfig{
		Config:         cfg,
		BlendMode:      starfield.BlendAdd,
		ClampOpacity:   true,
		CenterOnResize: true,
	})
	if err != nil {
		return err
	}
	effect.ClearColor = starfield.ColorBlack

	if o.scriptPath != "" {
		data, err := os.ReadFile(o.scriptPath)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := starfield.LoadScript(data)
		if err != nil {
			return fmt.Errorf("%s: %w", o.scriptPath, err)
		}
		effect.SetScript(runner)
		logger.Info("running script %s", o.scriptPath)
	}

	logger.Info("%d stars, %d transforms", cfg.Amount, effect.Simulator().Table().Len())
	return starfield.Run(effect, starfield.RunConfig{
		Width:   o.width,
		Height:  o.height,
		ShowFPS: o.showFPS,
		Debug:   o.debug,
	})
}

func runTUI(ctx context.Context, cfg starfield.Config, o options, logger *logging.Logger) error {
	m, err := tui.New(tui.Options{Config: cfg, ShowStats: o.debug})
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	logger.Debug("starting program")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func runConsole(ctx context.Context, cfg starfield.Config, logger *logging.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("console: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("console: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	c, err := console.New(screen, console.Options{Config: cfg})
	if err != nil {
		return err
	}
	logger.Debug("screen ready")
	return c.Run(ctx)
}
