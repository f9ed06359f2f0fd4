// Package tui runs a starfield as a Bubble Tea model. Each frame is a
// tea.Tick, scheduled only when the renderer requests the next frame.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/phanxgames/starfield"
)

// FrameMsg triggers one rendered frame.
type FrameMsg time.Time

// glyphs go from faint to bright.
var glyphs = []string{".", "·", "+", "*", "✶"}

// Options configures a Model.
type Options struct {
	Config starfield.Config
	// Source overrides the random source. Nil uses Config.Seed.
	Source starfield.Source
	// FPS is the frame rate. Zero means 30.
	FPS int
	// ShowStats reserves the bottom row for frame stats.
	ShowStats bool
}

// DefaultConfig is tuned for character cells, which are far coarser than
// pixels.
func DefaultConfig() starfield.Config {
	cfg := starfield.DefaultConfig()
	cfg.Amount = 96
	cfg.Perspective = 24
	return cfg
}

// Model is a tea.Model drawing a starfield into a cell grid.
type Model struct {
	renderer *starfield.FrameRenderer[string]
	sim      *starfield.Simulator

	grid          [][]string
	width, height int

	start     time.Time
	interval  time.Duration
	requested bool
	showStats bool
	stats     starfield.FrameStats

	statsStyle lipgloss.Style
}

// New builds the simulator and one styled glyph per transform.
func New(opts Options) (*Model, error) {
	sim, err := starfield.NewSimulator(opts.Config, opts.Source)
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = 30
	}
	m := &Model{
		sim:        sim,
		start:      time.Now(),
		interval:   time.Second / time.Duration(fps),
		showStats:  opts.ShowStats,
		statsStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
	}
	m.renderer = starfield.NewFrameRenderer(sim, glyphFor)
	return m, nil
}

// glyphFor picks a glyph and gray level from the transform's opacity.
func glyphFor(tr starfield.Transform) string {
	op := min(max(tr.Opacity, 0), 1)
	g := glyphs[min(int(tr.Opacity/2*float64(len(glyphs))), len(glyphs)-1)]
	v := 80 + int(op*175)
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", v, v, v)))
	return style.Render(g)
}

// Simulator returns the underlying simulator.
func (m *Model) Simulator() *starfield.Simulator {
	return m.sim
}

// Stats returns the last frame's stats.
func (m *Model) Stats() starfield.FrameStats {
	return m.stats
}

// Emit writes the glyph into the cell under (x, y). Implements starfield.Host.
func (m *Model) Emit(glyph string, x, y float64) {
	ix, iy := int(x), int(y)
	if iy < 0 || iy >= len(m.grid) || ix < 0 || ix >= len(m.grid[iy]) {
		return
	}
	m.grid[iy][ix] = glyph
}

// RequestNextFrame schedules the next tick. Implements starfield.Host.
func (m *Model) RequestNextFrame() {
	m.requested = true
}

// Init schedules the first frame.
func (m *Model) Init() tea.Cmd {
	return m.nextFrame()
}

func (m *Model) nextFrame() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// Update handles resizes, keys and frame ticks.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "+", "=":
			m.sim.WarpTo(m.sim.Speed()*2, 1, nil)
		case "-":
			m.sim.WarpTo(m.sim.Speed()/2, 1, nil)
		case "s":
			m.showStats = !m.showStats
		}
	case FrameMsg:
		st := time.Time(msg).Sub(m.start).Seconds()
		m.clear()
		m.requested = false
		m.stats = m.renderer.Render(st, m.width, m.fieldHeight(), m)
		if m.requested {
			return m, m.nextFrame()
		}
	}
	return m, nil
}

// View renders the grid, blank cells as spaces.
func (m *Model) View() string {
	var b strings.Builder
	rows := m.fieldHeight()
	for y := 0; y < rows; y++ {
		for _, c := range m.grid[y] {
			if c == "" {
				b.WriteByte(' ')
			} else {
				b.WriteString(c)
			}
		}
		if y < rows-1 {
			b.WriteByte('\n')
		}
	}
	if m.showStats && m.height > 0 {
		if rows > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(m.statsStyle.Render(fmt.Sprintf("drawn %d  culled %d  speed %.1f",
			m.stats.Drawn, m.stats.Culled, m.sim.Speed())))
	}
	return b.String()
}

// fieldHeight is the number of rows the stars may use.
func (m *Model) fieldHeight() int {
	if m.showStats && m.height > 0 {
		return m.height - 1
	}
	return m.height
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.grid = make([][]string, h)
	for y := range m.grid {
		m.grid[y] = make([]string, w)
	}
	m.sim.SetOrigin(float64(w)*0.5, float64(m.fieldHeight())*0.5)
}

func (m *Model) clear() {
	for _, row := range m.grid {
		clear(row)
	}
}
