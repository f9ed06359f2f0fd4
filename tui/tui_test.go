package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/phanxgames/starfield"
)

type constSource struct{ v int }

func (s constSource) IntN(n int) int { return s.v % n }

func newTestModel(t *testing.T, amount int) *Model {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Amount = amount
	cfg.Perspective = 5
	m, err := New(Options{Config: cfg, Source: constSource{9}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Amount = 0
	if _, err := New(Options{Config: cfg}); err == nil {
		t.Error("expected error for zero amount")
	}
}

func TestInitSchedulesFrame(t *testing.T) {
	m := newTestModel(t, 3)
	if m.Init() == nil {
		t.Error("Init should schedule the first frame")
	}
}

func TestResizeCentersOrigin(t *testing.T) {
	m := newTestModel(t, 3)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	p := m.Simulator().Projector()
	if p.OriginX != 40 || p.OriginY != 12 {
		t.Errorf("origin = (%v, %v), want (40, 12)", p.OriginX, p.OriginY)
	}
	if len(m.grid) != 24 || len(m.grid[0]) != 80 {
		t.Errorf("grid = %dx%d, want 80x24", len(m.grid[0]), len(m.grid))
	}
}

func TestFrameDrawsIntoGrid(t *testing.T) {
	m := newTestModel(t, 3)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	_, cmd := m.Update(FrameMsg(m.start))
	if cmd == nil {
		t.Error("frame should schedule the next frame")
	}
	if m.Stats().Drawn != 3 {
		t.Fatalf("drawn = %d, want 3", m.Stats().Drawn)
	}
	// (-16,-16) at z=10 with perspective 5: trunc(-8) + origin (40, 12).
	want := m.renderer.Handles()[10]
	if got := m.grid[4][32]; got != want {
		t.Errorf("cell (32,4) = %q, want %q", got, want)
	}
	if !strings.Contains(m.View(), want) {
		t.Error("view should contain the star glyph")
	}
}

func TestFrameClearsPreviousGlyphs(t *testing.T) {
	m := newTestModel(t, 1)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.Update(FrameMsg(m.start))
	m.grid[0][0] = "x"
	m.Update(FrameMsg(m.start))
	if m.grid[0][0] != "" {
		t.Errorf("stale cell = %q, want cleared", m.grid[0][0])
	}
}

func TestViewDimensions(t *testing.T) {
	m := newTestModel(t, 1)
	m.Update(tea.WindowSizeMsg{Width: 10, Height: 4})
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 4 {
		t.Fatalf("view lines = %d, want 4", len(lines))
	}
	if lines[0] != strings.Repeat(" ", 10) {
		t.Errorf("empty row = %q, want 10 spaces", lines[0])
	}
}

func TestStatsRowReservesLine(t *testing.T) {
	cfg := DefaultConfig()
	m, err := New(Options{Config: cfg, ShowStats: true})
	if err != nil {
		t.Fatal(err)
	}
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	p := m.Simulator().Projector()
	if p.OriginY != 4.5 {
		t.Errorf("originY = %v, want 4.5 with the stats row reserved", p.OriginY)
	}
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 10 {
		t.Fatalf("view lines = %d, want 10", len(lines))
	}
	if !strings.Contains(lines[9], "drawn") {
		t.Errorf("last line = %q, want stats", lines[9])
	}
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		m := newTestModel(t, 1)
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: command did not quit", key)
		}
	}
}

func TestWarpKeys(t *testing.T) {
	m := newTestModel(t, 1)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	if !m.Simulator().Warping() {
		t.Error("'+' should start a warp")
	}
}

func TestGlyphLadder(t *testing.T) {
	faint := glyphFor(starfield.Transform{Scale: 0.1, Opacity: 0.1})
	bright := glyphFor(starfield.Transform{Scale: 1.9, Opacity: 1.9})
	if !strings.Contains(faint, ".") {
		t.Errorf("faint glyph = %q, want '.'", faint)
	}
	if !strings.Contains(bright, "✶") {
		t.Errorf("bright glyph = %q, want '✶'", bright)
	}
}
