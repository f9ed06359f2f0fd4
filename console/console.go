// Package console draws a starfield straight onto a tcell screen.
package console

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/starfield"
)

// Cell is the console drawable for one transform: a rune and its style.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

var runes = []rune{'.', '·', '+', '*', '✶'}

// Options configures a Console.
type Options struct {
	Config starfield.Config
	// Source overrides the random source. Nil uses Config.Seed.
	Source starfield.Source
	// FPS is the frame rate of Run. Zero means 60.
	FPS int
}

// Console renders into a tcell.Screen that the caller has initialized and
// will finalize.
type Console struct {
	screen   tcell.Screen
	renderer *starfield.FrameRenderer[Cell]
	sim      *starfield.Simulator

	width, height int
	interval      time.Duration
	requested     bool
	stats         starfield.FrameStats
}

// New builds the simulator and one Cell per transform.
func New(screen tcell.Screen, opts Options) (*Console, error) {
	sim, err := starfield.NewSimulator(opts.Config, opts.Source)
	if err != nil {
		return nil, fmt.Errorf("console: %w", err)
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = 60
	}
	c := &Console{
		screen:    screen,
		sim:       sim,
		interval:  time.Second / time.Duration(fps),
		requested: true,
	}
	c.renderer = starfield.NewFrameRenderer(sim, cellFor)
	return c, nil
}

// cellFor maps opacity to a rune and a gray level.
func cellFor(tr starfield.Transform) Cell {
	op := min(max(tr.Opacity, 0), 1)
	r := runes[min(int(tr.Opacity/2*float64(len(runes))), len(runes)-1)]
	v := int32(80 + op*175)
	return Cell{
		Rune:  r,
		Style: tcell.StyleDefault.Foreground(tcell.NewRGBColor(v, v, v)),
	}
}

// Simulator returns the underlying simulator.
func (c *Console) Simulator() *starfield.Simulator {
	return c.sim
}

// Stats returns the last frame's stats.
func (c *Console) Stats() starfield.FrameStats {
	return c.stats
}

// Emit sets the screen cell under (x, y). Implements starfield.Host.
func (c *Console) Emit(cell Cell, x, y float64) {
	c.screen.SetContent(int(x), int(y), cell.Rune, nil, cell.Style)
}

// RequestNextFrame marks the console for another frame. Implements
// starfield.Host.
func (c *Console) RequestNextFrame() {
	c.requested = true
}

// Frame renders one frame at st seconds. The screen size is re-queried
// every frame and the origin follows it.
func (c *Console) Frame(st float64) starfield.FrameStats {
	w, h := c.screen.Size()
	if w != c.width || h != c.height {
		c.width, c.height = w, h
		c.sim.SetOrigin(float64(w)*0.5, float64(h)*0.5)
	}
	c.screen.Clear()
	c.requested = false
	c.stats = c.renderer.Render(st, w, h, c)
	c.screen.Show()
	return c.stats
}

// Run renders frames until ctx is done or the user presses q, Esc or
// Ctrl+C.
func (c *Console) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go c.pollEvents(done, events)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	start := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if quit := c.handleEvent(ev); quit {
				return nil
			}
		case now := <-ticker.C:
			if c.requested {
				c.Frame(now.Sub(start).Seconds())
			}
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed. events is closed when the screen stops delivering.
func (c *Console) pollEvents(done <-chan struct{}, events chan<- tcell.Event) {
	for {
		ev := c.screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent reports whether the event asks to quit.
func (c *Console) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return true
		case ev.Key() == tcell.KeyRune && ev.Rune() == '+':
			c.sim.WarpTo(c.sim.Speed()*2, 1, nil)
		case ev.Key() == tcell.KeyRune && ev.Rune() == '-':
			c.sim.WarpTo(c.sim.Speed()/2, 1, nil)
		}
	case *tcell.EventResize:
		c.screen.Sync()
	}
	return false
}
