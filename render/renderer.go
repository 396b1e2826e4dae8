// Package render draws game snapshots to a terminal. It owns all
// presentation decisions: glyph choices, colors, the status bar and the
// game-over overlay. The simulation never touches a screen; the engine
// hands each new snapshot here and this package maps sector coordinates to
// terminal cells.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/nightwell/stardrift/config"
	"github.com/nightwell/stardrift/game"
)

const (
	shipGlyph    = '▲'
	droneGlyph   = '▚'
	orbGlyph     = '*'
	hullGlyph    = '+'
	boostGlyph   = '»'
	starDimGlyph = '.'
	starBigGlyph = '·'

	statusRows = 1 // top row is the status bar
)

var (
	shipStyle      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	shipBoostStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	droneStyle     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	orbStyle       = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	hullUpStyle    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	boostUpStyle   = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	statusStyle    = tcell.StyleDefault.Reverse(true)
	overStyle      = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	overHintStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Renderer draws snapshots onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	cfg    *config.Config
	width  int
	height int
}

// New creates a renderer sized to the screen's current dimensions.
func New(screen tcell.Screen, cfg *config.Config) *Renderer {
	r := &Renderer{screen: screen, cfg: cfg}
	r.width, r.height = screen.Size()
	return r
}

// Resize updates the viewport after a terminal resize. The sector keeps its
// world dimensions; only the cell mapping changes.
func (r *Renderer) Resize(w, h int) {
	r.width, r.height = w, h
}

// Render draws one complete snapshot and flips the screen.
func (r *Renderer) Render(s *game.State) {
	r.screen.Clear()

	r.drawStars(s.Stars)
	r.drawOrbs(s.Orbs)
	r.drawPowerUps(s.PowerUps)
	r.drawDrones(s.Drones)
	r.drawShip(&s.Ship)
	r.drawStatus(s)
	if s.GameOver {
		r.drawGameOver(s)
	}

	r.screen.Show()
}

// cell maps a sector position to a terminal cell inside the playfield.
func (r *Renderer) cell(x, y float64) (int, int, bool) {
	rows := r.height - statusRows
	if r.width <= 0 || rows <= 0 {
		return 0, 0, false
	}
	cx := int(x / r.cfg.SectorWidth * float64(r.width))
	cy := statusRows + int(y/r.cfg.SectorHeight*float64(rows))
	if cx < 0 || cx >= r.width || cy < statusRows || cy >= r.height {
		return 0, 0, false
	}
	return cx, cy, true
}

func (r *Renderer) drawStars(stars []game.Star) {
	for _, st := range stars {
		cx, cy, ok := r.cell(st.X, st.Y)
		if !ok {
			continue
		}
		level := int32(st.Opacity * 255)
		if level < 0 {
			level = 0
		} else if level > 255 {
			level = 255
		}
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(level, level, level))
		glyph := starDimGlyph
		if st.Radius > 2 {
			glyph = starBigGlyph
		}
		r.screen.SetContent(cx, cy, glyph, nil, style)
	}
}

func (r *Renderer) drawOrbs(orbs []game.Orb) {
	for _, o := range orbs {
		if o.Collected {
			continue
		}
		if cx, cy, ok := r.cell(o.X, o.Y); ok {
			r.screen.SetContent(cx, cy, orbGlyph, nil, orbStyle)
		}
	}
}

func (r *Renderer) drawPowerUps(ups []game.PowerUp) {
	for _, p := range ups {
		if p.Claimed {
			continue
		}
		glyph, style := hullGlyph, hullUpStyle
		if p.Kind == game.PowerSpeedBoost {
			glyph, style = boostGlyph, boostUpStyle
		}
		if cx, cy, ok := r.cell(p.X, p.Y); ok {
			r.screen.SetContent(cx, cy, glyph, nil, style)
		}
	}
}

func (r *Renderer) drawDrones(drones []game.Drone) {
	for _, d := range drones {
		if cx, cy, ok := r.cell(d.X+d.Width/2, d.Y+d.Height/2); ok {
			r.screen.SetContent(cx, cy, droneGlyph, nil, droneStyle)
		}
	}
}

func (r *Renderer) drawShip(sh *game.Ship) {
	style := shipStyle
	if sh.BoostTimer > 0 {
		style = shipBoostStyle
	}
	if cx, cy, ok := r.cell(sh.X+sh.Width/2, sh.Y+sh.Height/2); ok {
		r.screen.SetContent(cx, cy, shipGlyph, nil, style)
	}
}

func (r *Renderer) drawStatus(s *game.State) {
	// Blank the bar first so stale text never survives a resize
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, 0, ' ', nil, statusStyle)
	}

	text := fmt.Sprintf(" SCORE %d  HULL %s %.0f", s.Score, hullBar(s.Ship.Hull, r.cfg.MaxHull), s.Ship.Hull)
	if s.Ship.BoostTimer > 0 {
		text += fmt.Sprintf("  BOOST %d", s.Ship.BoostTimer)
	}
	text += fmt.Sprintf("  ORBS %d/%d", s.OrbsCollected(), len(s.Orbs))
	r.drawText(0, 0, statusStyle, text)
}

// hullBar renders hull integrity as a ten-segment gauge.
func hullBar(hull, maxHull float64) string {
	const segments = 10
	filled := int(hull / maxHull * segments)
	if filled < 0 {
		filled = 0
	} else if filled > segments {
		filled = segments
	}
	bar := make([]rune, segments)
	for i := range bar {
		if i < filled {
			bar[i] = '█'
		} else {
			bar[i] = '░'
		}
	}
	return string(bar)
}

func (r *Renderer) drawGameOver(s *game.State) {
	lines := []struct {
		text  string
		style tcell.Style
	}{
		{"G A M E   O V E R", overStyle},
		{fmt.Sprintf("final score %d", s.Score), statusStyle},
		{"press r to restart, q to quit", overHintStyle},
	}
	midY := r.height / 2
	for i, ln := range lines {
		x := (r.width - len(ln.text)) / 2
		if x < 0 {
			x = 0
		}
		r.drawText(x, midY-1+i, ln.style, ln.text)
	}
}

func (r *Renderer) drawText(x, y int, style tcell.Style, text string) {
	for _, ch := range text {
		if x >= r.width {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
