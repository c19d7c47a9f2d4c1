package shooter

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/geo-shooter/internal/core"
	"github.com/vovakirdan/geo-shooter/internal/geometry"
)

// Render draws the current state into the screen buffer. The renderer is a
// read-only consumer: it runs after the tick completes and never mutates
// simulation state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.state {
	case StateMenu:
		g.drawMenu(dst)
		return
	case StatePlaying, StatePaused, StateGameOver:
		g.drawWorld(dst)
		g.drawHUD(dst)
	}

	if g.state == StatePaused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.state == StateGameOver {
		title := "GAME OVER"
		if g.cause == CauseBossDefeated {
			title = "VICTORY"
		}
		g.drawCenteredMessage(dst, title,
			fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

func (g *Game) drawWorld(dst *core.Screen) {
	g.reg.ForEach(func(e *Entity) {
		if !e.Alive {
			return
		}
		// Invincibility blink: hide the player every other stretch of ticks.
		if e.Category == CategoryPlayer && g.invincible > 0 &&
			int(g.invincible*10)%2 == 1 {
			return
		}
		g.drawBlueprint(dst, e)
	})
}

// drawBlueprint rasterizes every shape of the entity's blueprint in order,
// so later shapes paint over earlier ones.
func (g *Game) drawBlueprint(dst *core.Screen, e *Entity) {
	tr := e.Transform()
	for _, s := range e.Blueprint.Shapes {
		color := core.FromRGB(s.Color.R, s.Color.G, s.Color.B)
		switch s.Kind {
		case geometry.ShapePolygon:
			g.drawPolygon(dst, s.Vertices, tr, color)
		case geometry.ShapeCircle:
			g.drawCircle(dst, tr.Apply(s.Center), s.Radius*tr.Scale, s.Fill, color)
		case geometry.ShapeArc:
			g.drawArc(dst, tr.Apply(s.Center), s.Radius*tr.Scale, s.StartAngle+tr.Rotation, s.EndAngle+tr.Rotation, color)
		case geometry.ShapeLine:
			ax, ay := g.toScreen(tr.Apply(s.Start))
			bx, by := g.toScreen(tr.Apply(s.End))
			g.drawLine(dst, ax, ay, bx, by, '·', color)
		}
	}
}

func (g *Game) drawPolygon(dst *core.Screen, verts []geometry.Vec2, tr geometry.Transform, color core.Color) {
	n := len(verts)
	for i := 0; i < n; i++ {
		ax, ay := g.toScreen(tr.Apply(verts[i]))
		bx, by := g.toScreen(tr.Apply(verts[(i+1)%n]))
		g.drawLine(dst, ax, ay, bx, by, '█', color)
	}
}

func (g *Game) drawCircle(dst *core.Screen, center geometry.Vec2, radius float64, fill bool, color core.Color) {
	cx, cy := g.toScreen(center)

	// Small circles collapse to a single glyph at terminal resolution.
	rx := int(radius * float64(dst.Width()) / g.game.World.Width)
	ry := int(radius * float64(dst.Height()) / g.game.World.Height)
	if rx < 1 && ry < 1 {
		dst.SetCell(cx, cy, '●', color)
		return
	}

	steps := 4 * (rx + ry + 2)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		dst.SetCell(cx+int(float64(rx)*math.Cos(a)), cy+int(float64(ry)*math.Sin(a)), 'o', color)
	}
	if fill {
		for dy := -ry + 1; dy < ry; dy++ {
			for dx := -rx + 1; dx < rx; dx++ {
				fx := float64(dx) / math.Max(float64(rx), 1)
				fy := float64(dy) / math.Max(float64(ry), 1)
				if fx*fx+fy*fy < 1 {
					dst.SetCell(cx+dx, cy+dy, '█', color)
				}
			}
		}
	}
}

func (g *Game) drawArc(dst *core.Screen, center geometry.Vec2, radius, start, end float64, color core.Color) {
	rx := int(radius * float64(dst.Width()) / g.game.World.Width)
	ry := int(radius * float64(dst.Height()) / g.game.World.Height)
	cx, cy := g.toScreen(center)

	steps := 2 * (rx + ry + 4)
	for i := 0; i <= steps; i++ {
		a := start + (end-start)*float64(i)/float64(steps)
		// World y-up flips to screen y-down.
		dst.SetCell(cx+int(float64(rx)*math.Cos(a)), cy-int(float64(ry)*math.Sin(a)), '∙', color)
	}
}

// drawLine is a Bresenham walk between two screen cells.
func (g *Game) drawLine(dst *core.Screen, x0, y0, x1, y1 int, ch rune, color core.Color) {
	dx := core.Abs(x1 - x0)
	dy := -core.Abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		dst.SetCell(x0, y0, ch, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// toScreen maps world coordinates (origin centered, y-up) to screen cells
// (origin top-left, y-down).
func (g *Game) toScreen(p geometry.Vec2) (int, int) {
	x := (p.X + g.game.World.Width/2) * float64(g.cfg.ScreenW) / g.game.World.Width
	y := (g.game.World.Height/2 - p.Y) * float64(g.cfg.ScreenH) / g.game.World.Height
	return int(x), int(y)
}

func (g *Game) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Score: %d  Coins: %d  Lives: %d ", g.score, g.coins, g.lives)
	dst.DrawTextColored(2, 0, hud, core.ColorBrightWhite)
	if g.shieldActive() {
		if sh, ok := g.reg.Get(g.shield); ok {
			dst.DrawTextColored(2, 1, fmt.Sprintf(" Shield: %d ", sh.Charges), core.ColorBrightCyan)
		}
	}
	if b, ok := g.reg.Get(g.boss); ok && b.Alive && b.MaxHealth > 0 {
		const width = 20
		filled := core.Clamp(b.Health*width/b.MaxHealth, 0, width)
		bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
		dst.DrawTextCentered(1, " BOSS "+bar+" ")
	}
}

func (g *Game) drawMenu(dst *core.Screen) {
	dst.DrawTextCentered(dst.Height()/2-3, "GEOMETRY SHOOTER")
	dst.DrawTextCentered(dst.Height()/2-1, "Arrows/WASD move, Space fires")
	dst.DrawTextCentered(dst.Height()/2+1, "Press Enter to start")
	if g.coins > 0 {
		dst.DrawTextCentered(dst.Height()/2+3, fmt.Sprintf("Coins: %d", g.coins))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
