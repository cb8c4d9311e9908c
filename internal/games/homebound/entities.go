package homebound

import (
	"github.com/vovakirdan/tui-homebound/internal/core"
)

// Player is the avatar the user steers by clicking waypoints.
// Heading is re-derived every frame from the current position toward the
// active waypoint; there is no momentum.
type Player struct {
	game  *Game
	pos   core.Vec2
	speed float64 // Field units per second, > 0
}

// Pos returns the player's current field position.
func (p *Player) Pos() core.Vec2 {
	return p.pos
}

// Update advances the player by dt seconds.
// Arriving home wins the level and suppresses movement for the frame.
// The full step is always taken along the current heading; when the
// pre-move distance fits inside the step the waypoint is cleared so the
// player does not oscillate around it on later frames.
func (p *Player) Update(dt float64) {
	if p.game.home.Contains(p.pos) {
		p.game.winLevel()
		return
	}

	wp := p.game.waypoint
	if !wp.active {
		return
	}

	dist := core.Distance(p.pos, wp.pos)
	step := p.speed * dt
	p.pos = p.pos.Add(core.Direction(p.pos, wp.pos).Scale(step))
	if dist <= step {
		wp.Deactivate()
	}
}

// Render draws the player on top of everything else.
func (p *Player) Render(dst *core.Screen, v viewport) {
	x, y := v.cell(p.pos)
	dst.SetCell(x, y, '@', core.ColorBrightGreen)
}

// Home is the fixed square region the player must reach.
type Home struct {
	pos  core.Vec2
	size float64 // Full side length, > 0
}

// Contains reports whether p is inside the home square, edges inclusive.
func (h *Home) Contains(p core.Vec2) bool {
	return core.NewSquare(h.pos, h.size).Contains(p)
}

// Pos returns the center of the home square.
func (h *Home) Pos() core.Vec2 {
	return h.pos
}

// Render draws the home square outline, or a single marker when the
// square maps to less than a 2x2 cell area.
func (h *Home) Render(dst *core.Screen, v viewport) {
	x0, y0 := v.cell(core.Vec2{X: h.pos.X - h.size/2, Y: h.pos.Y - h.size/2})
	x1, y1 := v.cell(core.Vec2{X: h.pos.X + h.size/2, Y: h.pos.Y + h.size/2})
	w, h2 := x1-x0+1, y1-y0+1
	if w >= 2 && h2 >= 2 {
		dst.DrawBox(x0, y0, w, h2, core.ColorYellow)
		return
	}
	x, y := v.cell(h.pos)
	dst.SetCell(x, y, '⌂', core.ColorYellow)
}

// Waypoint is the click-designated movement target.
// Its position is only meaningful while active.
type Waypoint struct {
	pos    core.Vec2
	active bool
}

// Activate places the waypoint at p and shows its marker.
func (w *Waypoint) Activate(p core.Vec2) {
	w.active = true
	w.pos = p
}

// Deactivate clears the waypoint; its marker disappears.
func (w *Waypoint) Deactivate() {
	w.active = false
}

// Active reports whether the waypoint is set.
func (w *Waypoint) Active() bool {
	return w.active
}

// Pos returns the waypoint position. Only meaningful while Active.
func (w *Waypoint) Pos() core.Vec2 {
	return w.pos
}

// Render draws the marker only while active; hiding is simply not drawing.
func (w *Waypoint) Render(dst *core.Screen, v viewport) {
	if !w.active {
		return
	}
	x, y := v.cell(w.pos)
	dst.SetCell(x, y, '✕', core.ColorGreen)
}
