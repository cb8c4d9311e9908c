package homebound

import (
	"github.com/vovakirdan/tui-homebound/internal/core"
)

// Enemy is the shared contract for all enemy variants. Every Update
// implementation checks hitsPlayer once per frame and signals the session
// on contact; the session then halts the rest of the entity pass.
type Enemy interface {
	Update(dt float64)
	Render(dst *core.Screen, v viewport)
	Pos() core.Vec2
	Size() float64
	Color() core.Color
}

// enemyBase carries the state every enemy variant shares: a back-reference
// to the session (for player/home lookups, never lifecycle), position,
// size, color and speed.
type enemyBase struct {
	game  *Game
	pos   core.Vec2
	size  float64 // Sprite diameter in field units, > 0
	color core.Color
	speed float64 // Field units per second, > 0
}

func (e *enemyBase) Pos() core.Vec2    { return e.pos }
func (e *enemyBase) Size() float64     { return e.size }
func (e *enemyBase) Color() core.Color { return e.color }

// hitsPlayer reports contact with the player using the padded collision
// radius: size/2 plus a fixed allowance for the player sprite. Compared
// squared to skip the sqrt.
func (e *enemyBase) hitsPlayer() bool {
	r := e.size/2 + e.game.conf.Enemies.HitPadding
	return e.game.player.pos.Sub(e.pos).LenSq() <= r*r
}

// checkHit signals a loss when the enemy touches the player.
func (e *enemyBase) checkHit() {
	if e.hitsPlayer() {
		e.game.loseGame()
	}
}

// moveToward advances the enemy speed*dt along the direction to target.
// A zero-length difference contributes no movement that frame.
func (e *enemyBase) moveToward(target core.Vec2, dt float64) {
	diff := target.Sub(e.pos)
	d := diff.Len()
	if d == 0 {
		return
	}
	e.pos = e.pos.Add(diff.Scale(e.speed * dt / d))
}

// arrived is the arrival-threshold heuristic shared by the wandering
// variants: squared distance to target below dt*speed². Deliberately not a
// geometrically exact arrival test; kept as-is because retarget timing is
// part of the observable behavior.
func (e *enemyBase) arrived(target core.Vec2, dt float64) bool {
	return target.Sub(e.pos).LenSq() < dt*e.speed*e.speed
}

// Render draws the enemy as a filled block covering its bounding box,
// at least one cell.
func (e *enemyBase) Render(dst *core.Screen, v viewport) {
	x0, y0 := v.cell(core.Vec2{X: e.pos.X - e.size/2, Y: e.pos.Y - e.size/2})
	x1, y1 := v.cell(core.Vec2{X: e.pos.X + e.size/2, Y: e.pos.Y + e.size/2})
	dst.FillRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0), '█', e.color)
}

// RandomWalkEnemy wanders between random points on the field, rolling a
// new target whenever the arrival heuristic trips.
type RandomWalkEnemy struct {
	enemyBase
	target core.Vec2
}

// NewRandomWalkEnemy creates a wanderer at pos with a random first target.
func NewRandomWalkEnemy(g *Game, pos core.Vec2, size float64, color core.Color, speed float64) *RandomWalkEnemy {
	return &RandomWalkEnemy{
		enemyBase: enemyBase{game: g, pos: pos, size: size, color: color, speed: speed},
		target:    g.randomFieldPoint(),
	}
}

// Update retargets at most once per tick, then moves. The bounded retarget
// replaces the original in-frame recursion while keeping the "start moving
// toward the new target within the same tick" behavior.
func (e *RandomWalkEnemy) Update(dt float64) {
	if e.arrived(e.target, dt) {
		e.target = e.game.randomFieldPoint()
	}
	e.moveToward(e.target, dt)
	e.checkHit()
}

// ChasingEnemy always heads straight at the player's current position,
// recomputed every frame. No arrival handling: it never stops chasing.
type ChasingEnemy struct {
	enemyBase
}

// NewChasingEnemy creates a chaser at pos.
func NewChasingEnemy(g *Game, pos core.Vec2, size float64, color core.Color, speed float64) *ChasingEnemy {
	return &ChasingEnemy{
		enemyBase: enemyBase{game: g, pos: pos, size: size, color: color, speed: speed},
	}
}

// Update moves toward the player. Coinciding with the player exactly is
// the degenerate case: moveToward contributes zero movement that frame
// and the hit check ends the run.
func (e *ChasingEnemy) Update(dt float64) {
	e.moveToward(e.game.player.pos, dt)
	e.checkHit()
}

// FencingEnemy patrols the four corners of a square around the home at a
// fixed per-instance radius, advancing to the next corner on arrival in a
// fixed rotation direction.
type FencingEnemy struct {
	enemyBase
	corner    int  // Target corner index 0-3
	clockwise bool // Fixed rotation direction
	radius    float64
}

// NewFencingEnemy creates a fencer at pos patrolling at the given radius.
func NewFencingEnemy(g *Game, pos core.Vec2, size float64, color core.Color, speed float64, corner int, clockwise bool, radius float64) *FencingEnemy {
	return &FencingEnemy{
		enemyBase: enemyBase{game: g, pos: pos, size: size, color: color, speed: speed},
		corner:    ((corner % 4) + 4) % 4,
		clockwise: clockwise,
		radius:    radius,
	}
}

// targetCorner returns the field position of the current target corner.
// Corner offsets from the home center, in index order 0-3:
// (-r,-r), (+r,-r), (+r,+r), (-r,+r).
func (e *FencingEnemy) targetCorner() core.Vec2 {
	r := e.radius
	offsets := [4]core.Vec2{{X: -r, Y: -r}, {X: r, Y: -r}, {X: r, Y: r}, {X: -r, Y: r}}
	return e.game.home.pos.Add(offsets[e.corner])
}

// Update advances the corner index on arrival (same heuristic as the
// wanderer, bounded to one advance per tick), then moves.
func (e *FencingEnemy) Update(dt float64) {
	if e.arrived(e.targetCorner(), dt) {
		if e.clockwise {
			e.corner = (e.corner + 1) % 4
		} else {
			e.corner = (e.corner + 3) % 4
		}
	}
	e.moveToward(e.targetCorner(), dt)
	e.checkHit()
}

// DemoEnemy is an inert placeholder used for testing and demos.
// It never moves, never renders and never touches the player.
type DemoEnemy struct {
	enemyBase
}

// NewDemoEnemy creates an inert enemy at pos.
func NewDemoEnemy(g *Game, pos core.Vec2, size float64, color core.Color) *DemoEnemy {
	return &DemoEnemy{
		enemyBase: enemyBase{game: g, pos: pos, size: size, color: color, speed: 100},
	}
}

// Update does nothing.
func (e *DemoEnemy) Update(dt float64) {}

// Render does nothing.
func (e *DemoEnemy) Render(dst *core.Screen, v viewport) {}
