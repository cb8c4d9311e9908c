package homebound

import (
	"time"

	"github.com/vovakirdan/tui-homebound/internal/core"
)

// EnemyGenerator creates enemies on a self-rescheduling timer chain,
// decoupled from the per-frame update pass but running on the same
// single-threaded scheduler. The chain halts itself once the level's
// capacity is reached and is restarted explicitly on each new level.
type EnemyGenerator struct {
	game    *Game
	level   int
	pending *core.Timer // Next scheduled spawn, nil when the chain is idle
}

// NewEnemyGenerator creates a generator for the given level.
func NewEnemyGenerator(g *Game, level int) *EnemyGenerator {
	return &EnemyGenerator{game: g, level: level}
}

// Level returns the generator's current level.
func (gen *EnemyGenerator) Level() int {
	return gen.level
}

// SetLevel updates the level, scaling capacity for subsequent spawns.
func (gen *EnemyGenerator) SetLevel(level int) {
	gen.level = level
}

// Start kicks off the spawn chain, canceling any stale chain first so a
// level transition never leaves ghost spawns behind.
func (gen *EnemyGenerator) Start() {
	gen.Stop()
	gen.spawnNext()
}

// Stop cancels the pending spawn, if any. Safe to call at any time.
func (gen *EnemyGenerator) Stop() {
	if gen.pending != nil {
		gen.pending.Stop()
		gen.pending = nil
	}
}

// spawnNext creates one enemy and reschedules itself. At capacity it
// simply returns without rescheduling, terminating the chain; calling it
// again past capacity stays a no-op.
func (gen *EnemyGenerator) spawnNext() {
	gen.pending = nil

	capacity := gen.game.conf.Enemies.PerLevel * gen.level
	if len(gen.game.enemies) >= capacity {
		return
	}

	// Front-loaded when capacity is large: the whole level's population
	// arrives within the spawn window.
	delay := time.Duration(gen.game.conf.Enemies.SpawnWindowMs/capacity) * time.Millisecond

	gen.game.addEnemy(gen.newEnemy())
	gen.pending = gen.game.sched.After(delay, gen.spawnNext)
}

// newEnemy rolls a random enemy from the spawn table: uniform strategy,
// size and color, jittered speed, entering from a screen edge.
func (gen *EnemyGenerator) newEnemy() Enemy {
	g := gen.game
	ec := g.conf.Enemies

	pos := gen.spawnPos()
	size := ec.Sizes[g.rng.Intn(len(ec.Sizes))]
	color := colorFromName(ec.Colors[g.rng.Intn(len(ec.Colors))])
	speed := ec.BaseSpeed + g.rng.Float64()*ec.SpeedJitter

	switch g.rng.Intn(3) {
	case 0:
		return NewRandomWalkEnemy(g, pos, size, color, speed)
	case 1:
		return NewChasingEnemy(g, pos, size, color, speed)
	default:
		corner := g.rng.Intn(4)
		clockwise := g.rng.Intn(2) == 0
		radius := ec.FenceRadius.Min + g.rng.Float64()*(ec.FenceRadius.Max-ec.FenceRadius.Min)
		return NewFencingEnemy(g, pos, size, color, speed, corner, clockwise, radius)
	}
}

// spawnPos picks a uniform point on a uniformly chosen field edge, so
// enemies always enter from the boundary, never inside the play field.
func (gen *EnemyGenerator) spawnPos() core.Vec2 {
	g := gen.game
	if g.rng.Intn(2) == 0 {
		x := float64(g.rng.Intn(2)) * g.fieldW
		return core.Vec2{X: x, Y: g.rng.Float64() * g.fieldH}
	}
	y := float64(g.rng.Intn(2)) * g.fieldH
	return core.Vec2{X: g.rng.Float64() * g.fieldW, Y: y}
}
