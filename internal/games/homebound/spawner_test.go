package homebound

import (
	"testing"

	"github.com/vovakirdan/tui-homebound/internal/config"
	"github.com/vovakirdan/tui-homebound/internal/core"
)

// advanceSched drives the spawn chain's timer queue directly, without
// running the entity pass, so spawn tests stay independent of collisions.
func advanceSched(g *Game, ticks int) {
	dt := 1.0 / float64(g.runtime.TickRate)
	for i := 0; i < ticks; i++ {
		g.sched.Advance(dt)
	}
}

func TestSpawnerRespectsCapacity(t *testing.T) {
	// Level 1, capacity 3: the chain spawns 3 enemies inside the 3000ms
	// window and then stops scheduling.
	g := newTestGame(t, 60)

	for i := 0; i < 240; i++ { // 4 seconds
		advanceSched(g, 1)
		if len(g.enemies) > 3 {
			t.Fatalf("Enemy count %d exceeded capacity 3 at tick %d", len(g.enemies), i)
		}
	}

	if len(g.enemies) != 3 {
		t.Errorf("Enemy count = %d, want 3", len(g.enemies))
	}
	if g.gen.pending != nil {
		t.Error("Chain should not schedule a 4th spawn at capacity")
	}
}

func TestSpawnerNoOpPastCapacity(t *testing.T) {
	g := newTestGame(t, 60)
	quiesce(g)

	for i := 0; i < 3; i++ {
		g.addEnemy(NewDemoEnemy(g, core.Vec2{X: 10, Y: 10}, 20, core.ColorGray))
	}

	// An invocation at capacity is a no-op, not an error
	g.gen.spawnNext()

	if len(g.enemies) != 3 {
		t.Errorf("Enemy count = %d, want 3", len(g.enemies))
	}
	if g.gen.pending != nil {
		t.Error("No-op spawn must not reschedule")
	}
}

func TestSpawnerDelayScalesWithCapacity(t *testing.T) {
	// Level 2, capacity 6, delay 3000/6 = 500ms: the whole population
	// arrives within the spawn window.
	g := &Game{conf: config.DefaultHomeboundConfig()}
	g.conf.Difficulty.StartLevel = 2
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 9})

	advanceSched(g, 185) // just over 3 seconds

	if len(g.enemies) != 6 {
		t.Errorf("Enemy count after the spawn window = %d, want 6", len(g.enemies))
	}
}

func TestSpawnerEnemiesEnterFromEdges(t *testing.T) {
	g := newTestGame(t, 60)

	for i := 0; i < 100; i++ {
		p := g.gen.spawnPos()
		onVertical := p.X == 0 || p.X == g.fieldW
		onHorizontal := p.Y == 0 || p.Y == g.fieldH
		if !onVertical && !onHorizontal {
			t.Fatalf("Spawn position %v is not on a field edge", p)
		}
		if p.X < 0 || p.X > g.fieldW || p.Y < 0 || p.Y > g.fieldH {
			t.Fatalf("Spawn position %v outside the field", p)
		}
	}
}

func TestSpawnerRollsFromSpawnTable(t *testing.T) {
	g := newTestGame(t, 60)

	sizes := map[float64]bool{15: true, 20: true, 30: true}
	colors := map[core.Color]bool{core.ColorRed: true, core.ColorGreen: true, core.ColorBlue: true}

	kinds := make(map[string]int)
	for i := 0; i < 200; i++ {
		e := g.gen.newEnemy()

		if !sizes[e.Size()] {
			t.Fatalf("Enemy size %f not in the spawn table", e.Size())
		}
		if !colors[e.Color()] {
			t.Fatalf("Enemy color %d not in the spawn table", e.Color())
		}

		switch v := e.(type) {
		case *RandomWalkEnemy:
			kinds["walk"]++
		case *ChasingEnemy:
			kinds["chase"]++
		case *FencingEnemy:
			kinds["fence"]++
			if v.radius < 60 || v.radius > 100 {
				t.Fatalf("Fencer radius %f outside [60, 100]", v.radius)
			}
		default:
			t.Fatalf("Unexpected enemy type %T", e)
		}
	}

	// All three active strategies show up over 200 rolls
	for _, k := range []string{"walk", "chase", "fence"} {
		if kinds[k] == 0 {
			t.Errorf("Strategy %q never spawned in 200 rolls", k)
		}
	}
}

func TestSpawnerSpeedRange(t *testing.T) {
	g := newTestGame(t, 60)

	for i := 0; i < 100; i++ {
		var speed float64
		switch v := g.gen.newEnemy().(type) {
		case *RandomWalkEnemy:
			speed = v.speed
		case *ChasingEnemy:
			speed = v.speed
		case *FencingEnemy:
			speed = v.speed
		}
		if speed < 150 || speed >= 180 {
			t.Errorf("Enemy speed %f outside [150, 180)", speed)
		}
	}
}

func TestStopCancelsPendingSpawn(t *testing.T) {
	g := newTestGame(t, 60)

	// One enemy spawned at Reset, the next is pending
	if g.gen.pending == nil {
		t.Fatal("Expected a pending spawn right after Reset")
	}

	g.gen.Stop()
	count := len(g.enemies)

	advanceSched(g, 240)

	if len(g.enemies) != count {
		t.Errorf("Enemies spawned after Stop: %d -> %d", count, len(g.enemies))
	}
}

func TestNewLevelClearsBeforeFirstSpawn(t *testing.T) {
	g := newTestGame(t, 60)
	quiesce(g)

	// Fill level 1 to capacity with markers we can recognize
	for i := 0; i < 3; i++ {
		g.addEnemy(NewDemoEnemy(g, core.Vec2{X: 10, Y: 10}, 20, core.ColorGray))
	}

	g.nextLevel()

	// The old population is gone; exactly the first fresh spawn remains
	if len(g.enemies) != 1 {
		t.Fatalf("Enemies right after level transition = %d, want 1", len(g.enemies))
	}
	if _, ok := g.enemies[0].(*DemoEnemy); ok {
		t.Error("Stale enemy survived the level transition")
	}
	if g.level != 2 {
		t.Errorf("Level = %d, want 2", g.level)
	}
}
