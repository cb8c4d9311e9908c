package homebound

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-homebound/internal/core"
)

func TestUpdateZeroDtLeavesPositionsUnchanged(t *testing.T) {
	g := newTestGame(t, 60)
	quiesce(g)

	walker := NewRandomWalkEnemy(g, core.Vec2{X: 100, Y: 100}, 20, core.ColorRed, 160)
	chaser := NewChasingEnemy(g, core.Vec2{X: 200, Y: 200}, 20, core.ColorGreen, 160)
	fencer := NewFencingEnemy(g, core.Vec2{X: 300, Y: 300}, 20, core.ColorBlue, 160, 0, true, 80)
	demo := NewDemoEnemy(g, core.Vec2{X: 400, Y: 400}, 20, core.ColorGray)

	enemies := []Enemy{walker, chaser, fencer, demo}
	var before []core.Vec2
	for _, e := range enemies {
		before = append(before, e.Pos())
	}

	playerBefore := g.player.pos
	g.waypoint.Activate(core.Vec2{X: 700, Y: 100})
	g.player.Update(0)
	for _, e := range enemies {
		e.Update(0)
	}

	if g.player.pos != playerBefore {
		t.Errorf("Player moved under dt=0: %v -> %v", playerBefore, g.player.pos)
	}
	for i, e := range enemies {
		if e.Pos() != before[i] {
			t.Errorf("Enemy %d moved under dt=0: %v -> %v", i, before[i], e.Pos())
		}
	}
}

func TestHitsPlayerPaddedRadius(t *testing.T) {
	g := newTestGame(t, 60)
	quiesce(g)

	g.player.pos = core.Vec2{X: 400, Y: 250}
	size := 20.0
	radius := size/2 + g.conf.Enemies.HitPadding // 19

	// Contact triggers regardless of approach angle
	for _, angle := range []float64{0, math.Pi / 3, math.Pi, 4.7} {
		offset := core.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(radius)
		e := NewDemoEnemy(g, g.player.pos.Add(offset), size, core.ColorRed)
		if !e.hitsPlayer() {
			t.Errorf("Enemy at exact padded radius (angle %f) should hit", angle)
		}

		far := NewDemoEnemy(g, g.player.pos.Add(offset.Scale(1.01)), size, core.ColorRed)
		if far.hitsPlayer() {
			t.Errorf("Enemy outside padded radius (angle %f) should not hit", angle)
		}
	}
}

func TestChasingEnemyMovesTowardPlayer(t *testing.T) {
	g := newTestGame(t, 60)
	quiesce(g)

	g.player.pos = core.Vec2{X: 400, Y: 250}
	e := NewChasingEnemy(g, core.Vec2{X: 100, Y: 250}, 20, core.ColorRed, 150)

	e.Update(1.0 / 60)

	// Moved speed*dt = 2.5 units straight toward the player
	want := core.Vec2{X: 102.5, Y: 250}
	if math.Abs(e.pos.X-want.X) > 1e-9 || math.Abs(e.pos.Y-want.Y) > 1e-9 {
		t.Errorf("Chaser position = %v, want %v", e.pos, want)
	}
}

func TestChasingEnemyCoincidentWithPlayer(t *testing.T) {
	// Exact coincidence is the degenerate case: zero movement, no NaN,
	// and the contact check still ends the run.
	g := newTestGame(t, 60)
	quiesce(g)

	e := NewChasingEnemy(g, g.player.pos, 20, core.ColorRed, 150)
	e.Update(1.0 / 60)

	if math.IsNaN(e.pos.X) || math.IsNaN(e.pos.Y) {
		t.Fatal("Coincident chaser produced NaN position")
	}
	if e.pos != g.player.pos {
		t.Errorf("Coincident chaser moved to %v", e.pos)
	}
	if g.phase != PhaseLost {
		t.Errorf("Coincident chaser should trigger the loss, phase = %d", g.phase)
	}
}

func TestRandomWalkRetargetsOnArrival(t *testing.T) {
	g := newTestGame(t, 60)
	quiesce(g)
	g.player.pos = core.Vec2{X: 790, Y: 10} // Out of collision range

	e := NewRandomWalkEnemy(g, core.Vec2{X: 100, Y: 100}, 20, core.ColorRed, 160)
	e.target = e.pos // Force the arrival heuristic to trip

	e.Update(1.0 / 60)

	if e.target == (core.Vec2{X: 100, Y: 100}) {
		t.Error("Walker should have rolled a new target on arrival")
	}
	if e.target.X < 0 || e.target.X > g.fieldW || e.target.Y < 0 || e.target.Y > g.fieldH {
		t.Errorf("New target %v outside the field", e.target)
	}

	// Retarget is bounded to once per tick: the enemy moved toward the
	// fresh target within the same update
	if e.pos == (core.Vec2{X: 100, Y: 100}) && e.target != (core.Vec2{X: 100, Y: 100}) {
		t.Error("Walker should start moving toward the new target in the same tick")
	}
}

func TestRandomWalkMakesProgress(t *testing.T) {
	g := newTestGame(t, 60)
	quiesce(g)
	g.player.pos = core.Vec2{X: 790, Y: 10}

	e := NewRandomWalkEnemy(g, core.Vec2{X: 100, Y: 100}, 20, core.ColorRed, 160)
	start := e.pos
	distBefore := core.Distance(start, e.target)

	e.Update(1.0 / 60)

	distAfter := core.Distance(e.pos, e.target)
	if distAfter >= distBefore {
		t.Errorf("Walker did not progress: %f -> %f", distBefore, distAfter)
	}
}

func TestFencingEnemyCornerOffsets(t *testing.T) {
	g := newTestGame(t, 60)
	quiesce(g)

	r := 80.0
	e := NewFencingEnemy(g, core.Vec2{X: 0, Y: 0}, 20, core.ColorBlue, 160, 0, true, r)

	wants := []core.Vec2{
		g.home.pos.Add(core.Vec2{X: -r, Y: -r}),
		g.home.pos.Add(core.Vec2{X: r, Y: -r}),
		g.home.pos.Add(core.Vec2{X: r, Y: r}),
		g.home.pos.Add(core.Vec2{X: -r, Y: r}),
	}
	for i, want := range wants {
		e.corner = i
		if got := e.targetCorner(); got != want {
			t.Errorf("Corner %d target = %v, want %v", i, got, want)
		}
	}
}

func TestFencingEnemyAdvancesCornerOnArrival(t *testing.T) {
	g := newTestGame(t, 60)
	quiesce(g)
	g.player.pos = core.Vec2{X: 50, Y: 10} // Far from the patrol square

	// Clockwise: corner 0 -> 1
	cw := NewFencingEnemy(g, core.Vec2{X: 0, Y: 0}, 20, core.ColorBlue, 160, 0, true, 80)
	cw.pos = cw.targetCorner()
	cw.Update(1.0 / 60)
	if cw.corner != 1 {
		t.Errorf("Clockwise fencer corner = %d, want 1", cw.corner)
	}

	// Counter-clockwise: corner 0 -> 3
	ccw := NewFencingEnemy(g, core.Vec2{X: 0, Y: 0}, 20, core.ColorBlue, 160, 0, false, 80)
	ccw.pos = ccw.targetCorner()
	ccw.Update(1.0 / 60)
	if ccw.corner != 3 {
		t.Errorf("Counter-clockwise fencer corner = %d, want 3", ccw.corner)
	}
}

func TestFencingEnemyKeepsRadius(t *testing.T) {
	g := newTestGame(t, 60)
	quiesce(g)
	g.player.pos = core.Vec2{X: 50, Y: 10}

	e := NewFencingEnemy(g, core.Vec2{X: 600, Y: 200}, 20, core.ColorBlue, 160, 2, true, 75)
	for i := 0; i < 600; i++ {
		e.Update(1.0 / 60)
	}

	// After plenty of patrol time the fencer is near its square: its
	// distance to home never exceeds the corner diagonal
	maxDist := 75 * math.Sqrt2
	if d := core.Distance(e.pos, g.home.pos); d > maxDist+1e-6 {
		t.Errorf("Fencer drifted %f from home, max %f", d, maxDist)
	}
}

func TestDemoEnemyIsInert(t *testing.T) {
	g := newTestGame(t, 60)
	quiesce(g)

	// Even sitting on the player, the demo enemy does nothing
	e := NewDemoEnemy(g, g.player.pos, 20, core.ColorGray)
	before := e.Pos()

	e.Update(1.0)

	if e.Pos() != before {
		t.Errorf("Demo enemy moved: %v -> %v", before, e.Pos())
	}
	if g.phase != PhasePlaying {
		t.Errorf("Demo enemy ended the run, phase = %d", g.phase)
	}

	// And renders nothing
	screen := core.NewScreen(80, 25)
	e.Render(screen, newViewport(g.fieldW, g.fieldH, screen))
	for y := 0; y < 25; y++ {
		for x := 0; x < 80; x++ {
			if screen.Get(x, y) != ' ' {
				t.Fatalf("Demo enemy drew %q at (%d,%d)", screen.Get(x, y), x, y)
			}
		}
	}
}

func TestEnemyRenderCoversBoundingBox(t *testing.T) {
	g := newTestGame(t, 60)
	quiesce(g)

	e := NewChasingEnemy(g, core.Vec2{X: 400, Y: 250}, 30, core.ColorRed, 160)
	screen := core.NewScreen(80, 25)
	e.Render(screen, newViewport(g.fieldW, g.fieldH, screen))

	cx, cy := newViewport(g.fieldW, g.fieldH, screen).cell(e.pos)
	cell := screen.GetCell(cx, cy)
	if cell.Rune != '█' {
		t.Errorf("Enemy center cell = %q, want '█'", cell.Rune)
	}
	if cell.Color != core.ColorRed {
		t.Errorf("Enemy cell color = %d, want ColorRed", cell.Color)
	}
}
