// Package homebound implements the homebound arcade game: click to set a
// waypoint, steer the avatar into the home square, and stay clear of the
// enemies that pour in from the field edges. Clearing a level raises the
// enemy count for the next one.
package homebound

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-homebound/internal/config"
	"github.com/vovakirdan/tui-homebound/internal/core"
	"github.com/vovakirdan/tui-homebound/internal/registry"
)

// Phase is the session state machine.
type Phase int

const (
	PhaseInit    Phase = iota
	PhasePlaying       // The per-frame loop is live
	PhaseWon           // "You Win" banner; a timer advances to the next level
	PhaseLost          // Terminal until the platform restarts the run
)

// Package-level configuration hooks, set by the CLI before game creation.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	startLevel       int
)

// SetConfigPath sets a custom YAML config path for the next New().
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for the next New().
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.DifficultyPreset(preset)
}

// SetStartLevel overrides the starting level for the next New().
func SetStartLevel(level int) {
	startLevel = level
}

// Game implements the homebound session: it owns the player, home,
// waypoint, enemy collection and generator, and drives the state machine.
type Game struct {
	conf    config.HomeboundConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	sched   *core.Scheduler

	phase Phase
	level int

	fieldW, fieldH float64

	player   *Player
	home     *Home
	waypoint *Waypoint
	enemies  []Enemy
	gen      *EnemyGenerator

	banner      string
	bannerColor core.Color
	bannerTimer *core.Timer

	paused        bool
	tickCount     int
	levelsCleared int
}

// New creates a new homebound game instance, loading its YAML config and
// applying the CLI-selected preset and start level.
func New() *Game {
	conf, err := config.LoadHomebound(configPath)
	if err != nil {
		conf = config.DefaultHomeboundConfig()
	}
	config.ApplyHomeboundPreset(&conf, difficultyPreset)
	if startLevel > 0 {
		conf.Difficulty.StartLevel = startLevel
	}
	return &Game{conf: conf}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "homebound"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Homebound"
}

// Reset initializes or restarts the run at the configured starting level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.sched = core.NewScheduler()

	g.fieldW = g.conf.Field.Width
	g.fieldH = g.conf.Field.Height

	g.level = core.Max(1, g.conf.Difficulty.StartLevel)
	g.levelsCleared = 0

	g.home = &Home{
		pos:  core.Vec2{X: g.fieldW - g.conf.Home.EdgeMargin, Y: g.fieldH / 2},
		size: g.conf.Home.Size,
	}
	g.waypoint = &Waypoint{}
	g.player = &Player{game: g, speed: g.conf.Player.Speed}
	g.enemies = nil
	g.gen = NewEnemyGenerator(g, g.level)

	g.banner = ""
	g.bannerTimer = nil
	g.paused = false
	g.tickCount = 0

	g.phase = PhaseInit
	g.startLevel()
}

// Step advances the simulation by one fixed tick: clicks are applied,
// the scheduler fires due spawn/banner callbacks, then every entity
// updates. All of it happens-before the next render pass.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase == PhaseLost {
		// Terminal; the platform restarts the run via Reset.
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.phase == PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, c := range in.Clicks {
		if g.phase == PhasePlaying {
			g.waypoint.Activate(g.cellToField(c))
		}
	}

	g.tickCount++
	dt := 1.0 / float64(g.runtime.TickRate)

	g.sched.Advance(dt)

	if g.phase == PhasePlaying {
		g.player.Update(dt)
		for _, e := range g.enemies {
			if g.phase != PhasePlaying {
				// A win or loss halts the rest of the entity pass.
				break
			}
			e.Update(dt)
		}
	}

	return core.StepResult{State: g.State()}
}

// startLevel re-seeds the player at the fixed start position, clears the
// waypoint, resumes the loop and kicks the spawn chain. This is the single
// spawn trigger per level transition.
func (g *Game) startLevel() {
	g.player.pos = core.Vec2{X: g.conf.Player.StartX, Y: g.fieldH / 2}
	g.waypoint.Deactivate()
	g.phase = PhasePlaying
	g.gen.Start()
}

// winLevel halts the loop, shows the win banner and schedules the level
// transition. Guarded so a level is won at most once.
func (g *Game) winLevel() {
	if g.phase != PhasePlaying {
		return
	}
	g.phase = PhaseWon
	g.levelsCleared++
	g.gen.Stop()
	g.banner = "You Win"
	g.bannerColor = core.ColorBrightGreen
	g.bannerTimer = g.sched.After(time.Duration(g.conf.Timing.WinBannerMs)*time.Millisecond, func() {
		g.banner = ""
		g.nextLevel()
	})
}

// nextLevel advances the level (unless progression is fixed), destroys the
// previous population and restarts the loop in place.
func (g *Game) nextLevel() {
	if g.conf.Difficulty.Progression {
		g.level++
	}
	g.gen.SetLevel(g.level)
	g.clearEnemies()
	g.startLevel()
}

// loseGame halts everything for good: the spawn chain, any pending banner
// timer and the entity pass. Guarded so a run is lost at most once.
func (g *Game) loseGame() {
	if g.phase != PhasePlaying {
		return
	}
	g.phase = PhaseLost
	g.gen.Stop()
	if g.bannerTimer != nil {
		g.bannerTimer.Stop()
		g.bannerTimer = nil
	}
	g.banner = "You Lose"
	g.bannerColor = core.ColorBrightRed
}

// addEnemy appends a spawned enemy to the live collection.
func (g *Game) addEnemy(e Enemy) {
	g.enemies = append(g.enemies, e)
}

// clearEnemies destroys the current population.
func (g *Game) clearEnemies() {
	g.enemies = g.enemies[:0]
}

// randomFieldPoint returns a uniform random point inside the field.
func (g *Game) randomFieldPoint() core.Vec2 {
	return core.Vec2{X: g.rng.Float64() * g.fieldW, Y: g.rng.Float64() * g.fieldH}
}

// cellToField maps a screen cell click to field coordinates, targeting the
// center of the clicked cell.
func (g *Game) cellToField(c core.Click) core.Vec2 {
	return core.Vec2{
		X: (float64(c.X) + 0.5) * g.fieldW / float64(core.Max(1, g.runtime.ScreenW)),
		Y: (float64(c.Y) + 0.5) * g.fieldH / float64(core.Max(1, g.runtime.ScreenH)),
	}
}

// viewport scales field coordinates to screen cells for one render pass.
type viewport struct {
	sx, sy float64 // Cells per field unit
}

func newViewport(fieldW, fieldH float64, dst *core.Screen) viewport {
	return viewport{
		sx: float64(dst.Width()) / fieldW,
		sy: float64(dst.Height()) / fieldH,
	}
}

// cell maps a field position to its screen cell.
func (v viewport) cell(p core.Vec2) (int, int) {
	return int(p.X * v.sx), int(p.Y * v.sy)
}

// Render draws the current game state to the screen: home, waypoint,
// enemies, then the player on top, plus HUD and any banner.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	v := newViewport(g.fieldW, g.fieldH, dst)

	g.home.Render(dst, v)
	g.waypoint.Render(dst, v)
	for _, e := range g.enemies {
		e.Render(dst, v)
	}
	g.player.Render(dst, v)

	capacity := g.conf.Enemies.PerLevel * g.level
	hud := fmt.Sprintf(" Level %d  Enemies %d/%d ", g.level, len(g.enemies), capacity)
	dst.DrawText(2, 0, hud)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume", core.ColorBrightYellow)
	}

	switch g.phase {
	case PhaseWon:
		g.drawCenteredMessage(dst, g.banner, fmt.Sprintf("Level %d cleared", g.level), g.bannerColor)
	case PhaseLost:
		g.drawCenteredMessage(dst, g.banner,
			fmt.Sprintf("Reached level %d  |  Press R to restart", g.level), g.bannerColor)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorDefault)

	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColor(titleX, boxY+1, title, c)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.levelsCleared,
		Level:    g.level,
		GameOver: g.phase == PhaseLost,
		Paused:   g.paused,
	}
}

// colorFromName maps a config color name to a screen color.
func colorFromName(name string) core.Color {
	switch name {
	case "red":
		return core.ColorRed
	case "green":
		return core.ColorGreen
	case "blue":
		return core.ColorBlue
	case "yellow":
		return core.ColorYellow
	case "magenta":
		return core.ColorMagenta
	case "cyan":
		return core.ColorCyan
	case "white":
		return core.ColorWhite
	case "orange":
		return core.ColorOrange
	default:
		return core.ColorGray
	}
}

// Register the game with the registry
func init() {
	registry.Register("homebound", func() registry.Game {
		return New()
	})
}
