// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
//
// The simulation runs in world units (the configured screen size) and is
// advanced one fixed tick per Step. Rendering projects the world onto
// whatever terminal grid it is given and never changes simulation state.
package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Game implements the game loop state machine:
// waiting -> running -> game over, with quit possible from any phase.
type Game struct {
	cfg config.FlappyConfig
	art Art

	bird      *Bird
	pipes     *PipeManager
	score     int
	phase     core.Phase
	tickCount int // Ticks simulated in the current session

	runtime core.RuntimeConfig
	seeds   *rand.Rand            // Draws one seed per session
	newRand func(seed int64) Rand // Builds the gap RNG for a session
	view    view
}

// New creates a game with the given constants and sprites.
// Call Reset before the first Step.
func New(cfg config.FlappyConfig, art Art) *Game {
	return &Game{
		cfg:     cfg,
		art:     art.withFlipped(),
		newRand: defaultRand,
	}
}

func defaultRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pink Flappy Bird"
}

// Reset returns the game to the start prompt.
// The runtime seed makes every following session reproducible.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.seeds = rand.New(rand.NewSource(cfg.Seed))
	g.phase = core.PhaseWaiting
	g.score = 0
	g.tickCount = 0
	g.bird = nil
	g.pipes = nil
}

// startSession places the bird at its spawn point with one pipe at the
// right edge and zero score.
func (g *Game) startSession() {
	if g.seeds == nil {
		g.seeds = rand.New(rand.NewSource(g.runtime.Seed))
	}
	rng := g.newRand(g.seeds.Int63())

	g.bird = NewBird(float64(g.cfg.Player.X), float64(g.cfg.SpawnY()), &g.cfg)
	if g.pipes == nil {
		g.pipes = NewPipeManager(rng, &g.cfg)
	} else {
		g.pipes.Reset(rng)
	}
	g.score = 0
	g.tickCount = 0
	g.phase = core.PhaseRunning
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase == core.PhaseTerminated {
		return core.StepResult{State: g.State()}
	}

	// Quit ends the loop regardless of phase, before anything else moves
	if in.Has(core.ActionQuit) {
		g.phase = core.PhaseTerminated
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case core.PhaseWaiting:
		if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
			g.startSession()
		}

	case core.PhaseRunning:
		g.tick(in)

	case core.PhaseGameOver:
		if in.Has(core.ActionRestart) {
			g.startSession()
		}
	}

	return core.StepResult{State: g.State()}
}

// tick runs one simulation step: input, bird physics, spawn, scroll and
// cull with scoring, then collision.
func (g *Game) tick(in core.InputFrame) {
	g.tickCount++

	if in.Has(core.ActionJump) {
		g.bird.Flap()
	}

	g.bird.Tick()

	g.pipes.SpawnIfDue()
	g.score += g.pipes.Advance()

	if g.pipes.Collides(g.bird.Bounds()) || g.bird.Y >= float64(g.cfg.Screen.Height) {
		g.phase = core.PhaseGameOver
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.score,
		Phase: g.phase,
	}
}

// Ticks returns the number of ticks simulated in the current session.
func (g *Game) Ticks() int {
	return g.tickCount
}

// Bird returns the current bird, or nil before the first session.
func (g *Game) Bird() *Bird {
	return g.bird
}

// Pipes returns the active pipes in spawn order.
func (g *Game) Pipes() []Pipe {
	if g.pipes == nil {
		return nil
	}
	return g.pipes.Pipes()
}
