package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// PipeManager handles spawning, movement, and removal of pipes.
// Pipes are kept in spawn order, which is also left-to-right screen order.
type PipeManager struct {
	pipes   []Pipe
	rng     Rand
	cfg     *config.FlappyConfig
	spawned int // Pipes created since the last Reset
}

// NewPipeManager creates a pipe manager holding a single pipe at the right edge.
func NewPipeManager(rng Rand, cfg *config.FlappyConfig) *PipeManager {
	pm := &PipeManager{
		pipes: make([]Pipe, 0, 8),
		cfg:   cfg,
	}
	pm.Reset(rng)
	return pm
}

// Reset clears all pipes, swaps in a new RNG and spawns the first pipe.
func (pm *PipeManager) Reset(rng Rand) {
	pm.pipes = pm.pipes[:0]
	pm.rng = rng
	pm.spawned = 0
	pm.spawn()
}

// SpawnIfDue appends a pipe at the right edge once the newest pipe has
// scrolled spawn_threshold units in. Spacing is distance-based, so it does
// not depend on the frame rate. Reports whether a pipe was spawned.
func (pm *PipeManager) SpawnIfDue() bool {
	if len(pm.pipes) > 0 {
		last := pm.pipes[len(pm.pipes)-1]
		if last.X >= pm.cfg.Screen.Width-pm.cfg.Obstacles.SpawnThreshold {
			return false
		}
	}
	pm.spawn()
	return true
}

func (pm *PipeManager) spawn() {
	pm.pipes = append(pm.pipes, NewPipe(pm.cfg.Screen.Width, pm.rng, pm.cfg))
	pm.spawned++
}

// Advance moves every pipe one tick and drops the ones that left the screen.
// Returns the number of pipes dropped; each one is a cleared obstacle.
func (pm *PipeManager) Advance() int {
	speed := pm.cfg.Physics.PipeSpeed
	cleared := 0

	kept := pm.pipes[:0]
	for _, p := range pm.pipes {
		p.Tick(speed)
		if p.OffScreen() {
			cleared++
			continue
		}
		kept = append(kept, p)
	}
	pm.pipes = kept

	return cleared
}

// Collides tests if the given rectangle overlaps any pipe section.
func (pm *PipeManager) Collides(r core.Rect) bool {
	for _, p := range pm.pipes {
		if r.Intersects(p.TopRect()) || r.Intersects(p.BottomRect()) {
			return true
		}
	}
	return false
}

// Pipes returns the active pipes in spawn order.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}

// Spawned returns how many pipes were created since the last Reset.
func (pm *PipeManager) Spawned() int {
	return pm.spawned
}
