package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Rand is the source of randomness for gap placement.
// *math/rand.Rand satisfies it; tests can supply fixed sequences.
type Rand interface {
	Intn(n int) int
}

// Pipe represents a vertical obstacle with a gap for the bird to pass through.
// The top and bottom sections are each one pipe sprite tall.
type Pipe struct {
	X         int // Horizontal position (left edge), shared by both sections
	GapY      int // Y position where the gap starts (bottom edge of the top section)
	Width     int
	Height    int // Height of each section
	GapHeight int
}

// NewPipe creates a pipe at x with a gap drawn uniformly from the configured range.
func NewPipe(x int, rng Rand, cfg *config.FlappyConfig) Pipe {
	lo, hi := cfg.GapRange()
	return newPipeAt(x, lo+rng.Intn(hi-lo+1), cfg)
}

func newPipeAt(x, gapY int, cfg *config.FlappyConfig) Pipe {
	return Pipe{
		X:         x,
		GapY:      gapY,
		Width:     cfg.Obstacles.PipeWidth,
		Height:    cfg.Obstacles.PipeHeight,
		GapHeight: cfg.Obstacles.GapHeight,
	}
}

// Tick scrolls the pipe left by speed.
func (p *Pipe) Tick(speed int) {
	p.X -= speed
}

// TopRect returns the collision rectangle for the top section.
func (p Pipe) TopRect() core.Rect {
	return core.NewRect(p.X, p.GapY-p.Height, p.Width, p.Height)
}

// BottomRect returns the collision rectangle for the bottom section.
func (p Pipe) BottomRect() core.Rect {
	return core.NewRect(p.X, p.GapY+p.GapHeight, p.Width, p.Height)
}

// OffScreen reports whether the pipe has scrolled past the left edge.
func (p Pipe) OffScreen() bool {
	return p.X < -p.Width
}
