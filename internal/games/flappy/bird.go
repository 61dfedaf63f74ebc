package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Bird is the player-controlled sprite. Its position is the top-left corner
// of its hitbox in world units; positive velocity points down.
type Bird struct {
	X, Y float64
	VelY float64

	width       int
	height      int
	gravity     float64
	flapImpulse float64
}

// NewBird creates a bird at rest at (x, y).
func NewBird(x, y float64, cfg *config.FlappyConfig) *Bird {
	return &Bird{
		X:           x,
		Y:           y,
		width:       cfg.Player.Width,
		height:      cfg.Player.Height,
		gravity:     cfg.Physics.Gravity,
		flapImpulse: cfg.Physics.FlapImpulse,
	}
}

// Flap replaces the current velocity with the upward impulse.
func (b *Bird) Flap() {
	b.VelY = b.flapImpulse
}

// Tick applies one step of gravity, then moves by the new velocity.
func (b *Bird) Tick() {
	b.VelY += b.gravity
	b.Y += b.VelY
}

// Bounds returns the bird's collision rectangle.
func (b *Bird) Bounds() core.Rect {
	return core.NewRect(int(math.Floor(b.X)), int(math.Floor(b.Y)), b.width, b.height)
}
