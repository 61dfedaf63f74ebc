// Package config provides YAML-based game configuration loading for the
// flappy game. All values are in world units (the playfield's pixel grid),
// independent of the terminal size the game is drawn on.
package config

import (
	"errors"
	"fmt"
)

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	Screen    FlappyScreen    `yaml:"screen"`
	Physics   FlappyPhysics   `yaml:"physics"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
	Player    FlappyPlayer    `yaml:"player"`
}

// FlappyScreen defines the size of the simulated playfield.
type FlappyScreen struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"` // Also the ground line
}

// FlappyPhysics defines physics parameters, applied once per tick.
type FlappyPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	FlapImpulse float64 `yaml:"flap_impulse"` // Negative = up
	PipeSpeed   int     `yaml:"pipe_speed"`
}

// FlappyObstacles defines pipe sprite dimensions and spawning parameters.
type FlappyObstacles struct {
	PipeWidth       int `yaml:"pipe_width"`
	PipeHeight      int `yaml:"pipe_height"`
	GapHeight       int `yaml:"gap_height"`
	SpawnThreshold  int `yaml:"spawn_threshold"`   // Distance from the right edge before the next pipe spawns
	GapMinY         int `yaml:"gap_min_y"`         // Smallest gap_y
	GapBottomMargin int `yaml:"gap_bottom_margin"` // Largest gap_y is height minus this
}

// FlappyPlayer defines the bird's spawn point and hitbox.
type FlappyPlayer struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"` // 0 = vertical center of the screen
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GapRange returns the inclusive range gap_y is drawn from.
func (c FlappyConfig) GapRange() (lo, hi int) {
	return c.Obstacles.GapMinY, c.Screen.Height - c.Obstacles.GapBottomMargin
}

// SpawnY returns the bird's starting vertical position.
func (c FlappyConfig) SpawnY() int {
	if c.Player.Y == 0 {
		return c.Screen.Height / 2
	}
	return c.Player.Y
}

// Validate checks that the configuration describes a playable game.
func (c FlappyConfig) Validate() error {
	var errs []error

	positive := []struct {
		name  string
		value int
	}{
		{"screen.width", c.Screen.Width},
		{"screen.height", c.Screen.Height},
		{"physics.pipe_speed", c.Physics.PipeSpeed},
		{"obstacles.pipe_width", c.Obstacles.PipeWidth},
		{"obstacles.pipe_height", c.Obstacles.PipeHeight},
		{"obstacles.gap_height", c.Obstacles.GapHeight},
		{"obstacles.spawn_threshold", c.Obstacles.SpawnThreshold},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
	}
	for _, p := range positive {
		if p.value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", p.name, p.value))
		}
	}

	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must be positive, got %g", c.Physics.Gravity))
	}
	if c.Physics.FlapImpulse >= 0 {
		errs = append(errs, fmt.Errorf("physics.flap_impulse must be negative, got %g", c.Physics.FlapImpulse))
	}

	if lo, hi := c.GapRange(); lo > hi {
		errs = append(errs, fmt.Errorf("gap range [%d, %d] is empty", lo, hi))
	}

	if c.Obstacles.SpawnThreshold >= c.Screen.Width && c.Screen.Width > 0 {
		errs = append(errs, fmt.Errorf("obstacles.spawn_threshold %d must be below screen.width %d",
			c.Obstacles.SpawnThreshold, c.Screen.Width))
	}

	if y := c.SpawnY(); y < 0 || y >= c.Screen.Height {
		errs = append(errs, fmt.Errorf("player.y %d is outside the screen", y))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
