package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default game configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Screen: FlappyScreen{
			Width:  500,
			Height: 700,
		},
		Physics: FlappyPhysics{
			Gravity:     0.5,
			FlapImpulse: -10,
			PipeSpeed:   3,
		},
		Obstacles: FlappyObstacles{
			PipeWidth:       70,
			PipeHeight:      400,
			GapHeight:       200,
			SpawnThreshold:  200,
			GapMinY:         150,
			GapBottomMargin: 250,
		},
		Player: FlappyPlayer{
			X:      100,
			Y:      0,
			Width:  50,
			Height: 40,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
