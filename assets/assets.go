// Package assets embeds the default sprite set.
package assets

import "embed"

// Sprites holds the built-in sprite files under sprites/.
//
//go:embed sprites/*.yaml
var Sprites embed.FS

// Sprite file names, relative to the sprite root.
const (
	BirdSprite       = "sprites/bird.yaml"
	PipeSprite       = "sprites/pipe.yaml"
	BackgroundSprite = "sprites/background.yaml"
)
