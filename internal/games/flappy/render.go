package flappy

import (
	"fmt"
	"io/fs"
	"math"

	"github.com/vovakirdan/tui-flappy/assets"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/sprite"
)

// Visual constants
const (
	ScoreX = 20 // World position of the score overlay
	ScoreY = 20

	PromptText = "Press SPACE to Start"
)

// Art holds the sprites the game draws. Any of them may be nil, in which
// case that element is skipped.
type Art struct {
	Bird       *sprite.Image
	Pipe       *sprite.Image // Top pipe, upright
	Background *sprite.Image

	pipeFlipped *sprite.Image // Bottom pipe
}

// LoadArt reads the bird, pipe and background sprites from fsys.
func LoadArt(fsys fs.FS) (Art, error) {
	var art Art
	targets := []struct {
		path string
		dst  **sprite.Image
	}{
		{assets.BirdSprite, &art.Bird},
		{assets.PipeSprite, &art.Pipe},
		{assets.BackgroundSprite, &art.Background},
	}
	for _, t := range targets {
		img, err := sprite.Load(fsys, t.path)
		if err != nil {
			return Art{}, err
		}
		*t.dst = img
	}
	return art.withFlipped(), nil
}

func (a Art) withFlipped() Art {
	if a.Pipe != nil && a.pipeFlipped == nil {
		a.pipeFlipped = sprite.FlipVertical(a.Pipe)
	}
	return a
}

// canvas projects world coordinates onto a screen and draws scaled sprites.
type canvas struct {
	dst    *core.Screen
	sx, sy float64 // Cells per world unit
	cache  map[scaleKey]*sprite.Image
}

type scaleKey struct {
	img  *sprite.Image
	w, h int
}

// view keeps the canvas between frames so scaled sprites are reused
// until the terminal size changes.
type view struct {
	c    *canvas
	w, h int
}

func (v *view) canvasFor(dst *core.Screen, worldW, worldH int) *canvas {
	if v.c == nil || v.w != dst.Width() || v.h != dst.Height() {
		v.c = &canvas{
			sx:    float64(dst.Width()) / float64(worldW),
			sy:    float64(dst.Height()) / float64(worldH),
			cache: make(map[scaleKey]*sprite.Image),
		}
		v.w, v.h = dst.Width(), dst.Height()
	}
	v.c.dst = dst
	return v.c
}

func (c *canvas) cellX(x float64) int { return int(math.Floor(x * c.sx)) }
func (c *canvas) cellY(y float64) int { return int(math.Floor(y * c.sy)) }

// Clear blanks the whole screen.
func (c *canvas) Clear() {
	c.dst.Clear()
}

// DrawSprite draws img stretched over the world rectangle r.
func (c *canvas) DrawSprite(img *sprite.Image, r core.Rect) {
	if img == nil {
		return
	}
	x0, y0 := c.cellX(float64(r.X)), c.cellY(float64(r.Y))
	x1, y1 := c.cellX(float64(r.Right())), c.cellY(float64(r.Bottom()))

	key := scaleKey{img: img, w: core.Max(x1-x0, 1), h: core.Max(y1-y0, 1)}
	scaled, ok := c.cache[key]
	if !ok {
		scaled = sprite.Scale(img, key.w, key.h)
		c.cache[key] = scaled
	}
	scaled.Draw(c.dst, x0, y0)
}

// DrawText writes unscaled text with its first cell at world (x, y).
func (c *canvas) DrawText(text string, x, y int, color core.Color) {
	c.dst.DrawText(c.cellX(float64(x)), c.cellY(float64(y)), text, color)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	c := g.view.canvasFor(dst, g.cfg.Screen.Width, g.cfg.Screen.Height)
	c.Clear()

	switch g.phase {
	case core.PhaseWaiting:
		g.drawPrompt(dst)

	case core.PhaseRunning, core.PhaseGameOver:
		g.drawWorld(c)
		if g.phase == core.PhaseGameOver {
			g.drawCenteredMessage(dst, "GAME OVER",
				fmt.Sprintf("Score: %d  |  R restart  Q quit", g.score))
		}
	}
}

// drawPrompt renders the start screen.
func (g *Game) drawPrompt(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-2, g.Title(), core.ColorPink)
	dst.DrawTextCentered(mid, PromptText, core.ColorBlue)
}

// drawWorld renders background, bird, pipes and score in that order.
func (g *Game) drawWorld(c *canvas) {
	c.DrawSprite(g.art.Background, core.NewRect(0, 0, g.cfg.Screen.Width, g.cfg.Screen.Height))
	c.DrawSprite(g.art.Bird, g.bird.Bounds())

	for _, p := range g.pipes.Pipes() {
		c.DrawSprite(g.art.Pipe, p.TopRect())
		c.DrawSprite(g.art.pipeFlipped, p.BottomRect())
	}

	c.DrawText(fmt.Sprintf("Score: %d", g.score), ScoreX, ScoreY, core.ColorBrightWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightYellow)

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightRed)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle, core.ColorWhite)
}
