package sprite

import "github.com/vovakirdan/tui-flappy/internal/core"

// Scale resizes img to w×h cells using nearest-neighbour sampling.
// Sizes below one cell are raised to one so a scaled sprite never vanishes.
func Scale(img *Image, w, h int) *Image {
	w, h = core.Max(w, 1), core.Max(h, 1)
	out := New(w, h)
	if img.w == 0 || img.h == 0 {
		return out
	}
	for y := 0; y < h; y++ {
		sy := y * img.h / h
		for x := 0; x < w; x++ {
			sx := x * img.w / w
			out.cells[y*w+x] = img.cells[sy*img.w+sx]
		}
	}
	return out
}

// mirrored maps glyphs to their upside-down counterparts.
var mirrored = map[rune]rune{
	'▀': '▄', '▄': '▀',
	'▔': '▁', '▁': '▔',
	'▲': '▼', '▼': '▲',
	'▴': '▾', '▾': '▴',
	'┌': '└', '└': '┌',
	'┐': '┘', '┘': '┐',
	'╔': '╚', '╚': '╔',
	'╗': '╝', '╝': '╗',
	'┬': '┴', '┴': '┬',
	'╦': '╩', '╩': '╦',
	'▘': '▖', '▖': '▘',
	'▝': '▗', '▗': '▝',
	'^': 'v', 'v': '^',
	'/': '\\', '\\': '/',
}

// FlipVertical returns a copy of img mirrored top to bottom.
// Half-block and box-drawing glyphs are swapped for their mirrored forms.
func FlipVertical(img *Image) *Image {
	out := New(img.w, img.h)
	for y := 0; y < img.h; y++ {
		for x := 0; x < img.w; x++ {
			c := img.cells[y*img.w+x]
			if m, ok := mirrored[c.Rune]; ok {
				c.Rune = m
			}
			out.cells[(img.h-1-y)*img.w+x] = c
		}
	}
	return out
}
