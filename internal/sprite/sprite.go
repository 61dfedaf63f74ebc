// Package sprite loads and transforms the rune-art images the game draws.
//
// A sprite file is YAML:
//
//	color: pink        # default color for every cell
//	palette:           # optional per-rune color overrides
//	  "▶": orange
//	rows:
//	  - " ▄██▄ "
//	  - "▀████▶"
//
// Space cells are transparent when drawn.
package sprite

import (
	"errors"
	"fmt"
	"io/fs"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Transparent is the rune that is skipped when a sprite is drawn.
const Transparent = ' '

// Image is a rectangular grid of colored cells.
type Image struct {
	w, h  int
	cells []core.Cell // Row-major
}

// New creates a transparent image of the given size.
func New(w, h int) *Image {
	w, h = core.Max(w, 0), core.Max(h, 0)
	img := &Image{w: w, h: h, cells: make([]core.Cell, w*h)}
	for i := range img.cells {
		img.cells[i] = core.Cell{Rune: Transparent}
	}
	return img
}

// FromRows builds an image from text rows in a single color.
// Short rows are padded with transparent cells.
func FromRows(rows []string, color core.Color) *Image {
	w := 0
	for _, r := range rows {
		w = core.Max(w, utf8.RuneCountInString(r))
	}
	img := New(w, len(rows))
	for y, row := range rows {
		x := 0
		for _, r := range row {
			img.Set(x, y, core.Cell{Rune: r, Color: color})
			x++
		}
	}
	return img
}

// Width returns the image width in cells.
func (img *Image) Width() int { return img.w }

// Height returns the image height in cells.
func (img *Image) Height() int { return img.h }

// At returns the cell at (x, y), or a transparent cell when out of bounds.
func (img *Image) At(x, y int) core.Cell {
	if x < 0 || x >= img.w || y < 0 || y >= img.h {
		return core.Cell{Rune: Transparent}
	}
	return img.cells[y*img.w+x]
}

// Set stores a cell at (x, y). Out-of-bounds writes are ignored.
func (img *Image) Set(x, y int, c core.Cell) {
	if x < 0 || x >= img.w || y < 0 || y >= img.h {
		return
	}
	img.cells[y*img.w+x] = c
}

// Draw blits the image onto dst with its top-left corner at (x, y),
// skipping transparent cells.
func (img *Image) Draw(dst *core.Screen, x, y int) {
	for sy := 0; sy < img.h; sy++ {
		for sx := 0; sx < img.w; sx++ {
			c := img.cells[sy*img.w+sx]
			if c.Rune == Transparent {
				continue
			}
			dst.SetCell(x+sx, y+sy, c)
		}
	}
}

// file is the on-disk sprite format.
type file struct {
	Color   string            `yaml:"color"`
	Palette map[string]string `yaml:"palette"`
	Rows    []string          `yaml:"rows"`
}

// ErrEmpty is returned when a sprite file has no visible cells.
var ErrEmpty = errors.New("sprite has no rows")

// Load reads a sprite file from fsys.
func Load(fsys fs.FS, path string) (*Image, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("sprite: load %s: %w", path, err)
	}
	img, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("sprite: load %s: %w", path, err)
	}
	return img, nil
}

// Parse decodes a sprite from YAML.
func Parse(data []byte) (*Image, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if len(f.Rows) == 0 {
		return nil, ErrEmpty
	}

	base, ok := core.ParseColor(f.Color)
	if !ok {
		return nil, fmt.Errorf("unknown color %q", f.Color)
	}

	palette := make(map[rune]core.Color, len(f.Palette))
	for key, name := range f.Palette {
		r, size := utf8.DecodeRuneInString(key)
		if size == 0 || size != len(key) {
			return nil, fmt.Errorf("palette key %q must be a single rune", key)
		}
		c, ok := core.ParseColor(name)
		if !ok {
			return nil, fmt.Errorf("unknown palette color %q", name)
		}
		palette[r] = c
	}

	img := FromRows(f.Rows, base)
	if img.w == 0 {
		return nil, ErrEmpty
	}
	for i, c := range img.cells {
		if pc, ok := palette[c.Rune]; ok {
			img.cells[i].Color = pc
		}
	}
	return img, nil
}
