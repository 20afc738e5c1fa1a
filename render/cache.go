// @focus: #render { cache }
package render

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/glyph-painter/core"
)

// ErrStale reports a refresh against a cache whose layout no longer matches the grid
var ErrStale = errors.New("render cache layout is stale, rebuild required")

// Cache mirrors the grid on a Surface, updated one cell at a time
// The grid stays authoritative; cells not yet refreshed since the last
// layout change are marked invalid and must not be presented
type Cache struct {
	surface Surface
	cellW   int
	cellH   int
	width   int
	height  int
	valid   []bool

	refreshes uint64
}

// NewCache wraps a surface; the cache is empty until RebuildAll
func NewCache(s Surface) *Cache {
	w, h := s.CellSize()
	return &Cache{surface: s, cellW: w, cellH: h}
}

// Surface returns the backing surface for presentation
func (c *Cache) Surface() Surface {
	return c.surface
}

// CellSize returns the extent of one cell in surface units
func (c *Cache) CellSize() (int, int) {
	return c.cellW, c.cellH
}

// Dimensions returns the layout in cells
func (c *Cache) Dimensions() (int, int) {
	return c.width, c.height
}

// PixelSize returns the surface extent implied by the layout
func (c *Cache) PixelSize() (int, int) {
	return c.width * c.cellW, c.height * c.cellH
}

// RefreshCell re-rasterizes exactly one cell: background fill, then glyph
func (c *Cache) RefreshCell(g *core.Grid, x, y int) error {
	cell, err := g.Get(x, y)
	if err != nil {
		return err
	}
	if x >= c.width || y >= c.height {
		return fmt.Errorf("refresh (%d, %d) on %dx%d layout: %w", x, y, c.width, c.height, ErrStale)
	}

	px, py := x*c.cellW, y*c.cellH
	c.surface.FillCell(px, py, PaletteColor(cell.Bg))
	c.surface.DrawGlyph(px, py, cell.Glyph, PaletteColor(cell.Fg))

	c.valid[y*c.width+x] = true
	c.refreshes++
	return nil
}

// Refresh re-rasterizes a list of changed cells, returning the first failure
func (c *Cache) Refresh(g *core.Grid, pts []core.Point) error {
	var first error
	for _, p := range pts {
		if err := c.RefreshCell(g, p.X, p.Y); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// RebuildAll adopts the grid's dimensions, resizes the surface and refreshes every cell
func (c *Cache) RebuildAll(g *core.Grid) {
	c.width, c.height = g.Width(), g.Height()
	c.surface.Resize(c.width*c.cellW, c.height*c.cellH)

	size := c.width * c.height
	if cap(c.valid) < size {
		c.valid = make([]bool, size)
	} else {
		c.valid = c.valid[:size]
		c.Invalidate()
	}

	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			// Layout was just adopted from g, cannot fail
			_ = c.RefreshCell(g, x, y)
		}
	}
}

// Invalidate marks every cell stale without touching the surface
func (c *Cache) Invalidate() {
	clear(c.valid)
}

// Valid reports whether the cell's pixels match its last refresh
func (c *Cache) Valid(x, y int) bool {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return false
	}
	return c.valid[y*c.width+x]
}

// Synced reports whether the layout matches g and every cell is valid
func (c *Cache) Synced(g *core.Grid) bool {
	if c.width != g.Width() || c.height != g.Height() {
		return false
	}
	for _, v := range c.valid {
		if !v {
			return false
		}
	}
	return true
}

// Refreshes returns the number of single-cell refreshes performed
func (c *Cache) Refreshes() uint64 {
	return c.refreshes
}
