// @focus: #core { grid }
package core

import "fmt"

// Capacity of the backing store, allocated once per grid
const (
	MaxWidth  = 256
	MaxHeight = 256
)

// Default document size
const (
	DefaultWidth  = 80
	DefaultHeight = 25
)

// Grid is the authoritative document buffer
// The backing array keeps a fixed stride of MaxWidth so resizing never moves cells;
// growing re-exposes whatever the previously hidden cells last held
type Grid struct {
	cells  []Cell
	width  int
	height int
}

// NewGrid creates a grid with the full capacity set to Blank
// Dimensions are clamped into [1, Max]
func NewGrid(width, height int) *Grid {
	cells := make([]Cell, MaxWidth*MaxHeight)
	cells[0] = Blank
	// Exponential copy
	for filled := 1; filled < len(cells); filled *= 2 {
		copy(cells[filled:], cells[:filled])
	}
	g := &Grid{cells: cells}
	g.width, _ = clampDim(width, MaxWidth)
	g.height, _ = clampDim(height, MaxHeight)
	return g
}

// Width returns the logical width
func (g *Grid) Width() int {
	return g.width
}

// Height returns the logical height
func (g *Grid) Height() int {
	return g.height
}

// Bounds returns the visible window as an inclusive rect
func (g *Grid) Bounds() Rect {
	return Rect{Left: 0, Top: 0, Right: g.width - 1, Bottom: g.height - 1}
}

// InBounds returns true if (x, y) is a valid cell of the visible window
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) index(x, y int) int {
	return y*MaxWidth + x
}

// Get returns the cell at (x, y)
func (g *Grid) Get(x, y int) (Cell, error) {
	if !g.InBounds(x, y) {
		return Cell{}, fmt.Errorf("get (%d, %d) in %dx%d: %w", x, y, g.width, g.height, ErrOutOfBounds)
	}
	return g.cells[g.index(x, y)], nil
}

// Set stores a cell at (x, y); out-of-range writes are rejected and leave the grid unchanged
func (g *Grid) Set(x, y int, c Cell) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("set (%d, %d) in %dx%d: %w", x, y, g.width, g.height, ErrOutOfBounds)
	}
	g.cells[g.index(x, y)] = NewCell(c.Glyph, c.Fg, c.Bg)
	return nil
}

// FloodTargetValue returns the value at the seed point of a prospective fill
func (g *Grid) FloodTargetValue(x, y int) (Cell, error) {
	return g.Get(x, y)
}

// Resize changes the visible window without touching the backing store
// Requests outside [1, Max] are clamped; the clamped size is still applied and
// ErrInvalidResize is returned so the caller can report it
func (g *Grid) Resize(width, height int) error {
	w, okW := clampDim(width, MaxWidth)
	h, okH := clampDim(height, MaxHeight)
	g.width, g.height = w, h
	if !okW || !okH {
		return fmt.Errorf("resize to %dx%d clamped to %dx%d: %w", width, height, w, h, ErrInvalidResize)
	}
	return nil
}

// Each visits every visible cell in row-major order
func (g *Grid) Each(fn func(x, y int, c Cell)) {
	for y := 0; y < g.height; y++ {
		row := g.cells[y*MaxWidth : y*MaxWidth+g.width]
		for x, c := range row {
			fn(x, y, c)
		}
	}
}

// Row returns a copy of the visible cells of row y, nil if out of range
func (g *Grid) Row(y int) []Cell {
	if y < 0 || y >= g.height {
		return nil
	}
	line := make([]Cell, g.width)
	copy(line, g.cells[y*MaxWidth:y*MaxWidth+g.width])
	return line
}

// Equal reports whether both grids have the same size and visible contents
func (g *Grid) Equal(o *Grid) bool {
	if g.width != o.width || g.height != o.height {
		return false
	}
	for y := 0; y < g.height; y++ {
		a := g.cells[y*MaxWidth : y*MaxWidth+g.width]
		b := o.cells[y*MaxWidth : y*MaxWidth+o.width]
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy including hidden cells
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{cells: cells, width: g.width, height: g.height}
}

func clampDim(v, limit int) (int, bool) {
	switch {
	case v < 1:
		return 1, false
	case v > limit:
		return limit, false
	}
	return v, true
}
