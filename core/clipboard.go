// @focus: #core { clipboard }
package core

import "fmt"

// Clipboard holds the last copied rectangle
// Data is stored at the same coordinates it was copied from, with bounds marking
// the valid region; it survives any number of pastes until the next copy
type Clipboard struct {
	cells  []Cell
	bounds Rect
	filled bool
}

// NewClipboard allocates an empty clipboard with grid capacity
func NewClipboard() *Clipboard {
	return &Clipboard{cells: make([]Cell, MaxWidth*MaxHeight)}
}

// Empty reports whether nothing has been copied yet
func (c *Clipboard) Empty() bool {
	return !c.filled
}

// Bounds returns the valid region, ok is false when empty
func (c *Clipboard) Bounds() (Rect, bool) {
	return c.bounds, c.filled
}

// Copy snapshots box from g; the box is clipped to the grid
func (c *Clipboard) Copy(g *Grid, box Rect) error {
	clipped, ok := box.Clip(g.Bounds())
	if !ok {
		return fmt.Errorf("copy %+v: %w", box, ErrOutOfBounds)
	}
	for y := clipped.Top; y <= clipped.Bottom; y++ {
		src := g.cells[y*MaxWidth+clipped.Left : y*MaxWidth+clipped.Right+1]
		copy(c.cells[y*MaxWidth+clipped.Left:], src)
	}
	c.bounds = clipped
	c.filled = true
	return nil
}

// Paste writes the clipboard into g with its top-left at origin
// Cells falling outside g are dropped; the origin itself must be inside g
// Returns the written cells
func (c *Clipboard) Paste(g *Grid, origin Point) ([]Point, error) {
	if !c.filled {
		return nil, ErrEmptyClipboard
	}
	if !g.InBounds(origin.X, origin.Y) {
		return nil, fmt.Errorf("paste at (%d, %d): %w", origin.X, origin.Y, ErrOutOfBounds)
	}
	b := c.bounds
	written := make([]Point, 0, b.Width()*b.Height())
	for y := b.Top; y <= b.Bottom; y++ {
		dy := origin.Y + (y - b.Top)
		if dy >= g.height {
			break
		}
		for x := b.Left; x <= b.Right; x++ {
			dx := origin.X + (x - b.Left)
			if dx >= g.width {
				break
			}
			g.cells[g.index(dx, dy)] = c.cells[y*MaxWidth+x]
			written = append(written, Point{X: dx, Y: dy})
		}
	}
	return written, nil
}

// Region returns the valid contents row-major with their dimensions
func (c *Clipboard) Region() (width, height int, cells []Cell) {
	if !c.filled {
		return 0, 0, nil
	}
	b := c.bounds
	width, height = b.Width(), b.Height()
	cells = make([]Cell, 0, width*height)
	for y := b.Top; y <= b.Bottom; y++ {
		cells = append(cells, c.cells[y*MaxWidth+b.Left:y*MaxWidth+b.Right+1]...)
	}
	return width, height, cells
}

// Load replaces the contents with a row-major region anchored at the origin
func (c *Clipboard) Load(width, height int, cells []Cell) error {
	if width < 1 || width > MaxWidth || height < 1 || height > MaxHeight {
		return fmt.Errorf("clipboard region %dx%d: %w", width, height, ErrInvalidResize)
	}
	if len(cells) != width*height {
		return fmt.Errorf("clipboard region %dx%d with %d cells: %w", width, height, len(cells), ErrOutOfBounds)
	}
	for y := 0; y < height; y++ {
		copy(c.cells[y*MaxWidth:], cells[y*width:(y+1)*width])
	}
	c.bounds = Rect{Left: 0, Top: 0, Right: width - 1, Bottom: height - 1}
	c.filled = true
	return nil
}
