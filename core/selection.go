// @focus: #core { selection }
package core

// Selection tracks a pointer drag and the normalized box it spans
// The box is only meaningful while Active or Dragging
type Selection struct {
	dragging bool
	active   bool
	start    Point
	end      Point
	box      Rect
}

// BeginDrag starts a new drag anchored at p, discarding any previous box
func (s *Selection) BeginDrag(p Point) {
	s.dragging = true
	s.active = false
	s.start = p
	s.end = p
	s.box = NormalizeRect(p, p)
}

// UpdateDrag moves the live corner; ignored when no drag is in progress
func (s *Selection) UpdateDrag(p Point) {
	if !s.dragging {
		return
	}
	s.end = p
	s.box = NormalizeRect(s.start, s.end)
}

// EndDrag finishes the drag and activates the last computed box
func (s *Selection) EndDrag() {
	if !s.dragging {
		return
	}
	s.dragging = false
	s.active = true
}

// Cancel drops both the drag and the active box
func (s *Selection) Cancel() {
	s.dragging = false
	s.active = false
}

// Dragging reports whether a drag is in progress
func (s *Selection) Dragging() bool {
	return s.dragging
}

// Active reports whether a completed box exists
func (s *Selection) Active() bool {
	return s.active
}

// Box returns the normalized box, ok only while active
func (s *Selection) Box() (Rect, bool) {
	if !s.active {
		return Rect{}, false
	}
	return s.box, true
}

// Live returns the box being dragged or the active one, for overlays
func (s *Selection) Live() (Rect, bool) {
	if !s.dragging && !s.active {
		return Rect{}, false
	}
	return s.box, true
}

// CopyTo copies the active box into clip and consumes the selection
func (s *Selection) CopyTo(clip *Clipboard, g *Grid) error {
	box, ok := s.Box()
	if !ok {
		return ErrEmptySelection
	}
	if err := clip.Copy(g, box); err != nil {
		return err
	}
	s.Cancel()
	return nil
}

// ClearMode selects the background written by ClearBox
type ClearMode uint8

const (
	// ClearToBackground keeps the caller's current background
	ClearToBackground ClearMode = iota
	// ClearToBlack resets the background to palette index 0
	ClearToBlack
)

// ClearBox erases glyphs inside box, writing fg and the background chosen by mode
// The box is clipped to the grid; returns the changed cells
func ClearBox(g *Grid, box Rect, fg, bg uint8, mode ClearMode) []Point {
	clipped, ok := box.Clip(g.Bounds())
	if !ok {
		return nil
	}
	if mode == ClearToBlack {
		bg = 0
	}
	c := NewCell(0, fg, bg)
	changed := make([]Point, 0, clipped.Width()*clipped.Height())
	for y := clipped.Top; y <= clipped.Bottom; y++ {
		for x := clipped.Left; x <= clipped.Right; x++ {
			g.cells[g.index(x, y)] = c
			changed = append(changed, Point{X: x, Y: y})
		}
	}
	return changed
}
