package render

// TermCell is one terminal column of a CellSurface
type TermCell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// CellSurface is a terminal-resolution surface: one grid cell per terminal cell
// Its contents are copied to the screen by the presentation layer each frame
type CellSurface struct {
	cells  []TermCell
	width  int
	height int
}

// NewCellSurface creates an empty terminal surface
func NewCellSurface() *CellSurface {
	return &CellSurface{}
}

// CellSize is always 1x1
func (s *CellSurface) CellSize() (int, int) {
	return 1, 1
}

// Size returns dimensions in terminal cells
func (s *CellSurface) Size() (int, int) {
	return s.width, s.height
}

// Resize adjusts dimensions, reallocates only if capacity is insufficient
func (s *CellSurface) Resize(w, h int) {
	size := w * h
	if cap(s.cells) < size {
		s.cells = make([]TermCell, size)
	} else {
		s.cells = s.cells[:size]
		clear(s.cells)
	}
	s.width = w
	s.height = h
}

func (s *CellSurface) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// FillCell sets the background and blanks the rune
func (s *CellSurface) FillCell(px, py int, bg RGB) {
	if !s.inBounds(px, py) {
		return
	}
	s.cells[py*s.width+px] = TermCell{Rune: ' ', Fg: bg, Bg: bg}
}

// DrawGlyph writes the glyph's terminal rune, preserving background
func (s *CellSurface) DrawGlyph(px, py int, glyph uint8, fg RGB) {
	if !s.inBounds(px, py) {
		return
	}
	dst := &s.cells[py*s.width+px]
	dst.Rune = TerminalRune(glyph)
	dst.Fg = fg
}

// Cell returns the terminal cell at (x, y); zero value if out of range
func (s *CellSurface) Cell(x, y int) TermCell {
	if !s.inBounds(x, y) {
		return TermCell{}
	}
	return s.cells[y*s.width+x]
}
