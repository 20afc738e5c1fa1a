// @focus: #render { surface }
package render

// Surface is a rasterization target partitioned into fixed-size cells
// Coordinates are in surface units (pixels for images, columns/rows for terminals)
type Surface interface {
	// CellSize returns the extent of one grid cell in surface units
	CellSize() (w, h int)
	// Size returns the current surface extent
	Size() (w, h int)
	// Resize reallocates the surface; previous contents become undefined
	Resize(w, h int)
	// FillCell paints a cell-sized rectangle at (px, py) with bg
	FillCell(px, py int, bg RGB)
	// DrawGlyph draws glyph in fg over the cell at (px, py)
	DrawGlyph(px, py int, glyph uint8, fg RGB)
}
