package core

// Neighbor offsets for 4-connected traversal
var dirs4 = [4]Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// FloodFill replaces every cell 4-connected to seed whose value equals target
// Cells are rewritten as they are enqueued, so each is visited exactly once and the
// work-list never exceeds the region size. Returns the changed cells in visit order
// replacement == target is a no-op
func FloodFill(g *Grid, seed Point, target, replacement Cell) ([]Point, error) {
	cur, err := g.Get(seed.X, seed.Y)
	if err != nil {
		return nil, err
	}
	replacement = NewCell(replacement.Glyph, replacement.Fg, replacement.Bg)
	if replacement == target || cur != target {
		return nil, nil
	}

	changed := make([]Point, 0, 64)
	queue := make([]Point, 0, 128)

	g.cells[g.index(seed.X, seed.Y)] = replacement
	queue = append(queue, seed)

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		changed = append(changed, p)

		for _, d := range dirs4 {
			nx, ny := p.X+d.X, p.Y+d.Y
			if !g.InBounds(nx, ny) {
				continue
			}
			idx := g.index(nx, ny)
			if g.cells[idx] != target {
				continue
			}
			g.cells[idx] = replacement
			queue = append(queue, Point{X: nx, Y: ny})
		}
	}
	return changed, nil
}
