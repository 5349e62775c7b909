package recipe

import "github.com/mosbergapi/modkit/pkg/id"

// Grid is a crafting grid in row-major order. The zero identifier marks an
// empty cell.
type Grid struct {
	Width  int
	Height int
	Cells  []id.ID
}

// At returns the cell at (row, col).
func (g Grid) At(row, col int) id.ID {
	return g.Cells[row*g.Width+col]
}

func (g Grid) valid() bool {
	return g.Width > 0 && g.Height > 0 && len(g.Cells) == g.Width*g.Height
}

// MatchGrid finds the first recipe the grid satisfies and returns its
// result. Shaped patterns match at every offset the grid admits, including
// horizontally mirrored; shapeless recipes match their ingredient multiset
// against the occupied cells in any order. Recipes without grid semantics
// are skipped.
func MatchGrid(g Grid, recipes []Recipe) (Result, bool) {
	if !g.valid() {
		return Result{}, false
	}
	for _, r := range recipes {
		switch r := r.(type) {
		case *Shaped:
			if matchShaped(g, r) {
				return r.Result, true
			}
		case *Shapeless:
			if matchShapeless(g, r) {
				return r.Result, true
			}
		}
	}
	return Result{}, false
}

// matchShaped tries the recipe's shape at every valid offset, then again
// horizontally mirrored.
func matchShaped(g Grid, r *Shaped) bool {
	shape, ok := r.shape()
	if !ok {
		return false
	}
	rows := len(shape)
	if rows == 0 || rows > g.Height {
		return false
	}
	cols := 0
	for _, row := range shape {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 || cols > g.Width {
		return false
	}

	for rowOff := 0; rowOff <= g.Height-rows; rowOff++ {
		for colOff := 0; colOff <= g.Width-cols; colOff++ {
			if checkShapedAt(g, shape, rowOff, colOff) {
				return true
			}
		}
	}

	mirrored := mirrorShape(shape)
	for rowOff := 0; rowOff <= g.Height-rows; rowOff++ {
		for colOff := 0; colOff <= g.Width-cols; colOff++ {
			if checkShapedAt(g, mirrored, rowOff, colOff) {
				return true
			}
		}
	}

	return false
}

// checkShapedAt requires every cell covered by the shape to hold its
// ingredient and every other cell to be empty.
func checkShapedAt(g Grid, shape [][]id.ID, rowOff, colOff int) bool {
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			cell := g.At(r, c)
			shapeR := r - rowOff
			shapeC := c - colOff

			var want id.ID
			if shapeR >= 0 && shapeR < len(shape) && shapeC >= 0 && shapeC < len(shape[shapeR]) {
				want = shape[shapeR][shapeC]
			}

			if want.IsZero() {
				if !cell.IsZero() {
					return false
				}
			} else if cell != want {
				return false
			}
		}
	}
	return true
}

// mirrorShape horizontally flips a shape.
func mirrorShape(shape [][]id.ID) [][]id.ID {
	mirrored := make([][]id.ID, len(shape))
	for i, row := range shape {
		mirrored[i] = make([]id.ID, len(row))
		for j := range row {
			mirrored[i][j] = row[len(row)-1-j]
		}
	}
	return mirrored
}

// matchShapeless matches the occupied cells against the ingredient multiset
// in any order.
func matchShapeless(g Grid, r *Shapeless) bool {
	if len(r.Ingredients) == 0 || len(r.Ingredients) > len(g.Cells) {
		return false
	}

	var items []id.ID
	for _, cell := range g.Cells {
		if !cell.IsZero() {
			items = append(items, cell)
		}
	}
	if len(items) != len(r.Ingredients) {
		return false
	}

	used := make([]bool, len(items))
	for _, ing := range r.Ingredients {
		found := false
		for j, item := range items {
			if used[j] {
				continue
			}
			if item == ing.Item {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// shape expands the pattern into an ingredient matrix. It reports false when
// a pattern character is missing from the key.
func (s *Shaped) shape() ([][]id.ID, bool) {
	shape := make([][]id.ID, len(s.Pattern))
	for i, row := range s.Pattern {
		shape[i] = make([]id.ID, len(row))
		for j := 0; j < len(row); j++ {
			ch := row[j : j+1]
			if ch == " " {
				continue
			}
			ing, ok := s.Key[ch]
			if !ok {
				return nil, false
			}
			shape[i][j] = ing.Item
		}
	}
	return shape, true
}
