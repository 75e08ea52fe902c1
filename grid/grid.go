package grid

import "iter"

// New constructs a Grid from a non-empty, rectangular 2D slice.
// The rows are copied, so later changes to the input do not affect the grid.
// Returns ErrEmptyGrid if rows is empty or the first row has no columns,
// ErrNonRectangular if any row length differs from the first.
// Complexity: O(W×H) time and memory.
func New[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]T, 0, w*h)
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells = append(cells, row...)
	}

	return &Grid[T]{width: w, height: h, cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the cell at (x,y). The boolean is false, and the value is the
// zero T, when (x,y) is outside the grid.
// Complexity: O(1).
func (g *Grid[T]) Get(x, y int) (T, bool) {
	if !g.InBounds(x, y) {
		var zero T
		return zero, false
	}

	return g.cells[g.index(x, y)], true
}

// Toward returns the cell values from (x,y) inclusive toward d, ending with
// the last cell before the grid edge. Each call yields a fresh sequence.
// A start outside the grid yields nothing.
func (g *Grid[T]) Toward(x, y int, d Direction) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.Ray(x, y, d) {
			if !yield(v) {
				return
			}
		}
	}
}

// Ray is Toward with each value paired with its coordinate.
// North/South vary Y, East/West vary X.
// Panics when iterated if d is not one of the four directions.
func (g *Grid[T]) Ray(x, y int, d Direction) iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		dx, dy := d.Delta()
		for p := (Point{X: x, Y: y}); g.InBounds(p.X, p.Y); p.X, p.Y = p.X+dx, p.Y+dy {
			if !yield(p, g.cells[g.index(p.X, p.Y)]) {
				return
			}
		}
	}
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid[T]) index(x, y int) int {
	return y*g.width + x
}

