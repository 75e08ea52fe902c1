package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input rows are missing or zero-width.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Direction is one of the four compass directions. The zero value is North.
type Direction uint8

const (
	// North decreases the row index.
	North Direction = iota
	// East increases the column index.
	East
	// South increases the row index.
	South
	// West decreases the column index.
	West
)

// Directions lists all compass directions in clockwise order starting at North.
var Directions = [...]Direction{North, East, South, West}

// TurnRight returns the direction after a 90° clockwise turn:
// North→East→South→West→North.
func (d Direction) TurnRight() Direction {
	return (d + 1) % 4
}

// Delta returns the column and row offsets of a single step in d.
// Panics on a value outside the four declared directions.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	panic(fmt.Sprintf("grid: unknown direction %d", d))
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	return fmt.Sprintf("Direction(%d)", d)
}

// Point is a cell coordinate: X is the column, Y is the row.
type Point struct {
	X, Y int
}

// Add returns the point one step away from p in direction d.
func (p Point) Add(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid is an immutable rectangular table of cells of type T.
// cells holds the rows back to back: cells[y*width+x].
type Grid[T any] struct {
	width, height int
	cells         []T
}
