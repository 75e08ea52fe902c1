package patrol

import (
	"errors"

	"github.com/katalvlaran/aoc/grid"
)

// Sentinel errors for map parsing and patrol simulation.
var (
	// ErrUnknownSymbol indicates a map character other than '#', '.' or '^'.
	ErrUnknownSymbol = errors.New("patrol: unknown map symbol")
	// ErrNoStart indicates the map has no '^' start marker.
	ErrNoStart = errors.New("patrol: no start marker")
	// ErrMultipleStarts indicates the map has more than one '^' start marker.
	ErrMultipleStarts = errors.New("patrol: multiple start markers")
	// ErrGuardTrapped indicates the real route revisits a (cell, direction)
	// state and so never leaves the map.
	ErrGuardTrapped = errors.New("patrol: guard never leaves the map")
)

// Map symbols.
const (
	symObstruction = '#'
	symOpen        = '.'
	symStart       = '^'
)

// Tile is the content of one map cell.
type Tile uint8

const (
	// Open is a passable cell.
	Open Tile = iota
	// Obstruction is a blocked cell.
	Obstruction
)

// IsObstruction reports whether t blocks the guard.
func (t Tile) IsObstruction() bool { return t == Obstruction }

// String renders t with its map symbol.
func (t Tile) String() string {
	if t == Obstruction {
		return string(symObstruction)
	}
	return string(symOpen)
}

// Step is one entry of a route: the cell the guard stands on and the
// direction it faces there.
type Step struct {
	Point grid.Point
	Dir   grid.Direction
}

// Segment is the result of one straight walk.
type Segment struct {
	// Cells holds the traversed coordinates, starting with the walk's origin
	// and ending with the last passable cell. Never empty.
	Cells []grid.Point
	// Blocked is true when the cell after the last one blocks the guard
	// (turn and continue), false when the walk reached the map edge (stop).
	Blocked bool
}

// Last returns the final coordinate of the segment.
func (s Segment) Last() grid.Point {
	return s.Cells[len(s.Cells)-1]
}

// Blocker decides which cells stop the guard. The zero value, like
// RealObstructions, blocks on real obstructions only.
type Blocker struct {
	extra    grid.Point
	hasExtra bool
}

// RealObstructions returns a Blocker that stops only on '#' cells.
func RealObstructions() Blocker {
	return Blocker{}
}

// WithExtraObstruction returns a Blocker that also treats p as an obstruction,
// leaving the map itself untouched.
func WithExtraObstruction(p grid.Point) Blocker {
	return Blocker{extra: p, hasExtra: true}
}

// Blocks reports whether the cell p holding t stops the guard.
func (b Blocker) Blocks(p grid.Point, t Tile) bool {
	return t.IsObstruction() || (b.hasExtra && p == b.extra)
}

// Map is a parsed patrol map: the obstruction grid and the guard's start.
// It is immutable once parsed.
type Map struct {
	tiles *grid.Grid[Tile]
	start grid.Point
}

// Tiles returns the underlying obstruction grid.
func (m *Map) Tiles() *grid.Grid[Tile] { return m.tiles }

// Start returns the guard's starting cell. The guard starts facing North.
func (m *Map) Start() grid.Point { return m.start }

// LoopOption configures LoopObstructions.
type LoopOption func(*loopOptions)

// loopOptions holds settings for LoopObstructions.
type loopOptions struct {
	onLoop func(obstruction grid.Point, turn Step)
}

// WithOnLoop installs fn, invoked once for every confirmed obstruction with
// the route step the guard turns at.
func WithOnLoop(fn func(obstruction grid.Point, turn Step)) LoopOption {
	return func(o *loopOptions) {
		o.onLoop = fn
	}
}
