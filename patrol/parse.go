package patrol

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc/grid"
)

// Parse builds a Map from puzzle text: one row per line, '#' for an
// obstruction, '.' for open floor and a single '^' for the guard's start.
// Trailing newlines and '\r' line endings are tolerated.
//
// Returns ErrUnknownSymbol, ErrNoStart or ErrMultipleStarts for malformed
// symbols, and grid.ErrEmptyGrid or grid.ErrNonRectangular (wrapped) for a
// malformed shape.
func Parse(input string) (*Map, error) {
	lines := strings.Split(strings.TrimRight(input, "\r\n"), "\n")

	// start is written at most once; a second '^' is an error.
	var start *grid.Point
	rows := make([][]Tile, 0, len(lines))
	for y, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		row := make([]Tile, 0, len(line))
		for x := 0; x < len(line); x++ {
			switch c := line[x]; c {
			case symObstruction:
				row = append(row, Obstruction)
			case symOpen:
				row = append(row, Open)
			case symStart:
				if start != nil {
					return nil, fmt.Errorf("%w: at %v and (%d,%d)", ErrMultipleStarts, *start, x, y)
				}
				start = &grid.Point{X: x, Y: y}
				row = append(row, Open)
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownSymbol, c, x, y)
			}
		}
		rows = append(rows, row)
	}

	tiles, err := grid.New(rows)
	if err != nil {
		return nil, fmt.Errorf("patrol: parse map: %w", err)
	}
	if start == nil {
		return nil, ErrNoStart
	}

	return &Map{tiles: tiles, start: *start}, nil
}
