package patrol

import (
	"fmt"

	"github.com/katalvlaran/aoc/grid"
)

// Walk advances from the cell from in direction dir through consecutive
// cells the blocker lets pass. The origin itself is never tested against
// the blocker.
//
// The returned Segment starts at from and ends at the last passable cell.
// Blocked reports whether that cell is followed by a blocking cell; if the
// very next cell blocks, the segment is just [from] with Blocked set.
//
// Panics if from is off the map.
// Complexity: O(k), k = cells to the edge in dir.
func (m *Map) Walk(from grid.Point, dir grid.Direction, b Blocker) Segment {
	if !m.tiles.InBounds(from.X, from.Y) {
		panic(fmt.Sprintf("patrol: walk origin %v is off the map", from))
	}

	var seg Segment
	for p, t := range m.tiles.Ray(from.X, from.Y, dir) {
		// 1. The origin is where the guard already stands.
		if p != from && b.Blocks(p, t) {
			seg.Blocked = true
			break
		}
		// 2. Passable: the guard moves onto p.
		seg.Cells = append(seg.Cells, p)
	}
	if len(seg.Cells) == 0 {
		panic("patrol: empty segment")
	}

	return seg
}
