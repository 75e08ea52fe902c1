package patrol

import (
	"github.com/katalvlaran/aoc/grid"
)

// Route walks the real patrol from the start, facing North, and records every
// cell stood on with the direction faced there, in walked order.
//
// A turn cell appears twice: once at the end of the blocked segment and once,
// with the new direction, at the start of the next. Returns ErrGuardTrapped
// if the same (cell, direction) occurs twice, as the guard would then never
// leave the map.
func (m *Map) Route() ([]Step, error) {
	var (
		route []Step
		seen  = make(map[Step]struct{})
		cur   = m.start
		dir   = grid.North
	)
	for {
		seg := m.Walk(cur, dir, RealObstructions())
		for _, p := range seg.Cells {
			s := Step{Point: p, Dir: dir}
			if _, dup := seen[s]; dup {
				return nil, ErrGuardTrapped
			}
			seen[s] = struct{}{}
			route = append(route, s)
		}
		if !seg.Blocked {
			return route, nil
		}
		cur, dir = seg.Last(), dir.TurnRight()
	}
}

// Visited returns the set of distinct cells covered by the real patrol,
// including the start and the last cell before leaving the map.
func (m *Map) Visited() (map[grid.Point]struct{}, error) {
	route, err := m.Route()
	if err != nil {
		return nil, err
	}
	visited := make(map[grid.Point]struct{}, len(route))
	for _, s := range route {
		visited[s.Point] = struct{}{}
	}

	return visited, nil
}

// PartOne returns the number of distinct cells the guard visits before
// leaving the map described by input.
func PartOne(input string) (uint64, error) {
	m, err := Parse(input)
	if err != nil {
		return 0, err
	}
	visited, err := m.Visited()
	if err != nil {
		return 0, err
	}

	return uint64(len(visited)), nil
}
