package patrol

import (
	"maps"

	"github.com/katalvlaran/aoc/grid"
)

// history accumulates the real route prefix walked so far.
type history struct {
	steps  map[Step]struct{}       // (cell, direction) states
	points map[grid.Point]struct{} // cells regardless of direction
}

func newHistory(capacity int) *history {
	return &history{
		steps:  make(map[Step]struct{}, capacity),
		points: make(map[grid.Point]struct{}, capacity),
	}
}

func (h *history) push(s Step) {
	h.steps[s] = struct{}{}
	h.points[s.Point] = struct{}{}
}

// LoopObstructions returns every distinct cell where placing one new
// obstruction traps the guard in a cycle, in discovery order.
//
// Candidates come from the real route: for each step a followed by a step b
// one cell ahead, the guard could be made to turn at a by obstructing b.
// A candidate is skipped when it is the start cell, when the real route
// already crossed it before a (the guard could not have walked past an
// obstruction), or when it has been tested already. Otherwise the guard
// turns right at a and walks on, with b blocking, from a copy of the route
// history before a; revisiting any recorded (cell, direction) confirms a
// cycle, leaving the map rejects the candidate.
//
// Returns ErrGuardTrapped if the unmodified map already traps the guard.
func (m *Map) LoopObstructions(opts ...LoopOption) ([]grid.Point, error) {
	var o loopOptions
	for _, opt := range opts {
		opt(&o)
	}

	route, err := m.Route()
	if err != nil {
		return nil, err
	}

	var (
		prefix = newHistory(len(route))
		tested = make(map[grid.Point]struct{})
		found  []grid.Point
	)
	for i := 0; i+1 < len(route); i++ {
		turn, cand := route[i], route[i+1].Point
		switch _, crossed := prefix.points[cand]; {
		case cand == turn.Point:
			// The real route turns here; there is no cell ahead to obstruct.
		case cand == m.start, crossed:
		default:
			if _, done := tested[cand]; done {
				break
			}
			tested[cand] = struct{}{}
			if m.loops(prefix.steps, turn, cand) {
				found = append(found, cand)
				if o.onLoop != nil {
					o.onLoop(cand, turn)
				}
			}
		}
		prefix.push(turn)
	}

	return found, nil
}

// loops reports whether the guard, standing at turn and blocked by an extra
// obstruction at obstruction, ends up revisiting a state from seen or from
// its own continuation. seen is not modified.
func (m *Map) loops(seen map[Step]struct{}, turn Step, obstruction grid.Point) bool {
	var (
		visited = maps.Clone(seen)
		blocker = WithExtraObstruction(obstruction)
		cur     = turn.Point
		dir     = turn.Dir.TurnRight()
	)
	for {
		seg := m.Walk(cur, dir, blocker)
		if !seg.Blocked {
			return false // left the map
		}
		for _, p := range seg.Cells {
			if _, ok := visited[Step{Point: p, Dir: dir}]; ok {
				return true
			}
		}
		for _, p := range seg.Cells {
			visited[Step{Point: p, Dir: dir}] = struct{}{}
		}
		cur, dir = seg.Last(), dir.TurnRight()
	}
}

// PartTwo returns the number of distinct cells where one new obstruction
// traps the guard of the map described by input in a cycle.
func PartTwo(input string, opts ...LoopOption) (uint64, error) {
	m, err := Parse(input)
	if err != nil {
		return 0, err
	}
	found, err := m.LoopObstructions(opts...)
	if err != nil {
		return 0, err
	}

	return uint64(len(found)), nil
}
