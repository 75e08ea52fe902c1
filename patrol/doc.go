// Package patrol simulates a guard walking a 2D obstruction map: straight
// ahead until blocked, then a 90° right turn, until the guard leaves the map.
//
// What:
//
//   - Parse reads the map text: '#' obstruction, '.' open, exactly one '^'
//     marking the guard's start (open, facing North).
//   - Walk advances along one straight segment and reports whether it ended
//     against a blocking cell or at the map edge. What counts as blocking is
//     a Blocker: the real obstructions, optionally plus one extra cell.
//   - Route records the real patrol as (cell, direction) steps; Visited and
//     PartOne count the distinct cells it covers.
//   - LoopObstructions and PartTwo find every cell where one new obstruction
//     would trap the guard in a cycle.
//
// Loop detection reuses the real route's prefix: for each step of the route
// the (cell, direction) history so far seeds a fresh set, and only the
// hypothetical continuation after the turn point is walked. The real route
// itself is cycle-free, so the prefix never needs re-checking.
//
// Complexity:
//
//   - Route:            O(W×H) steps (each state is visited at most once).
//   - LoopObstructions: O(R × (R + W×H)), R = route length.
//
// Errors:
//
//   - ErrUnknownSymbol, ErrNoStart, ErrMultipleStarts: malformed map text.
//   - grid.ErrEmptyGrid, grid.ErrNonRectangular: malformed map shape.
//   - ErrGuardTrapped: the unmodified map already traps the guard.
package patrol
