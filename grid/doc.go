// Package grid provides an immutable rectangular container of cell values
// with point lookup and lazy compass-direction rays.
//
// What:
//
//   - Grid[T] stores Width×Height cells in row-major order. It is built once
//     from equal-length rows and is read-only afterwards.
//   - Get(x, y) returns a cell and a presence flag, so callers can detect
//     stepping off the map without treating it as an error.
//   - Toward and Ray produce finite, restartable sequences starting at a cell
//     (inclusive) and stepping one cell at a time in a Direction until the
//     next step would leave the grid.
//
// Why:
//
//   - Puzzle maps: walk straight lines without re-scanning cell by cell in
//     caller code, and stop exactly at the boundary.
//
// Complexity:
//
//   - New:    O(W×H) time and memory (rows are copied).
//   - Get:    O(1).
//   - Toward: O(1) to create, O(k) to drain, k = cells to the edge.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or the first row has no columns.
//   - ErrNonRectangular: rows have differing lengths.
package grid
