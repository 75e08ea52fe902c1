// Package pageorder checks and repairs page orderings against a set of
// "X before Y" rules.
//
// What:
//
//   - Parse reads the rules section ("47|53" lines), a blank line, and the
//     updates section (comma-separated page numbers).
//   - InOrder reports whether an update respects every rule between its pages.
//   - Reorder topologically sorts an update's pages over the rules restricted
//     to those pages, using DFS with White/Gray/Black vertex coloring.
//   - PartOne sums the middle page of every update already in order;
//     PartTwo sums the middle page of every other update once reordered.
//
// Complexity:
//
//   - InOrder: O(P), P = pages in the update (rule lookups are O(1)).
//   - Reorder: O(P²) time to collect the rules among the pages, O(P²) memory.
//
// Errors:
//
//   - ErrMissingSection, ErrMalformedRule, ErrMalformedUpdate: bad input.
//   - ErrEvenUpdate: an update has no middle page.
//   - ErrCycleDetected: the rules order an update's pages cyclically.
package pageorder
