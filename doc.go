// Package aoc collects puzzle solvers for the yearly programming-puzzle
// series, with reusable building blocks for the recurring puzzle shapes.
//
// Under the hood, everything is organized under these subpackages:
//
//	grid/       immutable rectangular Grid[T], Point, Direction, lazy rays
//	patrol/     guard patrol over an obstruction map and loop detection (2024 day 6)
//	pageorder/  page ordering rules and topological repair (2024 day 5)
//	runner/     shared CLI: config, verbosity-leveled logging, part dispatch
//	cmd/        one binary per puzzle day
//
// Every binary reads its puzzle input from stdin and prints one number:
//
//	go run ./cmd/y2024d06 1 2 < input.txt
package aoc
