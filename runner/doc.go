// Package runner is the shared command-line entry point of the puzzle
// solvers: it loads configuration, sets up logging, reads the puzzle input
// from stdin, dispatches to part one or two and prints the answer.
//
// Usage of every solver binary:
//
//	y2024dNN [verbosity] part < input.txt
//
// verbosity is 0 (warnings), 1 (info) or 2 (debug); part is 1 or 2. Both
// fall back to AOC_VERBOSITY and AOC_PART, which may also come from a .env
// file in the working directory.
package runner
