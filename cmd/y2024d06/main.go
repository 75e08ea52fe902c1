// Command y2024d06 solves the guard patrol puzzle: part 1 counts the cells
// the guard visits, part 2 counts the cells where one new obstruction traps
// the guard in a loop.
package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/aoc/grid"
	"github.com/katalvlaran/aoc/patrol"
	"github.com/katalvlaran/aoc/runner"
)

func main() {
	os.Exit(runner.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, runner.Solvers{
		PartOne: runner.Plain(patrol.PartOne),
		PartTwo: partTwo,
	}))
}

// partTwo logs every confirmed obstruction at debug level.
func partTwo(input string, log logrus.FieldLogger) (runner.Answer, error) {
	n, err := patrol.PartTwo(input, patrol.WithOnLoop(func(obstruction grid.Point, turn patrol.Step) {
		log.WithFields(logrus.Fields{
			"obstruction": obstruction,
			"turn":        turn.Point,
			"facing":      turn.Dir,
		}).Debug("loop with obstruction")
	}))
	if err != nil {
		return runner.Answer{}, err
	}

	return runner.NewAnswer(n), nil
}
