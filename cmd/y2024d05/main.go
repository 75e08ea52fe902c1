// Command y2024d05 solves the page ordering puzzle: part 1 sums the middle
// pages of correctly ordered updates, part 2 those of the repaired ones.
package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/aoc/pageorder"
	"github.com/katalvlaran/aoc/runner"
)

func main() {
	os.Exit(runner.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, runner.Solvers{
		PartOne: runner.Plain(pageorder.PartOne),
		PartTwo: partTwo,
	}))
}

// partTwo logs every repaired update at debug level.
func partTwo(input string, log logrus.FieldLogger) (runner.Answer, error) {
	sum, err := pageorder.PartTwo(input, pageorder.WithOnReorder(func(before, after []int) {
		log.WithFields(logrus.Fields{"before": before, "after": after}).Debug("reordered update")
	}))
	if err != nil {
		return runner.Answer{}, err
	}

	return runner.NewAnswer(sum), nil
}
