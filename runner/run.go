package runner

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	"github.com/sirupsen/logrus"
)

// Solver maps the trimmed puzzle input to an answer. log is for diagnostics only.
type Solver func(input string, log logrus.FieldLogger) (Answer, error)

// Solvers pairs the two parts of a puzzle.
type Solvers struct {
	PartOne Solver
	PartTwo Solver
}

// Plain adapts a solver that needs no logger.
func Plain[T uint64 | int](solve func(input string) (T, error)) Solver {
	return func(input string, _ logrus.FieldLogger) (Answer, error) {
		v, err := solve(input)
		if err != nil {
			return Answer{}, err
		}
		return NewAnswer(v), nil
	}
}

// Run executes one solver invocation and returns the process exit code:
// 0 on success, 1 on any configuration, input or solver error.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer, s Solvers) int {
	cfg, err := LoadConfig(args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	log, err := NewLogger(cfg.Verbosity, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	return run(cfg, log, stdin, stdout, s)
}

// run is Run after configuration and logging are settled.
func run(cfg Config, log *logrus.Logger, stdin io.Reader, stdout io.Writer, s Solvers) int {
	solve := s.PartOne
	if cfg.Part == 2 {
		solve = s.PartTwo
	}
	if solve == nil {
		log.WithField("part", cfg.Part).Error("part not implemented")
		return 1
	}

	raw, err := io.ReadAll(stdin)
	if err != nil {
		log.WithError(err).Error("read input")
		return 1
	}
	input := strings.TrimRightFunc(string(raw), unicode.IsSpace)
	log.WithFields(logrus.Fields{"part": cfg.Part, "bytes": len(input)}).Info("solving")

	start := time.Now()
	answer, err := solve(input, log.WithField("part", cfg.Part))
	if err != nil {
		log.WithError(err).Error("solve")
		return 1
	}
	log.WithField("elapsed", time.Since(start)).Debug("solved")
	log.WithField("answer", answer.Uint64()).Info("answer")

	if _, err = fmt.Fprintln(stdout, answer); err != nil {
		log.WithError(err).Error("write answer")
		return 1
	}
	return 0
}
