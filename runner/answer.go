package runner

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Answer is a solver result: a non-negative integer printed in decimal.
type Answer struct {
	v uint64
}

// NewAnswer wraps v. Panics if v is negative.
func NewAnswer[T constraints.Integer](v T) Answer {
	if v < 0 {
		panic(fmt.Sprintf("runner: negative answer %d", v))
	}
	return Answer{v: uint64(v)}
}

// Uint64 returns the wrapped value.
func (a Answer) Uint64() uint64 { return a.v }

// String formats the answer in decimal.
func (a Answer) String() string { return strconv.FormatUint(a.v, 10) }
