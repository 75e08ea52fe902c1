package pageorder

import "errors"

// Sentinel errors for parsing and ordering.
var (
	// ErrMissingSection indicates the input lacks the blank line separating
	// rules from updates.
	ErrMissingSection = errors.New("pageorder: missing rules or updates section")
	// ErrMalformedRule indicates a rule line that is not "X|Y".
	ErrMalformedRule = errors.New("pageorder: malformed rule")
	// ErrMalformedUpdate indicates an update line that is not a comma-separated
	// list of page numbers.
	ErrMalformedUpdate = errors.New("pageorder: malformed update")
	// ErrEvenUpdate indicates an update with an even number of pages.
	ErrEvenUpdate = errors.New("pageorder: update has no middle page")
	// ErrCycleDetected indicates the rules admit no order for an update.
	ErrCycleDetected = errors.New("pageorder: cycle detected")
)

// Vertex visitation states for the topological sort.
const (
	white = iota // not visited yet
	gray         // on the recursion stack
	black        // fully explored
)

// Manual holds the ordering rules and the updates to check.
type Manual struct {
	// before maps a page to the pages that must come after it.
	before  map[int]map[int]struct{}
	updates [][]int
}

// Updates returns the parsed updates. The slices must not be modified.
func (m *Manual) Updates() [][]int { return m.updates }

// Option configures PartTwo.
type Option func(*options)

// options holds settings for PartTwo.
type options struct {
	onReorder func(before, after []int)
}

// WithOnReorder installs fn, invoked for every update PartTwo reorders.
func WithOnReorder(fn func(before, after []int)) Option {
	return func(o *options) {
		o.onReorder = fn
	}
}
