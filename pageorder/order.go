package pageorder

import "fmt"

// mustPrecede reports whether a rule puts page a before page b.
func (m *Manual) mustPrecede(a, b int) bool {
	_, ok := m.before[a][b]
	return ok
}

// InOrder reports whether no page of update comes after a page it must precede.
func (m *Manual) InOrder(update []int) bool {
	earlier := make(map[int]struct{}, len(update))
	for _, page := range update {
		for after := range m.before[page] {
			if _, ok := earlier[after]; ok {
				return false
			}
		}
		earlier[page] = struct{}{}
	}

	return true
}

// sorter encapsulates state for one topological sort.
type sorter struct {
	adj   map[int][]int // rules among the update's pages, in update order
	state map[int]int   // white, gray or black
	order []int         // post-order
}

// Reorder returns the pages of update sorted so that every rule between them
// holds. Pages are explored in update order, so the result is deterministic.
// Returns ErrCycleDetected if the rules among these pages are cyclic.
func (m *Manual) Reorder(update []int) ([]int, error) {
	// 1. Restrict the rule graph to this update's pages
	s := &sorter{
		adj:   make(map[int][]int, len(update)),
		state: make(map[int]int, len(update)),
		order: make([]int, 0, len(update)),
	}
	for _, u := range update {
		for _, v := range update {
			if m.mustPrecede(u, v) {
				s.adj[u] = append(s.adj[u], v)
			}
		}
	}
	// 2. Drive DFS from every unvisited page
	for _, p := range update {
		if s.state[p] == white {
			if err := s.visit(p); err != nil {
				return nil, err
			}
		}
	}
	// 3. Reverse post-order to produce topological order
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

// visit performs a DFS from page, marking states and detecting back-edges.
func (s *sorter) visit(page int) error {
	switch s.state[page] {
	case gray:
		return fmt.Errorf("%w: at page %d", ErrCycleDetected, page)
	case black:
		return nil
	}
	s.state[page] = gray
	for _, next := range s.adj[page] {
		if err := s.visit(next); err != nil {
			return err
		}
	}
	s.state[page] = black
	s.order = append(s.order, page)

	return nil
}

// Middle returns the middle page of an odd-length update.
func Middle(update []int) (int, error) {
	if len(update)%2 == 0 {
		return 0, fmt.Errorf("%w: %d pages", ErrEvenUpdate, len(update))
	}

	return update[len(update)/2], nil
}

// PartOne sums the middle pages of the updates already in order.
func PartOne(input string) (uint64, error) {
	m, err := Parse(input)
	if err != nil {
		return 0, err
	}
	var sum uint64
	for _, update := range m.updates {
		if !m.InOrder(update) {
			continue
		}
		mid, err := Middle(update)
		if err != nil {
			return 0, err
		}
		sum += uint64(mid)
	}

	return sum, nil
}

// PartTwo reorders every update that is out of order and sums their middle pages.
func PartTwo(input string, opts ...Option) (uint64, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	m, err := Parse(input)
	if err != nil {
		return 0, err
	}
	var sum uint64
	for _, update := range m.updates {
		if m.InOrder(update) {
			continue
		}
		fixed, err := m.Reorder(update)
		if err != nil {
			return 0, err
		}
		if o.onReorder != nil {
			o.onReorder(update, fixed)
		}
		mid, err := Middle(fixed)
		if err != nil {
			return 0, err
		}
		sum += uint64(mid)
	}

	return sum, nil
}
