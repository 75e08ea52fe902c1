package pageorder

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads the rules section, a blank line and the updates section.
// Pages may not repeat within one update.
func Parse(input string) (*Manual, error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	rulesText, updatesText, ok := strings.Cut(strings.TrimSpace(input), "\n\n")
	if !ok {
		return nil, ErrMissingSection
	}

	m := &Manual{before: make(map[int]map[int]struct{})}
	for i, line := range strings.Split(rulesText, "\n") {
		x, y, found := strings.Cut(line, "|")
		if !found {
			return nil, fmt.Errorf("%w: line %d %q", ErrMalformedRule, i+1, line)
		}
		from, errX := strconv.Atoi(x)
		to, errY := strconv.Atoi(y)
		if errX != nil || errY != nil || from < 0 || to < 0 {
			return nil, fmt.Errorf("%w: line %d %q", ErrMalformedRule, i+1, line)
		}
		if m.before[from] == nil {
			m.before[from] = make(map[int]struct{})
		}
		m.before[from][to] = struct{}{}
	}

	for i, line := range strings.Split(updatesText, "\n") {
		fields := strings.Split(line, ",")
		update := make([]int, 0, len(fields))
		seen := make(map[int]struct{}, len(fields))
		for _, f := range fields {
			page, err := strconv.Atoi(f)
			if err != nil || page < 0 {
				return nil, fmt.Errorf("%w: update %d %q", ErrMalformedUpdate, i+1, line)
			}
			if _, dup := seen[page]; dup {
				return nil, fmt.Errorf("%w: update %d repeats page %d", ErrMalformedUpdate, i+1, page)
			}
			seen[page] = struct{}{}
			update = append(update, page)
		}
		m.updates = append(m.updates, update)
	}

	return m, nil
}
