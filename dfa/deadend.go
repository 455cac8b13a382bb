package dfa

import "github.com/coregx/contentexpr/cerr"

// CheckDeadEnds walks every reachable Match from root and fails schema
// compilation the moment it finds a state that is not ValidEnd and whose
// every outgoing label is non-generatable (a text type or one carrying
// required attributes) — such a state can never be completed by
// CreateAndFill, so no document could ever satisfy it. source is the
// content-expression text, embedded in the resulting error.
func CheckDeadEnds(root *Match, source string) error {
	seen := map[*Match]bool{root: true}
	queue := []*Match{root}

	for len(queue) > 0 {
		m := queue[0]
		queue = queue[1:]

		if !m.validEnd {
			deadEnd := true
			var names []string
			for _, e := range m.edges {
				if !e.Label.IsText() && !e.Label.HasRequiredAttrs() {
					deadEnd = false
					break
				}
				names = append(names, e.Label.Name())
			}
			if deadEnd {
				return &cerr.DeadEndError{Source: source, Names: names}
			}
		}

		for _, e := range m.edges {
			if !seen[e.Target] {
				seen[e.Target] = true
				queue = append(queue, e.Target)
			}
		}
	}
	return nil
}
