package syllabus

// ToggleTopic applies a header click to the per-topic expansion flags and
// returns the new flags. Clicking the expanded topic collapses it; clicking
// any other topic expands it and collapses the rest. An out-of-range target
// leaves the state as is. The input slice is not modified.
func ToggleTopic(expanded []bool, target int) []bool {
	out := make([]bool, len(expanded))
	if target < 0 || target >= len(expanded) {
		copy(out, expanded)
		return out
	}
	if !expanded[target] {
		out[target] = true
	}
	return out
}

// Accordion holds the expansion flags for one open syllabus. At most one
// topic is expanded at a time.
type Accordion struct {
	expanded []bool
}

// NewAccordion returns an accordion over n topics with the first one
// expanded, or nothing expanded when n is zero.
func NewAccordion(n int) Accordion {
	a := Accordion{expanded: make([]bool, n)}
	if n > 0 {
		a.expanded[0] = true
	}
	return a
}

// Toggle handles a click on the header of topic i.
func (a *Accordion) Toggle(i int) {
	a.expanded = ToggleTopic(a.expanded, i)
}

// IsExpanded reports whether topic i is expanded.
func (a Accordion) IsExpanded(i int) bool {
	return i >= 0 && i < len(a.expanded) && a.expanded[i]
}

// Expanded returns the index of the expanded topic, or -1.
func (a Accordion) Expanded() int {
	for i, open := range a.expanded {
		if open {
			return i
		}
	}
	return -1
}

// Len returns the number of topics.
func (a Accordion) Len() int {
	return len(a.expanded)
}
