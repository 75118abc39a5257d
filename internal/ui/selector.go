package ui

import "fmt"

// selector is a single-select sidebar control cycling through a fixed value
// list with left/right. Index 0 is expected to be the "All" escape value.
type selector struct {
	label   string
	options []string
	idx     int
}

func newSelector(label string, options []string) *selector {
	return &selector{label: label, options: options}
}

// Value returns the selected option, or "" when the selector is empty.
func (s *selector) Value() string {
	if len(s.options) == 0 {
		return ""
	}
	return s.options[s.idx]
}

func (s *selector) Next() {
	if len(s.options) > 0 {
		s.idx = (s.idx + 1) % len(s.options)
	}
}

func (s *selector) Prev() {
	if len(s.options) > 0 {
		s.idx = (s.idx + len(s.options) - 1) % len(s.options)
	}
}

func (s *selector) View(focused bool) string {
	line := fmt.Sprintf("%s: ◀ %s ▶", s.label, s.Value())
	if focused {
		return styles.focused.Render(line)
	}
	return line
}
