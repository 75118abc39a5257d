// package dataset implements predicate filtering over employee rows
package dataset

import "github.com/ospreyhr/attriview/internal/models"

// All is the selector escape value that disables a categorical filter.
const All = "All"

// Filter holds the sidebar filter state. The zero value matches every row.
type Filter struct {
	IDQuery  string // case-insensitive substring on Employee_ID
	Hometown string // exact match, "" or All disables
	Unit     string // exact match, "" or All disables
}

// Match reports whether a single row passes every active predicate.
func (f Filter) Match(e models.Employee) bool {
	if f.IDQuery != "" && !e.MatchID(f.IDQuery) {
		return false
	}
	if f.Hometown != "" && f.Hometown != All && e.Hometown != f.Hometown {
		return false
	}
	if f.Unit != "" && f.Unit != All && e.Unit != f.Unit {
		return false
	}
	return true
}

// Apply returns the rows passing the filter, preserving input order. Derived
// views are recomputed from the current filter state on every interaction, so
// the input slice is never mutated.
func (f Filter) Apply(rows []models.Employee) []models.Employee {
	if f == (Filter{}) {
		return rows
	}
	out := make([]models.Employee, 0, len(rows))
	for _, row := range rows {
		if f.Match(row) {
			out = append(out, row)
		}
	}
	return out
}

// Options prepends the All escape value to a selector's value list.
func Options(values []string) []string {
	return append([]string{All}, values...)
}
