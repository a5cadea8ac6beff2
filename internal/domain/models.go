package domain

import "strings"

// Candidate is one selectable item
type Candidate struct {
	Text  string // shown in the list and matched against the query
	Value any    // handed to the selection callback, never rendered
}

// Dataset is an ordered, in-memory list of candidates
type Dataset []Candidate

// ResultSet is the ordered output of one query resolution
type ResultSet []Candidate

// Filter returns the candidates whose text contains query, ignoring case.
// Dataset order is preserved.
func (d Dataset) Filter(query string) ResultSet {
	q := strings.ToLower(query)
	results := ResultSet{}
	for _, c := range d {
		if strings.Contains(strings.ToLower(c.Text), q) {
			results = append(results, c)
		}
	}
	return results
}

// Truncate returns at most n leading entries. n <= 0 means no limit.
func (r ResultSet) Truncate(n int) ResultSet {
	if n <= 0 || len(r) <= n {
		return r
	}
	return r[:n]
}

// Texts returns the display text of every entry
func (r ResultSet) Texts() []string {
	texts := make([]string, len(r))
	for i, c := range r {
		texts[i] = c.Text
	}
	return texts
}
