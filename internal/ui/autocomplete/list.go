package autocomplete

import (
	"strings"

	"tuicomplete/internal/domain"
)

// row is one rendered entry. selected mirrors the highlight style the row
// is currently drawn with.
type row struct {
	candidate domain.Candidate
	selected  bool
}

// resultList is the rendered view of the current result set
type resultList struct {
	rows []row
}

// render drops every existing row and builds one per result, in order
func (l *resultList) render(results domain.ResultSet) {
	l.rows = make([]row, 0, len(results))
	for _, c := range results {
		l.rows = append(l.rows, row{candidate: c})
	}
}

func (l *resultList) len() int {
	return len(l.rows)
}

func (l *resultList) valid(i int) bool {
	return i >= 0 && i < len(l.rows)
}

// setSelected changes the style of row i; out of range is ignored
func (l *resultList) setSelected(i int, selected bool) {
	if l.valid(i) {
		l.rows[i].selected = selected
	}
}

func (l *resultList) candidate(i int) (domain.Candidate, bool) {
	if !l.valid(i) {
		return domain.Candidate{}, false
	}
	return l.rows[i].candidate, true
}

func (l *resultList) results() domain.ResultSet {
	results := make(domain.ResultSet, len(l.rows))
	for i, r := range l.rows {
		results[i] = r.candidate
	}
	return results
}

func (l *resultList) view(styles Styles, width int) string {
	var b strings.Builder
	for i, r := range l.rows {
		style := styles.Result
		if r.selected {
			style = styles.SelectedResult
		}
		if width > 0 {
			style = style.MaxWidth(width)
		}
		b.WriteString(style.Render(r.candidate.Text))
		if i < len(l.rows)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
