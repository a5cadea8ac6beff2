package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Section is one labelled block of the screen
type Section struct {
	Label   string
	Focused bool
	Body    string
}

// Layout renders the title, each section and a footer, and remembers on
// which screen line every section body starts so mouse clicks can be mapped
// back to it.
type Layout struct {
	styles  *Styles
	bodyTop []int
	bodyLen []int
}

func NewLayout(styles *Styles) *Layout {
	return &Layout{styles: styles}
}

// Render lays out sections top to bottom. A non-empty status is shown
// between the last section and the footer.
func (l *Layout) Render(title string, sections []Section, status, footer string) string {
	l.bodyTop = l.bodyTop[:0]
	l.bodyLen = l.bodyLen[:0]

	var b strings.Builder
	header := l.styles.Title.Render(title)
	b.WriteString(header)
	b.WriteString("\n")
	line := l.styles.Main.GetPaddingTop() + lipgloss.Height(header)

	for _, s := range sections {
		label := l.styles.Label
		marker := "  "
		if s.Focused {
			label = l.styles.FocusedLabel
			marker = "▸ "
		}
		b.WriteString(label.Render(marker + s.Label))
		b.WriteString("\n")
		line++

		b.WriteString(s.Body)
		b.WriteString("\n\n")
		height := lipgloss.Height(s.Body)
		l.bodyTop = append(l.bodyTop, line)
		l.bodyLen = append(l.bodyLen, height)
		line += height + 1
	}

	if status != "" {
		b.WriteString(l.styles.Status.Render(status))
		b.WriteString("\n")
	}
	if footer != "" {
		b.WriteString(l.styles.Help.Render(footer))
	}

	return l.styles.Main.Render(b.String())
}

// Hit returns the section under screen line y and the line offset inside
// its body. ok is false when y is outside every body.
func (l *Layout) Hit(y int) (section, offset int, ok bool) {
	for i, top := range l.bodyTop {
		if y >= top && y < top+l.bodyLen[i] {
			return i, y - top, true
		}
	}
	return -1, 0, false
}
