package autocomplete

import (
	"tuicomplete/internal/domain"
	"tuicomplete/internal/eventbus"
)

// next moves the highlight down, wrapping to the first row
func (m *Model) next() {
	count := m.list.len()
	index := -1
	if m.index < count-1 {
		index = m.index + 1
	} else if count > 0 {
		index = 0
	}
	m.goTo(index)
}

// previous moves the highlight up. From nothing or the first row it wraps
// to the last row.
func (m *Model) previous() {
	count := m.list.len()
	index := m.index - 1
	if m.index == -1 || m.index == 0 {
		index = count - 1
	}
	m.goTo(index)
}

// goTo restyles the row at the old index before the index is overwritten,
// then highlights the target.
func (m *Model) goTo(index int) {
	m.list.setSelected(m.index, false)
	m.list.setSelected(index, true)
	m.index = index
}

// confirm selects the highlighted row, if any
func (m *Model) confirm() {
	c, ok := m.list.candidate(m.index)
	if !ok {
		return
	}
	m.choose(c)
}

// choose reports the candidate and closes the cycle
func (m *Model) choose(c domain.Candidate) {
	if m.onSelect != nil {
		m.onSelect(c.Value)
	}
	if m.bus != nil {
		m.bus.Publish(eventbus.SelectionConfirmedEvent{Widget: m.id, Text: c.Text, Value: c.Value})
	}
	m.selectText(c.Text)
}

// selectText shows text in the readout, clears the highlight and resets the index
func (m *Model) selectText(text string) {
	m.readout = text
	m.list.setSelected(m.index, false)
	m.index = -1
}
