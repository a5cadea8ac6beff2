// Package autocomplete implements a searchable dropdown for Bubble Tea.
//
// The widget owns a text input, an ordered result list and a readout of the
// last confirmed choice. Typing resolves the query asynchronously through a
// source.QuerySource; arrow keys move a highlight over the rendered rows and
// enter (or a click on a row) confirms it.
package autocomplete

import (
	"context"
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tuicomplete/internal/domain"
	"tuicomplete/internal/eventbus"
	"tuicomplete/internal/source"
)

const DefaultNumOfResults = 10

// Options configures a widget
type Options struct {
	Source       source.QuerySource // required
	NumOfResults int                // defaults to DefaultNumOfResults
	OnSelect     func(value any)    // called once per confirmed selection
	Placeholder  string
	Prompt       string

	// Strict drops resolutions that finish after a newer query was issued.
	// Without it the last resolution to arrive wins, whatever its age.
	Strict bool

	Bus     eventbus.EventBus // optional
	Context context.Context   // passed to the source, defaults to Background
	KeyMap  *KeyMap
	Styles  *Styles
}

// ResultsMsg carries a finished resolution back to the widget that issued it
type ResultsMsg struct {
	ID      string
	Seq     uint64
	Query   string
	Results domain.ResultSet
}

// Model is one autocomplete widget
type Model struct {
	id           string
	input        textinput.Model
	list         resultList
	index        int
	readout      string
	query        string // query of the rendered list
	seq          uint64 // last issued query
	src          source.QuerySource
	numOfResults int
	onSelect     func(value any)
	strict       bool
	bus          eventbus.EventBus
	ctx          context.Context
	keys         KeyMap
	styles       Styles
	width        int
}

// New creates a widget. id must be unique among the widgets of one program
// because results are routed back by it.
func New(id string, opts Options) (*Model, error) {
	if opts.Source == nil {
		return nil, fmt.Errorf("autocomplete %q: a query source is required", id)
	}

	n := opts.NumOfResults
	if n <= 0 {
		n = DefaultNumOfResults
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	keys := DefaultKeyMap()
	if opts.KeyMap != nil {
		keys = *opts.KeyMap
	}
	styles := DefaultStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}

	ti := textinput.New()
	ti.Placeholder = opts.Placeholder
	ti.Prompt = opts.Prompt
	if ti.Prompt == "" {
		ti.Prompt = "> "
	}
	ti.PromptStyle = styles.Prompt

	return &Model{
		id:           id,
		input:        ti,
		index:        -1,
		src:          opts.Source,
		numOfResults: n,
		onSelect:     opts.OnSelect,
		strict:       opts.Strict,
		bus:          opts.Bus,
		ctx:          ctx,
		keys:         keys,
		styles:       styles,
	}, nil
}

func (m *Model) ID() string { return m.id }

// SelectedIndex is the highlighted row, or -1
func (m *Model) SelectedIndex() int { return m.index }

// Results returns the rendered result set in display order
func (m *Model) Results() domain.ResultSet { return m.list.results() }

// Readout is the text of the last confirmed selection
func (m *Model) Readout() string { return m.readout }

// Value is the current input text
func (m *Model) Value() string { return m.input.Value() }

func (m *Model) KeyMap() KeyMap { return m.keys }

func (m *Model) Focus() tea.Cmd { return m.input.Focus() }

func (m *Model) Blur() { m.input.Blur() }

func (m *Model) Focused() bool { return m.input.Focused() }

// SetCursorMode switches the input cursor between blinking, static and hidden
func (m *Model) SetCursorMode(mode cursor.Mode) tea.Cmd {
	return m.input.Cursor.SetMode(mode)
}

func (m *Model) SetWidth(w int) {
	m.width = w
	m.input.Width = w - lipgloss.Width(m.input.Prompt) - 1
}

// Update handles key presses while focused and the widget's own ResultsMsg
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ResultsMsg:
		if msg.ID == m.id {
			m.applyResults(msg)
		}
		return m, nil

	case tea.KeyMsg:
		if !m.input.Focused() {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Next):
			m.next()
			return m, nil
		case key.Matches(msg, m.keys.Previous):
			m.previous()
			return m, nil
		case key.Matches(msg, m.keys.Confirm):
			// Always consumed, even when nothing is highlighted
			m.confirm()
			return m, nil
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if after := m.input.Value(); after != before {
			return m, tea.Batch(cmd, m.Query(after))
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Query starts a resolution for q. An empty query is resolved on the spot
// and returns a nil command.
func (m *Model) Query(q string) tea.Cmd {
	m.seq++
	seq := m.seq

	if q == "" {
		m.applyResults(ResultsMsg{ID: m.id, Seq: seq, Query: q, Results: domain.ResultSet{}})
		return nil
	}

	src, ctx, id := m.src, m.ctx, m.id
	return func() tea.Msg {
		return ResultsMsg{ID: id, Seq: seq, Query: q, Results: src.Resolve(ctx, q)}
	}
}

// ClickRow confirms the row at index i, as a mouse click would
func (m *Model) ClickRow(i int) {
	if c, ok := m.list.candidate(i); ok {
		m.choose(c)
	}
}

// RowAt maps a line of View() to a row index, or -1
func (m *Model) RowAt(line int) int {
	i := line - 1 // input line comes first
	if m.list.valid(i) {
		return i
	}
	return -1
}

func (m *Model) applyResults(msg ResultsMsg) {
	if m.strict && msg.Seq < m.seq {
		log.Printf("autocomplete %s: dropping results for %q (seq %d, latest %d)", m.id, msg.Query, msg.Seq, m.seq)
		if m.bus != nil {
			m.bus.Publish(eventbus.StaleResultsEvent{Widget: m.id, Query: msg.Query, Seq: msg.Seq, Latest: m.seq})
		}
		return
	}

	m.list.render(msg.Results.Truncate(m.numOfResults))
	m.query = msg.Query
	m.index = -1
}

// View renders the input, the result rows and the readout
func (m *Model) View() string {
	view := m.input.View() + "\n"

	switch {
	case m.list.len() > 0:
		view += m.list.view(m.styles, m.width) + "\n"
	case m.query != "":
		view += m.styles.NoResults.Render("no matches") + "\n"
	}

	view += m.styles.ReadoutLabel.Render("selected: ") + m.styles.Readout.Render(m.readout)
	return view
}
