package ui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tuicomplete/internal/config"
	"tuicomplete/internal/ui/autocomplete"
	"tuicomplete/internal/ui/views"
)

// Field is one labelled autocomplete on the screen
type Field struct {
	Label  string
	Widget *autocomplete.Model
}

// Model hosts several independent autocomplete widgets, one focused at a time
type Model struct {
	fields []Field
	focus  int

	width  int
	height int

	keys     keyMap
	help     help.Model
	styles   *views.Styles
	layout   *views.Layout
	settings config.UISettings
	status   string // last help pager failure, cleared by the next attempt

	inPagerMode bool
	helpOps     *HelpOps
	program     *tea.Program
}

// NewModel creates the host model. The first field starts focused.
func NewModel(settings config.UISettings, fields ...Field) *Model {
	styles := views.NewStyles()
	m := &Model{
		fields:   fields,
		keys:     defaultKeyMap(),
		help:     help.New(),
		styles:   styles,
		layout:   views.NewLayout(styles),
		settings: settings,
	}
	if len(m.fields) > 0 {
		m.fields[0].Widget.Focus()
	}
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Focused returns the index of the focused field
func (m *Model) Focused() int {
	return m.focus
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	if len(m.fields) == 0 {
		return nil
	}
	return m.fields[m.focus].Widget.Focus()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		for _, f := range m.fields {
			f.Widget.SetWidth(msg.Width - 6)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextField):
			return m, m.focusField(m.focus + 1)
		case key.Matches(msg, m.keys.PrevField):
			return m, m.focusField(m.focus - 1)
		case key.Matches(msg, m.keys.Help):
			return m, m.showHelpPager()
		}
		if len(m.fields) == 0 {
			return m, nil
		}
		_, cmd := m.fields[m.focus].Widget.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case autocomplete.ResultsMsg:
		for _, f := range m.fields {
			if f.Widget.ID() == msg.ID {
				f.Widget.Update(msg)
			}
		}
		return m, nil

	case helpPagerMsg:
		m.status = ""
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
			m.status = fmt.Sprintf("help unavailable: %v", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil
	}

	// Cursor blink and similar messages belong to the focused input
	if len(m.fields) == 0 {
		return m, nil
	}
	_, cmd := m.fields[m.focus].Widget.Update(msg)
	return m, cmd
}

func (m *Model) focusField(i int) tea.Cmd {
	if len(m.fields) == 0 {
		return nil
	}
	i = (i + len(m.fields)) % len(m.fields)
	if i == m.focus {
		return nil
	}
	m.fields[m.focus].Widget.Blur()
	m.focus = i
	return m.fields[i].Widget.Focus()
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	section, offset, ok := m.layout.Hit(msg.Y)
	if !ok {
		return nil
	}
	cmd := m.focusField(section)
	w := m.fields[section].Widget
	if row := w.RowAt(offset); row >= 0 {
		w.ClickRow(row)
	}
	return cmd
}

// showHelpPager returns a command that shows help using ov pager
func (m *Model) showHelpPager() tea.Cmd {
	if m.program == nil {
		return nil
	}
	content := NewHelpRenderer(m.keys).RenderHelpContent()
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(content)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	sections := make([]views.Section, len(m.fields))
	for i, f := range m.fields {
		sections[i] = views.Section{
			Label:   f.Label,
			Focused: i == m.focus,
			Body:    f.Widget.View(),
		}
	}

	footer := ""
	if m.settings.ShowHelpFooter {
		footer = m.help.View(m.keys)
	}

	return m.layout.Render("tuicomplete", sections, m.status, footer)
}
