package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"tuicomplete/internal/ui/autocomplete"
)

type keyMap struct {
	widget    autocomplete.KeyMap
	NextField key.Binding
	PrevField key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		widget: autocomplete.DefaultKeyMap(),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return append(k.widget.ShortHelp(), k.NextField, k.Help, k.Quit)
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.widget.ShortHelp(),
		{k.NextField, k.PrevField, k.Help, k.Quit},
	}
}
