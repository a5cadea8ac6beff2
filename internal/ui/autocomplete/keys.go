package autocomplete

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the only keys the widget reacts to; everything else is
// typed into the input.
type KeyMap struct {
	Next     key.Binding
	Previous key.Binding
	Confirm  key.Binding
}

// DefaultKeyMap binds arrow down/up and enter
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Previous, k.Confirm}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
