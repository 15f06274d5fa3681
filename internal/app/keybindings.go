package app

import "github.com/charmbracelet/bubbles/key"

// keyMap declares the dashboard's keyboard surface. Quit is the only
// action; every other key is ignored.
type keyMap struct {
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// quitHint renders the help text shown in the corner of the usable region,
// e.g. "q to quit".
func (k keyMap) quitHint() string {
	help := k.Quit.Help()
	return help.Key + " to " + help.Desc
}
