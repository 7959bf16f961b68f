package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextTab    key.Binding
	PrevTab    key.Binding
	JumpTab    key.Binding
	StripLeft  key.Binding
	StripRight key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		JumpTab: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "jump"),
		),
		StripLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "popular"),
		),
		StripRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "popular"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up", "k", "pgup"),
			key.WithHelp("↑/k", "scroll"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down", "j", "pgdown"),
			key.WithHelp("↓/j", "scroll"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.JumpTab, k.StripLeft, k.StripRight, k.ScrollDown, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.JumpTab},
		{k.StripLeft, k.StripRight, k.ScrollUp, k.ScrollDown},
		{k.Quit},
	}
}
