package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding; the per-view help maps below pick from it.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Form   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Cancel key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace", "left", "h"),
			key.WithHelp("esc", "back"),
		),
		Form: key.NewBinding(
			key.WithKeys("tab", "a"),
			key.WithHelp("tab", "edit form"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave form"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// browseKeyMap is shown while browsing categories
type browseKeyMap struct{ k keyMap }

// ShortHelp returns keybindings to be shown in the mini help view
func (b browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{b.k.Select, b.k.Form, b.k.Reload, b.k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (b browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{b.k.Up, b.k.Down, b.k.Select},
		{b.k.Form, b.k.Reload, b.k.Help, b.k.Quit},
	}
}

// listKeyMap is shown on the item list and the feedback page
type listKeyMap struct {
	k       keyMap
	canOpen bool
}

// ShortHelp returns keybindings to be shown in the mini help view
func (l listKeyMap) ShortHelp() []key.Binding {
	if l.canOpen {
		return []key.Binding{l.k.Select, l.k.Back, l.k.Quit}
	}
	return []key.Binding{l.k.Form, l.k.Back, l.k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (l listKeyMap) FullHelp() [][]key.Binding {
	if l.canOpen {
		return [][]key.Binding{
			{l.k.Up, l.k.Down, l.k.Select},
			{l.k.Back, l.k.Help, l.k.Quit},
		}
	}
	return [][]key.Binding{
		{l.k.Form, l.k.Back},
		{l.k.Help, l.k.Quit},
	}
}

// formKeyMap is shown while a form field has focus
type formKeyMap struct {
	k          keyMap
	multiField bool
}

// ShortHelp returns keybindings to be shown in the mini help view
func (f formKeyMap) ShortHelp() []key.Binding {
	if f.multiField {
		return []key.Binding{f.k.Submit, f.k.Next, f.k.Cancel}
	}
	return []key.Binding{f.k.Submit, f.k.Cancel}
}

// FullHelp returns keybindings for the expanded help view
func (f formKeyMap) FullHelp() [][]key.Binding {
	if f.multiField {
		return [][]key.Binding{{f.k.Submit, f.k.Next, f.k.Prev, f.k.Cancel}}
	}
	return [][]key.Binding{{f.k.Submit, f.k.Cancel}}
}

// busyKeyMap is shown while a request is running
type busyKeyMap struct{ k keyMap }

// ShortHelp returns keybindings to be shown in the mini help view
func (b busyKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{b.k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (b busyKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{b.k.Quit}}
}
