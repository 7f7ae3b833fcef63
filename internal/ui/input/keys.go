package input

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all viewer key bindings with built-in help text.
type KeyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding

	// Pages
	Home     key.Binding
	Projects key.Binding
	About    key.Binding
	Contact  key.Binding

	// Scrolling
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Scroll   key.Binding // legend entry for Up/Down
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "Quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Help"),
		),

		Home: key.NewBinding(
			key.WithKeys("h", "home"),
			key.WithHelp("h", "Home"),
		),
		Projects: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Projects"),
		),
		About: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "About"),
		),
		Contact: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Contact"),
		),

		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "Scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "Scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "Page down"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("↑↓", "Scroll"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer legend
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Projects, k.About, k.Contact, k.Home, k.Quit, k.Scroll}
}

// FullHelp returns the grouped bindings shown in the help pager
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.Projects, k.About, k.Contact},
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
