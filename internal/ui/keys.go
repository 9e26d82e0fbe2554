package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	Grab      key.Binding
	Cancel    key.Binding
	Edit      key.Binding
	New       key.Binding
	ViewAll   key.Binding
	MoveTo    key.Binding
	Reload    key.Binding
	Dismiss   key.Binding
	SignOut   key.Binding
	Quit      key.Binding
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Save      key.Binding
	Delete    key.Binding
}

var DefaultKeyMap = KeyMap{
	Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "column")),
	Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "column")),
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "card")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "card")),
	Grab:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pick up / drop")),
	Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	Edit:      key.NewBinding(key.WithKeys("enter", "e"), key.WithHelp("enter", "edit")),
	New:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new job")),
	ViewAll:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view all")),
	MoveTo:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "move to")),
	Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Dismiss:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss error")),
	SignOut:   key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "sign out")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	NextField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	PrevField: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
	Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add job")),
	Save:      key.NewBinding(key.WithKeys("ctrl+s", "enter"), key.WithHelp("ctrl+s", "save")),
	Delete:    key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete")),
}

// ShortHelp implements help.KeyMap for the board view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Up, k.Grab, k.Edit, k.New, k.ViewAll, k.MoveTo, k.Reload, k.SignOut, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Grab, k.Cancel, k.Edit, k.MoveTo},
		{k.New, k.ViewAll, k.Reload, k.Dismiss},
		{k.SignOut, k.Quit},
	}
}
