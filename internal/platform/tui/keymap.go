package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// KeyMap translates Bubble Tea key messages to game actions.
// Bindings are enabled per phase, so the help line only shows what
// currently does something.
type KeyMap struct {
	Start      key.Binding
	Flap       key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	km := KeyMap{
		Start: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space/enter", "start"),
		),
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/up/w", "flap"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
	km.SetPhase(core.PhaseWaiting)
	return km
}

// SetPhase enables the bindings that apply to the given phase.
func (k *KeyMap) SetPhase(p core.Phase) {
	k.Start.SetEnabled(p == core.PhaseWaiting)
	k.Flap.SetEnabled(p == core.PhaseRunning)
	k.Restart.SetEnabled(p == core.PhaseGameOver)
	k.Screenshot.SetEnabled(p != core.PhaseTerminated)
}

// Action returns the action bound to msg, or ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Start):
		return core.ActionConfirm
	case key.Matches(msg, k.Flap):
		return core.ActionJump
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Screenshot):
		return core.ActionScreenshot
	}
	return core.ActionNone
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Flap, k.Restart, k.Screenshot, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Flap, k.Restart},
		{k.Screenshot, k.Quit},
	}
}
