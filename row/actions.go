package row

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Action is one secondary action offered by a row, rendered inline or
// behind the disclosure toggle.
type Action struct {
	ID       string
	Label    string
	Disabled bool

	// OnAction produces the command to run when the action is invoked.
	// May be nil for display-only entries.
	OnAction func() tea.Cmd
}

// Invoke runs the action. Disabled or handler-less actions return nil.
func (a Action) Invoke() tea.Cmd {
	if a.Disabled || a.OnAction == nil {
		return nil
	}
	return a.OnAction()
}

// CopiedMsg reports the result of a CopyAction invocation.
type CopiedMsg struct {
	ID  string
	Err error
}

// CopyAction returns a stock action that copies text to the system
// clipboard and reports the outcome as a CopiedMsg.
func CopyAction(id, label, text string) Action {
	return Action{
		ID:    id,
		Label: label,
		OnAction: func() tea.Cmd {
			return func() tea.Msg {
				return CopiedMsg{ID: id, Err: clipboard.WriteAll(text)}
			}
		},
	}
}
