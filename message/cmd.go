package message

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
)

// ErrorCmd returns a command delivering err, nil when there is no error.
func ErrorCmd(err error) tea.Cmd {
	if err == nil {
		return nil
	}

	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

// StatusCmd returns a command delivering a formatted status note.
func StatusCmd(format string, args ...any) tea.Cmd {

	text := fmt.Sprintf(format, args...)
	return func() tea.Msg {
		return StatusMsg{Text: text}
	}
}
