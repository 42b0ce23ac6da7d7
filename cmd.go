package hrquery

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"hrquery/message"
)

// browseKey handles keys while the list is interactive
func (m Model) browseKey(msg tea.KeyPressMsg) (Model, tea.Cmd) {

	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit

	case "c":
		return m.run(m.controller.Create)

	case "e", "enter":
		return m.run(m.controller.Edit)

	case "d", "delete":
		if len(m.list.Selected()) > 0 {
			m.CurrentScreen = ConfirmScreen
		}
		return m, nil

	case "r":
		return m.run(m.refresh)

	case "pgup", "pgdown", "ctrl+u", "ctrl+d":
		var cmd tea.Cmd
		m.DetailPanel, cmd = m.DetailPanel.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.TablePanel, cmd = m.TablePanel.Update(msg)
	return m, cmd
}

// editKey handles keys while the form is editable
func (m Model) editKey(msg tea.KeyPressMsg) (Model, tea.Cmd) {

	switch msg.String() {
	case "ctrl+s":
		return m.run(m.controller.Save)

	case "esc":
		return m.run(m.controller.Cancel)
	}

	return m, m.form.Update(msg)
}

// confirmKey answers the remove prompt
func (m Model) confirmKey(key string) (Model, tea.Cmd) {

	m.CurrentScreen = MainScreen
	if key != "y" && key != "Y" {
		return m, nil
	}

	count := len(m.list.Selected())
	m, cmd := m.run(m.controller.Remove)
	if cmd != nil {
		return m, cmd
	}
	return m, message.StatusCmd("removed %d", count)
}

// run performs an operation, syncing the table with the controller's mode
func (m Model) run(op func(ctx context.Context) error) (Model, tea.Cmd) {

	err := op(m.ctx)
	m.TablePanel = m.TablePanel.SetInteractive(m.controller.ListInteractive()).Follow()

	return m, message.ErrorCmd(err)
}

// refresh reloads the list and the record shown in detail
func (m Model) refresh(ctx context.Context) (err error) {

	err = m.list.Refresh(ctx)
	if err != nil {
		return
	}

	return m.controller.SelectRow(ctx, m.list.Item())
}
