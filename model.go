package hrquery

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"hrquery/browse"
	"hrquery/collection"
	"hrquery/detail"
	nt "hrquery/entity"
	"hrquery/message"
	"hrquery/table"
)

// Model is the bubbletea model for the hr query screen.
type Model struct {
	ctx          context.Context
	logger       nt.Logger
	store        Store
	errorString  string
	statusString string

	controller *browse.Controller
	list       *collection.Source
	form       *detail.Form

	CurrentScreen Screen

	TablePanel  table.TablePanel
	DetailPanel DetailPanel

	Width  int
	Height int
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case message.ErrorMsg:
		m.logger.Error(m.ctx, "operation failed", msg.Err, "screen", m.CurrentScreen)
		m.errorString = msg.Err.Error()
		return m, nil

	case message.StatusMsg:
		m.statusString = msg.Text
		return m, nil

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m.resize(), nil

	case tea.KeyPressMsg:
		m.errorString = ""
		m.statusString = ""

		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		var cmd tea.Cmd
		switch {
		case m.CurrentScreen == ConfirmScreen:
			m, cmd = m.confirmKey(msg.String())
		case m.controller.FormEditable():
			m, cmd = m.editKey(msg)
		default:
			m, cmd = m.browseKey(msg)
		}
		return m, cmd
	}

	return m, nil
}

func (m Model) View() tea.View {
	if m.Width == 0 {
		return tea.NewView("Loading...")
	}

	tableWidth, _ := panelSizes(m.Width, m.TablePanel.Width())
	tableLayer := lipgloss.NewLayer("table", m.TablePanel.Render())
	detailLayer := lipgloss.NewLayer("detail", m.DetailPanel.Render(m.title())).
		X(tableWidth + gutter)

	// Action pane above footer while editing, key help otherwise
	bar := RenderHelp(m.Width)
	if editing, creating := m.controller.Editing(); editing {
		bar = RenderActions(creating, m.Width)
	}
	barLayer := lipgloss.NewLayer("actions", bar).Y(m.Height - footerHeight - actionHeight)

	footerContent := RenderFooter(m.list.Cursor()+1, m.list.Len(), m.store.Name(), m.Width)
	switch {
	case m.errorString != "":
		footerContent = m.errorString
	case m.statusString != "":
		footerContent = m.statusString
	}
	footerLayer := lipgloss.NewLayer("footer", footerContent).Y(m.Height - footerHeight)

	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(tableLayer)
	canvas.Compose(detailLayer)
	canvas.Compose(barLayer)
	canvas.Compose(footerLayer)

	if m.CurrentScreen == ConfirmScreen {
		prompt := RenderConfirm(len(m.list.Selected()))
		x := max(0, (m.Width-lipgloss.Width(prompt))/2)
		y := max(0, (m.Height-lipgloss.Height(prompt))/2)
		canvas.Compose(lipgloss.NewLayer("confirm", prompt).X(x).Y(y))
	}

	view := tea.NewView(canvas)
	view.AltScreen = true
	return view
}

// Controller returns the browse/edit controller driving the screen.
func (m Model) Controller() *browse.Controller {
	return m.controller
}

// unexported

func (m Model) resize() Model {

	height := m.Height - footerHeight - actionHeight
	tableWidth, detailWidth := panelSizes(m.Width, m.TablePanel.Width())

	m.TablePanel, _ = m.TablePanel.Update(table.SizeMsg{Width: tableWidth, Height: height})
	m.DetailPanel, _ = m.DetailPanel.Update(tea.WindowSizeMsg{Width: detailWidth, Height: height})
	return m
}

func (m Model) title() string {

	editing, creating := m.controller.Editing()
	switch {
	case creating:
		return "New HR Query"
	case editing:
		return "Edit HR Query"
	}
	return "HR Query"
}
