package hrquery

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"hrquery/detail"
	"hrquery/style"
)

// DetailPanel shows the form for the record held by the detail source.
type DetailPanel struct {
	form *detail.Form

	// Display state
	Width        int
	Height       int
	ScrollOffset int // Line offset for scrolling content
}

func NewDetailPanel(form *detail.Form) DetailPanel {
	return DetailPanel{
		form: form,
	}
}

func (pnl DetailPanel) Update(msg tea.Msg) (DetailPanel, tea.Cmd) {

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		pnl.Width = msg.Width
		pnl.Height = msg.Height
		pnl.ScrollOffset = 0

	case tea.KeyPressMsg:
		if pnl.form.Editable() {
			return pnl, nil
		}

		switch msg.String() {
		case "pgup", "ctrl+u":
			if pnl.ScrollOffset > 0 {
				pnl.ScrollOffset--
			}
		case "pgdown", "ctrl+d":
			pnl.ScrollOffset++
		}
	}

	return pnl, nil
}

// Render renders the title and the visible part of the form.
func (pnl DetailPanel) Render(title string) string {

	content := style.CaptionStyle.Render(title) + "\n\n" + pnl.form.View()
	lines := strings.Split(content, "\n")

	offset := pnl.ScrollOffset
	if pnl.form.Editable() || offset >= len(lines) {
		offset = 0
	}

	visible := lines[offset:]
	if pnl.Height > 0 && len(visible) > pnl.Height {
		visible = visible[:pnl.Height]
	}

	return style.PanelStyle.Width(pnl.Width).Render(strings.Join(visible, "\n"))
}
