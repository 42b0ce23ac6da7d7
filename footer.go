package hrquery

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"hrquery/style"
)

// RenderFooter renders a footer with position and count on the left and the store on the right.
func RenderFooter(current, total int, name string, width int) string {

	left := fmt.Sprintf("%d/%d", current, total)
	return style.MutedStyle.Render(spread(left, name, width))
}

// RenderActions renders the keys available while editing.
func RenderActions(creating bool, width int) string {

	left := "ctrl+s save  esc cancel  tab next field"
	right := "editing"
	if creating {
		right = "new record"
	}
	return style.ActionStyle.Render(spread(left, right, width))
}

// RenderHelp renders the keys available while browsing.
func RenderHelp(width int) string {
	return style.MutedStyle.Render(spread("c create  e edit  d remove  r refresh  q quit", "", width))
}

// RenderConfirm renders the remove prompt.
func RenderConfirm(count int) string {

	noun := "record"
	if count != 1 {
		noun = "records"
	}
	prompt := fmt.Sprintf("Remove %d %s? y/n", count, noun)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.ErrorStyle.GetForeground()).
		Padding(0, 2).
		Render(prompt)
}

// spread pads between left and right to fill width
func spread(left, right string, width int) string {

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}
	return left + strings.Repeat(" ", padding) + right
}
