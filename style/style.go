package style

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

var (
	TableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // Subtle warm grey border
	HlRowStyle       = lipgloss.NewStyle().Background(lipgloss.Color("235")) // Very subtle warm grey row
	SelRowStyle      = lipgloss.NewStyle().Background(lipgloss.Color("238")) // Selected but not under cursor
	HlCellStyle      = lipgloss.NewStyle().Background(lipgloss.Color("237")) // Slightly warmer cell
	MutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("246")) // Warm muted grey text
	DisabledStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	CaptionStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true)
	InputStyle       = lipgloss.NewStyle().Underline(true)
	CursorStyle      = lipgloss.NewStyle().Reverse(true)
	ErrorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	ActionStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	PanelStyle       = lipgloss.NewStyle().Padding(0, 1)
	UnStyle          = lipgloss.NewStyle()
)

// RowStyler returns a StyleFunc that highlights the cursor row and selected rows.
// Rows are counted from the first data row; the header is row -1.
func RowStyler(cursor int, selected func(row int) bool, disabled bool) func(row, col int) lipgloss.Style {
	return func(row, col int) lipgloss.Style {
		switch {
		case disabled:
			return DisabledStyle
		case row == cursor:
			return HlRowStyle
		case row >= 0 && selected(row):
			return SelRowStyle
		}
		return UnStyle
	}
}

// StyleTable applies consistent table styling for borders and separators
func StyleTable(tbl *table.Table) {
	tbl.Border(lipgloss.Border{
		Top:         "─", // Horizontal parts of separator
		Middle:      "─", // Between columns in separator
		MiddleLeft:  "─", // Left edge of separator
		MiddleRight: "─", // Right edge of separator
	}).
		BorderTop(false).    // Disable top border
		BorderBottom(false). // Disable bottom border
		BorderLeft(false).   // Disable left border
		BorderRight(false).  // Disable right border
		BorderColumn(false). // Disable column separators
		BorderStyle(TableBorderStyle)
}
