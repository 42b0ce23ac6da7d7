package table

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2/table"

	"hrquery/collection"
	nt "hrquery/entity"
	"hrquery/style"
)

// Todo: pgup/pgdown once the list can move by more than a row

const (
	headerHeight = 2
)

// TablePanel shows the list of records and drives its cursor and selection.
type TablePanel struct {
	offset      int // index of first row shown
	interactive bool

	width  int
	height int

	columns []nt.Column
	list    *collection.Source
	table   *table.Table

	ctx    context.Context
	logger nt.Logger
}

func New(ctx context.Context, list *collection.Source, columns []nt.Column, lgr nt.Logger) TablePanel {

	lgt := table.New()
	style.StyleTable(lgt)

	tablePanel := TablePanel{
		interactive: true,
		list:        list,
		table:       lgt,
		ctx:         ctx,
		logger:      lgr,
	}

	return tablePanel.setColumns(columns)
}

func (pnl TablePanel) Init() tea.Cmd {
	return nil
}

// SetInteractive enables or disables navigation, dimming the rows when disabled.
func (pnl TablePanel) SetInteractive(interactive bool) TablePanel {
	pnl.interactive = interactive
	return pnl
}

func (pnl TablePanel) Interactive() bool {
	return pnl.interactive
}

func (pnl TablePanel) Update(msg tea.Msg) (TablePanel, tea.Cmd) {
	switch msg := msg.(type) {

	case SizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height
		return pnl.Follow(), nil

	case ColumnsMsg:
		return pnl.setColumns(msg.Columns), nil

	case tea.KeyPressMsg:
		if !pnl.interactive {
			return pnl, nil
		}

		mv, ok := moves[msg.String()]
		if !ok {
			return pnl, nil
		}
		return pnl.moveCmd(mv)
	}

	return pnl, nil
}

// Follow scrolls so that the list cursor is on the page.
func (pnl TablePanel) Follow() TablePanel {

	pnl.offset = pnl.clampOffset(pnl.offset)
	return pnl
}

// Render renders the visible page of rows.
func (pnl TablePanel) Render() string {

	items := pnl.list.Items()
	offset := pnl.clampOffset(pnl.offset)
	end := min(offset+pnl.PageSize(), len(items))
	if pnl.PageSize() <= 0 {
		end = len(items)
	}
	visible := items[offset:end]

	pnl.table.StyleFunc(style.RowStyler(
		pnl.list.Cursor()-offset,
		func(row int) bool {
			return row < len(visible) && pnl.list.IsSelected(visible[row])
		},
		!pnl.interactive,
	))

	pnl.table.ClearRows()
	for _, item := range visible {
		pnl.table.Row(pnl.row(item)...)
	}

	rendered := pnl.table.String()
	if len(items) == 0 {
		rendered += "\n" + style.MutedStyle.Render("No records")
	}
	return rendered
}

// PageSize returns the number of rows that fit on panel
func (pnl TablePanel) PageSize() int {
	return pnl.height - headerHeight
}

// Width returns the width of the rendered columns.
func (pnl TablePanel) Width() (width int) {
	for _, col := range pnl.columns {
		width += col.Width + 1
	}
	return
}

// unexported

func (pnl TablePanel) clampOffset(offset int) int {

	size := pnl.PageSize()
	cursor := pnl.list.Cursor()
	count := pnl.list.Len()

	if size <= 0 || count <= size {
		return 0
	}

	switch {
	case cursor >= 0 && cursor < offset:
		offset = cursor
	case cursor >= offset+size:
		offset = cursor - size + 1
	}

	return max(0, min(offset, count-size))
}

func (pnl TablePanel) row(item *nt.HrQuery) []string {

	row := make([]string, len(pnl.columns))
	for i, col := range pnl.columns {
		formatted := item.Value(col.Field).Format(col.Format)
		row[i] = truncate(formatted, col.Width)
	}
	return row
}

func (pnl TablePanel) setColumns(columns []nt.Column) TablePanel {

	shown := []nt.Column{}
	for _, col := range columns {
		if col.Hidden {
			continue
		}
		shown = append(shown, col)
	}

	var headers []string
	for _, col := range shown {
		padded := fmt.Sprintf("%-*s", col.Width+1, col.Field)
		headers = append(headers, padded)
	}

	pnl.table.Headers(headers...)
	pnl.columns = shown

	return pnl
}

// help

func truncate(in string, width int) string {

	runes := []rune(in)
	if width <= 0 || len(runes) <= width {
		return in
	}

	truncated := string(runes[:width-1])
	ellipsis := style.MutedStyle.Render("…")
	return truncated + ellipsis
}
