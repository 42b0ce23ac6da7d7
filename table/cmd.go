package table

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"hrquery/collection"
	"hrquery/message"
)

type move func(*collection.Source, context.Context) error

// moves maps navigation keys onto the list
var moves = map[string]move{
	"up":         (*collection.Source).MoveUp,
	"k":          (*collection.Source).MoveUp,
	"down":       (*collection.Source).MoveDown,
	"j":          (*collection.Source).MoveDown,
	"home":       (*collection.Source).MoveTop,
	"g":          (*collection.Source).MoveTop,
	"end":        (*collection.Source).MoveBottom,
	"G":          (*collection.Source).MoveBottom,
	"shift+up":   (*collection.Source).ExtendUp,
	"K":          (*collection.Source).ExtendUp,
	"shift+down": (*collection.Source).ExtendDown,
	"J":          (*collection.Source).ExtendDown,
	"space":      (*collection.Source).ToggleCursor,
}

func (pnl TablePanel) moveCmd(mv move) (TablePanel, tea.Cmd) {

	err := mv(pnl.list, pnl.ctx)
	pnl = pnl.Follow()

	return pnl, message.ErrorCmd(err)
}
