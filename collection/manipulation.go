package collection

import (
	"github.com/google/uuid"
	"github.com/samber/lo"

	nt "hrquery/entity"
)

// SetItems replaces all rows, dropping selected ids that no longer exist.
// Listeners are not notified.
func (src *Source) SetItems(items []*nt.HrQuery) {

	src.items = items
	src.selected = lo.Filter(src.selected, func(id uuid.UUID, _ int) bool {
		return src.find(id) != nil
	})
	src.clampCursor()
}

// IncludeItem appends item, or replaces the row with the same id.
func (src *Source) IncludeItem(item *nt.HrQuery) {

	idx := src.indexOf(item.ID)
	if idx >= 0 {
		src.items[idx] = item
		return
	}

	src.items = append(src.items, item)
	if src.cursor < 0 {
		src.cursor = 0
	}
}

// UpdateItem replaces the row with the same id in place; unknown items are ignored.
func (src *Source) UpdateItem(item *nt.HrQuery) {

	idx := src.indexOf(item.ID)
	if idx < 0 {
		return
	}
	src.items[idx] = item
}

// ExcludeItem removes the row with the same id and drops it from the selection.
// Listeners are not notified.
func (src *Source) ExcludeItem(item *nt.HrQuery) {

	idx := src.indexOf(item.ID)
	if idx < 0 {
		return
	}

	src.items = append(src.items[:idx:idx], src.items[idx+1:]...)
	src.selected = lo.Without(src.selected, item.ID)
	src.clampCursor()
}

// unexported

func (src *Source) clampCursor() {

	switch {
	case len(src.items) == 0:
		src.cursor = -1
	case src.cursor >= len(src.items):
		src.cursor = len(src.items) - 1
	case src.cursor < 0:
		src.cursor = 0
	}
}
