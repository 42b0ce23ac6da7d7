// Package collection holds the in-memory list projection backing the record table.
package collection

import (
	"context"

	"github.com/google/uuid"
	"github.com/samber/lo"

	nt "hrquery/entity"
)

// Loader fetches records for the list.
type Loader interface {
	List(ctx context.Context, view nt.View) ([]*nt.HrQuery, error)
}

// ItemChangeFunc is called with the new current item, nil when none.
type ItemChangeFunc func(ctx context.Context, item *nt.HrQuery) error

// Source is an ordered list of records with a selection.
// The first selected row is the current item.
type Source struct {
	loader    Loader
	view      nt.View
	items     []*nt.HrQuery
	selected  []uuid.UUID
	cursor    int // row the table cursor is on, -1 when empty
	listeners []ItemChangeFunc
}

// New creates an empty list loading with view.
func New(loader Loader, view nt.View) *Source {
	return &Source{
		loader: loader,
		view:   view,
		cursor: -1,
	}
}

// AddItemChangeListener registers fn to be told when the current item changes.
func (src *Source) AddItemChangeListener(fn ItemChangeFunc) {
	src.listeners = append(src.listeners, fn)
}

// View returns the view list rows are loaded with.
func (src *Source) View() nt.View {
	return src.view
}

// Items returns the rows in order.
func (src *Source) Items() []*nt.HrQuery {
	return src.items
}

// Len returns the number of rows.
func (src *Source) Len() int {
	return len(src.items)
}

// Cursor returns the row index of the table cursor.
func (src *Source) Cursor() int {
	return src.cursor
}

// Item returns the current item, nil when nothing is selected.
func (src *Source) Item() *nt.HrQuery {
	if len(src.selected) == 0 {
		return nil
	}
	return src.find(src.selected[0])
}

// Selected returns the selected rows in selection order.
func (src *Source) Selected() []*nt.HrQuery {
	return lo.FilterMap(src.selected, func(id uuid.UUID, _ int) (*nt.HrQuery, bool) {
		item := src.find(id)
		return item, item != nil
	})
}

// IsSelected reports whether item is among the selected rows.
func (src *Source) IsSelected(item *nt.HrQuery) bool {
	return item != nil && lo.Contains(src.selected, item.ID)
}

// SetSelected replaces the selection, notifying listeners when the current item changes.
func (src *Source) SetSelected(ctx context.Context, items ...*nt.HrQuery) error {

	before := src.Item()

	src.selected = lo.Uniq(lo.FilterMap(items, func(item *nt.HrQuery, _ int) (uuid.UUID, bool) {
		if item == nil || src.find(item.ID) == nil {
			return uuid.Nil, false
		}
		return item.ID, true
	}))

	if len(src.selected) > 0 && !src.cursorSelected() {
		src.cursor = src.indexOf(src.selected[0])
	}

	after := src.Item()
	if before.Same(after) {
		return nil
	}
	return src.fire(ctx, after)
}

// SetItem replaces the stored copy of item and makes it the only selection.
func (src *Source) SetItem(ctx context.Context, item *nt.HrQuery) error {
	if item == nil {
		return src.SetSelected(ctx)
	}
	src.UpdateItem(item)
	return src.SetSelected(ctx, item)
}

// Refresh reloads all rows, keeping the selection where rows survive.
func (src *Source) Refresh(ctx context.Context) (err error) {

	items, err := src.loader.List(ctx, src.view)
	if err != nil {
		return
	}

	before := src.Item()
	src.SetItems(items)

	after := src.Item()
	if before.Same(after) {
		return
	}
	return src.fire(ctx, after)
}

// unexported

func (src *Source) fire(ctx context.Context, item *nt.HrQuery) error {
	for _, fn := range src.listeners {
		err := fn(ctx, item)
		if err != nil {
			return err
		}
	}
	return nil
}

func (src *Source) cursorSelected() bool {
	if src.cursor < 0 || src.cursor >= len(src.items) {
		return false
	}
	return lo.Contains(src.selected, src.items[src.cursor].ID)
}

func (src *Source) find(id uuid.UUID) *nt.HrQuery {
	item, ok := lo.Find(src.items, func(item *nt.HrQuery) bool {
		return item.ID == id
	})
	if !ok {
		return nil
	}
	return item
}

func (src *Source) indexOf(id uuid.UUID) int {
	_, idx, _ := lo.FindIndexOf(src.items, func(item *nt.HrQuery) bool {
		return item.ID == id
	})
	return idx
}
