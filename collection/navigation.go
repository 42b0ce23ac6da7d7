package collection

import (
	"context"

	"github.com/samber/lo"

	nt "hrquery/entity"
)

// MoveUp moves the cursor up one row and selects it
func (src *Source) MoveUp(ctx context.Context) error {
	if src.cursor > 0 {
		src.cursor--
	}
	return src.selectCursor(ctx)
}

// MoveDown moves the cursor down one row and selects it
func (src *Source) MoveDown(ctx context.Context) error {
	if src.cursor < len(src.items)-1 {
		src.cursor++
	}
	return src.selectCursor(ctx)
}

// MoveTop moves the cursor to the first row and selects it
func (src *Source) MoveTop(ctx context.Context) error {
	if len(src.items) > 0 {
		src.cursor = 0
	}
	return src.selectCursor(ctx)
}

// MoveBottom moves the cursor to the last row and selects it
func (src *Source) MoveBottom(ctx context.Context) error {
	src.cursor = len(src.items) - 1
	return src.selectCursor(ctx)
}

// ExtendUp moves the cursor up one row, adding it to the selection
func (src *Source) ExtendUp(ctx context.Context) error {
	if src.cursor > 0 {
		src.cursor--
	}
	return src.extendCursor(ctx)
}

// ExtendDown moves the cursor down one row, adding it to the selection
func (src *Source) ExtendDown(ctx context.Context) error {
	if src.cursor < len(src.items)-1 {
		src.cursor++
	}
	return src.extendCursor(ctx)
}

// ToggleCursor adds or removes the row under the cursor from the selection
func (src *Source) ToggleCursor(ctx context.Context) error {

	if src.cursor < 0 || src.cursor >= len(src.items) {
		return nil
	}
	item := src.items[src.cursor]

	selected := src.Selected()
	if src.IsSelected(item) {
		selected = without(selected, item)
	} else {
		selected = append(selected, item)
	}
	return src.SetSelected(ctx, selected...)
}

// unexported

func (src *Source) selectCursor(ctx context.Context) error {
	if src.cursor < 0 || src.cursor >= len(src.items) {
		return nil
	}
	return src.SetSelected(ctx, src.items[src.cursor])
}

func (src *Source) extendCursor(ctx context.Context) error {
	if src.cursor < 0 || src.cursor >= len(src.items) {
		return nil
	}
	item := src.items[src.cursor]
	if src.IsSelected(item) {
		return nil
	}
	return src.SetSelected(ctx, append(src.Selected(), item)...)
}

func without(items []*nt.HrQuery, item *nt.HrQuery) []*nt.HrQuery {
	return lo.Reject(items, func(other *nt.HrQuery, _ int) bool {
		return other.Same(item)
	})
}
