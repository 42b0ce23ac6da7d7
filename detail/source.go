package detail

import (
	nt "hrquery/entity"
)

// Source holds the one record shown in the detail form.
type Source struct {
	item      *nt.HrQuery
	view      nt.View
	listeners []func(item *nt.HrQuery)
}

// NewSource creates an empty source whose records are loaded with view.
func NewSource(view nt.View) *Source {
	return &Source{view: view}
}

// Item returns the held record, nil when empty.
func (src *Source) Item() *nt.HrQuery {
	return src.item
}

// SetItem replaces the held record, nil to clear.
func (src *Source) SetItem(item *nt.HrQuery) {
	src.item = item
	for _, fn := range src.listeners {
		fn(item)
	}
}

// View returns the view records are to be reloaded with.
func (src *Source) View() nt.View {
	return src.view
}

// OnItemChange registers fn to be called after SetItem.
func (src *Source) OnItemChange(fn func(item *nt.HrQuery)) {
	src.listeners = append(src.listeners, fn)
}
