// Package browse coordinates a list of hr queries with a single-record edit form.
package browse

import (
	"context"

	"github.com/pkg/errors"

	"hrquery/collection"
	nt "hrquery/entity"
)

// ListSource is the list of records backing the table.
type ListSource interface {
	// Item returns the current row, nil when nothing is selected
	Item() *nt.HrQuery
	Selected() []*nt.HrQuery
	SetSelected(ctx context.Context, items ...*nt.HrQuery) error
	// SetItem stores item over its row and makes it the selection
	SetItem(ctx context.Context, item *nt.HrQuery) error
	IncludeItem(item *nt.HrQuery)
	UpdateItem(item *nt.HrQuery)
	AddItemChangeListener(fn collection.ItemChangeFunc)
}

// DetailSource holds the record shown in the form.
type DetailSource interface {
	Item() *nt.HrQuery
	SetItem(item *nt.HrQuery)
	View() nt.View
}

// Form is the field group bound to the detail source.
type Form interface {
	SetEditable(editable bool)
	RequestFocus()
	// Validate reports pass/fail, showing field errors itself
	Validate() bool
	// RefreshOptions re-fetches the candidates of every lookup field
	RefreshOptions(ctx context.Context) error
}

// DataSupplier creates, reloads and commits records.
type DataSupplier interface {
	NewItem() *nt.HrQuery
	Reload(ctx context.Context, item *nt.HrQuery, view nt.View) (*nt.HrQuery, error)
	Commit(ctx context.Context, item *nt.HrQuery) (*nt.HrQuery, error)
}

// Remover deletes records, calling after once they are gone.
type Remover interface {
	Remove(ctx context.Context, items []*nt.HrQuery, after func(removed []*nt.HrQuery)) error
}

// Controller is the browse/edit state machine.
// Operations invalid in the current mode are no-ops.
// Errors from reload, commit and remove are returned unchanged and leave the
// mode as it was.
type Controller struct {
	list     ListSource
	detail   DetailSource
	form     Form
	supplier DataSupplier
	remover  Remover
	logger   nt.Logger

	mode Mode
}

// Config is empty for now, following the cfg.New pattern.
type Config struct{}

// New creates a controller in browse mode and subscribes it to list selection.
func (cfg *Config) New(list ListSource, detail DetailSource, form Form,
	supplier DataSupplier, remover Remover, lgr nt.Logger) *Controller {

	ctl := &Controller{
		list:     list,
		detail:   detail,
		form:     form,
		supplier: supplier,
		remover:  remover,
		logger:   lgr,
	}

	list.AddItemChangeListener(ctl.SelectRow)
	ctl.browse()

	return ctl
}

// Mode returns the current state.
func (ctl *Controller) Mode() Mode {
	return ctl.mode
}

// Editing reports whether the form is being edited and whether the record is new.
func (ctl *Controller) Editing() (editing, creating bool) {
	mode, ok := ctl.mode.(Editing)
	return ok, mode.Creating
}

// ListInteractive reports whether the list takes input.
func (ctl *Controller) ListInteractive() bool {
	editing, _ := ctl.Editing()
	return !editing
}

// FormEditable reports whether the form takes input.
func (ctl *Controller) FormEditable() bool {
	editing, _ := ctl.Editing()
	return editing
}

// ActionPaneVisible reports whether save/cancel are offered.
func (ctl *Controller) ActionPaneVisible() bool {
	editing, _ := ctl.Editing()
	return editing
}

// Focus returns the component with input focus.
func (ctl *Controller) Focus() Focus {
	if ctl.FormEditable() {
		return FocusForm
	}
	return FocusList
}

// SelectRow loads a full copy of item into the detail form, clearing it for nil.
func (ctl *Controller) SelectRow(ctx context.Context, item *nt.HrQuery) error {

	if !ctl.ListInteractive() {
		return nil
	}

	if item == nil {
		ctl.detail.SetItem(nil)
		return nil
	}

	reloaded, err := ctl.supplier.Reload(ctx, item, ctl.detail.View())
	if err != nil {
		return err
	}

	ctl.detail.SetItem(reloaded)
	return nil
}

// Create puts a new transient record in the form for editing.
func (ctl *Controller) Create(ctx context.Context) (err error) {

	if !ctl.ListInteractive() {
		return
	}

	err = ctl.form.RefreshOptions(ctx)
	if err != nil {
		return
	}

	prior := ctl.list.Item()
	err = ctl.list.SetSelected(ctx)
	if err != nil {
		return
	}

	ctl.detail.SetItem(ctl.supplier.NewItem())
	ctl.edit(ctx, true, prior)
	return
}

// Edit makes the selected record editable; it requires exactly one selected row.
func (ctl *Controller) Edit(ctx context.Context) (err error) {

	if !ctl.ListInteractive() {
		return
	}

	selected := ctl.list.Selected()
	if len(selected) != 1 {
		return
	}

	if !selected[0].Same(ctl.detail.Item()) {
		err = ctl.SelectRow(ctx, selected[0])
		if err != nil {
			return
		}
	}

	err = ctl.form.RefreshOptions(ctx)
	if err != nil {
		return
	}

	ctl.edit(ctx, false, selected[0])
	return
}

// Save validates and commits the form, then shows the saved record selected in the list.
// A failed validation is not an error; the form shows what is wrong.
func (ctl *Controller) Save(ctx context.Context) (err error) {

	mode, ok := ctl.mode.(Editing)
	if !ok {
		return
	}

	if !ctl.form.Validate() {
		return
	}

	committed, err := ctl.supplier.Commit(ctx, ctl.detail.Item())
	if err != nil {
		return
	}

	ctl.detail.SetItem(committed)
	if mode.Creating {
		ctl.list.IncludeItem(committed.Clone())
	} else {
		ctl.list.UpdateItem(committed.Clone())
	}

	ctl.browse()
	ctl.logger.Info(ctx, "saved hr query", "id", committed.ID, "creating", mode.Creating)

	return ctl.list.SetSelected(ctx, committed)
}

// Cancel discards edits, restoring the row selected before editing began.
func (ctl *Controller) Cancel(ctx context.Context) (err error) {

	mode, ok := ctl.mode.(Editing)
	if !ok {
		return
	}

	if mode.prior == nil {
		ctl.browse()
		ctl.detail.SetItem(nil)
		return
	}

	reloaded, err := ctl.supplier.Reload(ctx, mode.prior, ctl.detail.View())
	if errors.Is(err, nt.ErrNotFound) {
		// gone from storage, nothing to go back to
		ctl.browse()
		ctl.detail.SetItem(nil)
		ctl.list.SetSelected(ctx)
		return
	}
	if err != nil {
		return
	}

	ctl.browse()
	ctl.detail.SetItem(reloaded)
	return ctl.list.SetItem(ctx, reloaded.Clone())
}

// Remove deletes the selected rows, clearing the form once they are gone.
func (ctl *Controller) Remove(ctx context.Context) (err error) {

	if !ctl.ListInteractive() {
		return
	}

	selected := ctl.list.Selected()
	if len(selected) == 0 {
		return
	}

	return ctl.remover.Remove(ctx, selected, func(removed []*nt.HrQuery) {
		ctl.detail.SetItem(nil)
	})
}

// unexported

func (ctl *Controller) edit(ctx context.Context, creating bool, prior *nt.HrQuery) {

	ctl.mode = Editing{Creating: creating, prior: prior}
	ctl.form.SetEditable(true)
	ctl.form.RequestFocus()

	ctl.logger.Info(ctx, "editing hr query", "creating", creating)
}

func (ctl *Controller) browse() {

	ctl.mode = Browsing{}
	ctl.form.SetEditable(false)
}
