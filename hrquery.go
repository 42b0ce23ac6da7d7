// Package hrquery is a terminal screen for browsing and editing hr queries.
package hrquery

import (
	"context"

	"hrquery/browse"
	"hrquery/collection"
	"hrquery/detail"
	nt "hrquery/entity"
	"hrquery/table"
)

// Todo: lookup fields once hr queries reference other entities

// Store specifies the backing datastore.
type Store interface {
	// Name returns the name of the data source
	Name() string
	// NewItem returns a transient record
	NewItem() *nt.HrQuery
	// List returns every record loaded with view
	List(ctx context.Context, view nt.View) (items []*nt.HrQuery, err error)
	// Reload returns a fresh copy of item loaded with view
	Reload(ctx context.Context, item *nt.HrQuery, view nt.View) (reloaded *nt.HrQuery, err error)
	// Commit inserts or updates item, returning the stored copy
	Commit(ctx context.Context, item *nt.HrQuery) (committed *nt.HrQuery, err error)
	// Remove soft deletes items
	Remove(ctx context.Context, items []*nt.HrQuery) (err error)
}

// Config configures the screen.
type Config struct {
	Columns []nt.Column `yaml:"columns,omitempty"`
}

// New wires the list, the form and the controller over store and loads the list.
func (cfg *Config) New(ctx context.Context, store Store, lgr nt.Logger) (model Model, err error) {

	list := collection.New(store, nt.MinimalView)
	src := detail.NewSource(nt.LocalView)
	form := detail.NewForm(src, detail.NameField())
	remover := browse.NewRemoveAction(store, list, lgr)

	ctlCfg := &browse.Config{}
	controller := ctlCfg.New(list, src, form, store, remover, lgr)

	err = list.Refresh(ctx)
	if err != nil {
		return
	}

	model = Model{
		ctx:           ctx,
		logger:        lgr,
		store:         store,
		controller:    controller,
		list:          list,
		form:          form,
		CurrentScreen: MainScreen,
		TablePanel:    table.New(ctx, list, cfg.columns(), lgr),
		DetailPanel:   NewDetailPanel(form),
	}

	lgr.Info(ctx, "screen ready", "store", store.Name(), "count", list.Len())
	return
}
