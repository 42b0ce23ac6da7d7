package browse

import (
	"context"

	nt "hrquery/entity"
)

// Deleter removes records from storage.
type Deleter interface {
	Remove(ctx context.Context, items []*nt.HrQuery) error
}

// Excluder drops rows from the list without reloading it.
type Excluder interface {
	ExcludeItem(item *nt.HrQuery)
}

// RemoveAction deletes records from storage and then from the list.
type RemoveAction struct {
	deleter Deleter
	list    Excluder
	logger  nt.Logger
}

func NewRemoveAction(deleter Deleter, list Excluder, lgr nt.Logger) *RemoveAction {
	return &RemoveAction{
		deleter: deleter,
		list:    list,
		logger:  lgr,
	}
}

// Remove deletes items, calling after when all of them are gone.
// Nothing is excluded from the list when storage refuses.
func (act *RemoveAction) Remove(ctx context.Context, items []*nt.HrQuery, after func(removed []*nt.HrQuery)) (err error) {

	if len(items) == 0 {
		return
	}

	err = act.deleter.Remove(ctx, items)
	if err != nil {
		return
	}

	for _, item := range items {
		act.list.ExcludeItem(item)
	}
	act.logger.Info(ctx, "removed from list", "count", len(items))

	if after != nil {
		after(items)
	}
	return
}
