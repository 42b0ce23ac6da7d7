package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	nt "hrquery/entity"
)

func newStore(t *testing.T) *Store {
	t.Helper()

	cfg := &Config{Driver: "sqlite", Dsn: ":memory:", User: "tester"}
	st, err := cfg.New(context.Background(), nt.NopLogger{})
	require.NoError(t, err)
	t.Cleanup(st.Close)

	tick := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	st.Now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}
	return st
}

func add(t *testing.T, st *Store, name string) *nt.HrQuery {
	t.Helper()

	item := st.NewItem()
	item.Name = name
	committed, err := st.Commit(context.Background(), item)
	require.NoError(t, err)
	return committed
}

func TestCommitInsert(t *testing.T) {

	ctx := context.Background()
	st := newStore(t)

	item := st.NewItem()
	item.Name = "Gamma"

	committed, err := st.Commit(ctx, item)
	require.NoError(t, err)

	assert.Equal(t, item.ID, committed.ID)
	assert.Equal(t, 1, committed.Version)
	assert.Equal(t, "Gamma", committed.Name)
	assert.Equal(t, "tester", committed.CreatedBy)
	assert.Equal(t, "tester", committed.UpdatedBy)
	assert.False(t, committed.CreateTs.IsZero())
	assert.Equal(t, nt.LocalView.Name, committed.LoadedWith)

	assert.True(t, item.IsNew(), "caller's copy is left alone")
}

func TestCommitUpdate(t *testing.T) {

	ctx := context.Background()
	st := newStore(t)
	alpha := add(t, st, "Alpha")

	t.Run("bumps version and audit", func(t *testing.T) {
		edit := alpha.Clone()
		edit.Name = "AlphaX"

		committed, err := st.Commit(ctx, edit)
		require.NoError(t, err)

		assert.Equal(t, 2, committed.Version)
		assert.Equal(t, "AlphaX", committed.Name)
		assert.True(t, committed.UpdateTs.After(committed.CreateTs))
	})

	t.Run("stale version conflicts", func(t *testing.T) {
		stale := alpha.Clone()
		stale.Name = "Stale"

		_, err := st.Commit(ctx, stale)
		require.Error(t, err)

		var conflict *nt.ConflictError
		require.True(t, errors.As(err, &conflict))
		assert.Equal(t, 1, conflict.Expected)
		assert.Equal(t, 2, conflict.Stored)

		reloaded, err := st.Reload(ctx, alpha, nt.LocalView)
		require.NoError(t, err)
		assert.Equal(t, "AlphaX", reloaded.Name)
	})

	t.Run("missing record is not found", func(t *testing.T) {
		ghost := &nt.HrQuery{ID: uuid.New(), Version: 1, Name: "Ghost"}

		_, err := st.Commit(ctx, ghost)
		assert.ErrorIs(t, err, nt.ErrNotFound)
	})
}

func TestReloadByView(t *testing.T) {

	ctx := context.Background()
	st := newStore(t)
	beta := add(t, st, "Beta")

	minimal, err := st.Reload(ctx, beta, nt.MinimalView)
	require.NoError(t, err)
	assert.Equal(t, "Beta", minimal.Name)
	assert.Equal(t, 1, minimal.Version)
	assert.Empty(t, minimal.CreatedBy)
	assert.Equal(t, "_minimal", minimal.LoadedWith)

	local, err := st.Reload(ctx, beta, nt.LocalView)
	require.NoError(t, err)
	assert.Equal(t, "tester", local.CreatedBy)
	assert.Equal(t, beta.CreateTs, local.CreateTs)

	_, err = st.Reload(ctx, nil, nt.LocalView)
	assert.Error(t, err)

	_, err = st.Get(ctx, uuid.New(), nt.LocalView)
	assert.ErrorIs(t, err, nt.ErrNotFound)
}

func TestListAndRemove(t *testing.T) {

	ctx := context.Background()
	st := newStore(t)
	alpha := add(t, st, "Alpha")
	beta := add(t, st, "Beta")
	gamma := add(t, st, "Gamma")

	items, err := st.List(ctx, nt.MinimalView)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, names(items))

	err = st.Remove(ctx, []*nt.HrQuery{beta})
	require.NoError(t, err)

	items, err = st.List(ctx, nt.MinimalView)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Gamma"}, names(items))

	t.Run("removed is not found", func(t *testing.T) {
		_, err := st.Reload(ctx, beta, nt.LocalView)
		assert.ErrorIs(t, err, nt.ErrNotFound)

		err = st.Remove(ctx, []*nt.HrQuery{beta})
		assert.ErrorIs(t, err, nt.ErrNotFound)
	})

	t.Run("stale remove rolls back", func(t *testing.T) {
		edit := gamma.Clone()
		edit.Name = "GammaX"
		_, err := st.Commit(ctx, edit)
		require.NoError(t, err)

		err = st.Remove(ctx, []*nt.HrQuery{alpha, gamma})
		assert.True(t, nt.IsConflict(err))

		items, err := st.List(ctx, nt.MinimalView)
		require.NoError(t, err)
		assert.Equal(t, []string{"Alpha", "GammaX"}, names(items))
	})
}

func names(items []*nt.HrQuery) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Name
	}
	return out
}
