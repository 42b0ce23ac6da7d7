package detail

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "hrquery/entity"
)

func record(name string) *nt.HrQuery {
	hq := nt.New()
	hq.Name = name
	return hq
}

func TestSource(t *testing.T) {

	src := NewSource(nt.LocalView)
	assert.Nil(t, src.Item())
	assert.Equal(t, "_local", src.View().Name)

	var seen []*nt.HrQuery
	src.OnItemChange(func(item *nt.HrQuery) { seen = append(seen, item) })

	alpha := record("Alpha")
	src.SetItem(alpha)
	src.SetItem(nil)

	assert.Equal(t, []*nt.HrQuery{alpha, nil}, seen)
}

func TestTextField(t *testing.T) {

	type step struct {
		key    string
		value  string
		cursor int
	}

	cases := []struct {
		name    string
		initial string
		max     int
		steps   []step
	}{
		{
			name:    "type at end",
			initial: "Alp",
			steps: []step{
				{"h", "Alph", 4},
				{"a", "Alpha", 5},
				{"space", "Alpha ", 6},
			},
		},
		{
			name:    "edit in the middle",
			initial: "Bta",
			steps: []step{
				{"left", "Bta", 2},
				{"left", "Bta", 1},
				{"e", "Beta", 2},
				{"home", "Beta", 0},
				{"delete", "eta", 0},
				{"end", "eta", 3},
				{"backspace", "et", 2},
			},
		},
		{
			name:    "max length refuses input",
			initial: "ab",
			max:     2,
			steps: []step{
				{"c", "ab", 2},
				{"backspace", "a", 1},
				{"ü", "aü", 2},
			},
		},
		{
			name:    "ignores named keys",
			initial: "x",
			steps: []step{
				{"ctrl+s", "x", 1},
				{"pgdown", "x", 1},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := record(tc.initial)
			fld := NewTextField("name", "Name",
				func(hq *nt.HrQuery) string { return hq.Name },
				func(hq *nt.HrQuery, name string) { hq.Name = name },
				tc.max)
			fld.Load(item)

			for _, st := range tc.steps {
				fld.Key(st.key, item)
				assert.Equal(t, st.value, fld.Value(), "after %q", st.key)
				assert.Equal(t, st.cursor, fld.Cursor(), "after %q", st.key)
				assert.Equal(t, st.value, item.Name, "written through after %q", st.key)
			}
		})
	}

	t.Run("load nil clears", func(t *testing.T) {
		fld := NameField()
		fld.Load(record("Alpha"))
		fld.Load(nil)
		assert.Equal(t, "", fld.Value())
		assert.True(t, fld.Key("a", nil))
		assert.Equal(t, "a", fld.Value())
	})
}

func TestLookupField(t *testing.T) {

	opts := &refreshing{next: []string{"daily", "weekly"}}
	var schedule string
	fld := NewLookupField("schedule", "Schedule", opts,
		func(*nt.HrQuery) string { return schedule },
		func(_ *nt.HrQuery, value string) { schedule = value },
		Required(),
	)
	item := record("Alpha")

	fld.Load(item)
	assert.Equal(t, "", fld.Selected())
	assert.False(t, fld.Key("right", item), "no options before refresh")
	assert.Equal(t, []string{"is required"}, fld.Validate(item))

	require.NoError(t, opts.Refresh(context.Background()))
	assert.True(t, fld.Key("right", item))
	assert.Equal(t, "daily", schedule)
	assert.True(t, fld.Key("left", item))
	assert.Equal(t, "weekly", schedule)
	assert.True(t, fld.Key("delete", item))
	assert.Equal(t, "", schedule)
	assert.False(t, fld.Key("x", item))
}

func TestValidators(t *testing.T) {

	assert.Equal(t, "is required", Required()("  "))
	assert.Equal(t, "", Required()("x"))
	assert.Equal(t, "must be at most 3 characters", MaxLength(3)("abcd"))
	assert.Equal(t, "", MaxLength(3)("äöü"))
}

func TestForm(t *testing.T) {

	ctx := context.Background()

	newForm := func() (*Source, *Form, *refreshing) {
		src := NewSource(nt.LocalView)
		opts := &refreshing{next: []string{"daily"}}
		var schedule string
		form := NewForm(src,
			NewTextField(nt.NameProp, "Name",
				func(hq *nt.HrQuery) string { return hq.Name },
				func(hq *nt.HrQuery, name string) { hq.Name = name },
				0, Required(), MaxLength(5)),
			NewLookupField("schedule", "Schedule", opts,
				func(*nt.HrQuery) string { return schedule },
				func(_ *nt.HrQuery, value string) { schedule = value }),
		)
		return src, form, opts
	}

	t.Run("loads fields when source item changes", func(t *testing.T) {
		src, form, _ := newForm()

		src.SetItem(record("Alpha"))
		assert.Equal(t, "Alpha", form.Field(nt.NameProp).(*TextField).Value())

		src.SetItem(nil)
		assert.Equal(t, "", form.Field(nt.NameProp).(*TextField).Value())
		assert.Contains(t, form.View(), "No record selected")
	})

	t.Run("keys ignored unless editable and focused", func(t *testing.T) {
		src, form, _ := newForm()
		item := record("Al")
		src.SetItem(item)

		assert.False(t, form.Key("x"))
		form.SetEditable(true)
		assert.False(t, form.Key("x"))
		assert.Nil(t, form.FocusedField())

		form.RequestFocus()
		assert.True(t, form.Key("x"))
		assert.Equal(t, "Alx", item.Name)

		form.SetEditable(false)
		assert.False(t, form.HasFocus())
	})

	t.Run("tab cycles focus", func(t *testing.T) {
		src, form, _ := newForm()
		src.SetItem(record("Al"))
		form.SetEditable(true)
		form.RequestFocus()

		form.Key("tab")
		assert.Equal(t, "schedule", form.FocusedField().Id())
		form.Key("tab")
		assert.Equal(t, nt.NameProp, form.FocusedField().Id())
		form.Key("shift+tab")
		assert.Equal(t, "schedule", form.FocusedField().Id())
	})

	t.Run("validate keeps errors until field edited", func(t *testing.T) {
		src, form, _ := newForm()
		item := record("Toolong")
		src.SetItem(item)
		form.SetEditable(true)
		form.RequestFocus()

		assert.False(t, form.Validate())
		assert.Equal(t, map[string][]string{nt.NameProp: {"must be at most 5 characters"}}, form.Errors())

		var verr *nt.ValidationError
		require.True(t, errors.As(form.Err(), &verr))
		assert.Contains(t, form.View(), "must be at most 5 characters")

		form.Key("backspace")
		assert.Empty(t, form.Errors())

		item.Name = "Short"
		assert.True(t, form.Validate())
		assert.NoError(t, form.Err())
	})

	t.Run("refresh options reaches lookups", func(t *testing.T) {
		src, form, opts := newForm()
		src.SetItem(record("Alpha"))

		require.NoError(t, form.RefreshOptions(ctx))
		assert.Equal(t, 1, opts.refreshed)

		opts.err = errors.New("options unavailable")
		assert.EqualError(t, form.RefreshOptions(ctx), "options unavailable")
	})

	t.Run("view shows audit for persisted", func(t *testing.T) {
		src, form, _ := newForm()
		item := record("Alpha")
		item.Version = 2
		item.CreatedBy = "admin"
		src.SetItem(item)

		view := form.View()
		assert.Contains(t, view, "Alpha")
		assert.Contains(t, view, "admin")
		assert.True(t, strings.Contains(view, "Version"))
	})
}

// refreshing hands out its next options on refresh
type refreshing struct {
	next      []string
	options   []string
	refreshed int
	err       error
}

func (rf *refreshing) Refresh(ctx context.Context) error {
	if rf.err != nil {
		return rf.err
	}
	rf.refreshed++
	rf.options = rf.next
	return nil
}

func (rf *refreshing) Options() []string {
	return rf.options
}
