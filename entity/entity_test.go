package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestHrQuery(t *testing.T) {

	t.Run("new is transient with an id", func(t *testing.T) {
		hq := New()
		assert.True(t, hq.IsNew())
		assert.NotEqual(t, uuid.Nil, hq.ID)
		assert.Equal(t, "", hq.Name)
	})

	t.Run("clone is independent", func(t *testing.T) {
		hq := New()
		hq.Name = "Alpha"

		clone := hq.Clone()
		clone.Name = "AlphaX"

		assert.Equal(t, "Alpha", hq.Name)
		assert.True(t, hq.Same(clone))
		assert.Nil(t, (*HrQuery)(nil).Clone())
	})

	t.Run("same compares identity", func(t *testing.T) {
		assert.False(t, New().Same(New()))
		assert.False(t, New().Same(nil))
		assert.True(t, (*HrQuery)(nil).Same(nil))
	})

	t.Run("value by property", func(t *testing.T) {
		hq := &HrQuery{Name: "Beta", Version: 3}
		assert.Equal(t, "Beta", hq.Value(NameProp).String())
		assert.Equal(t, "3", hq.Value(VersionProp).String())
		assert.Equal(t, "", hq.Value(UpdateTsProp).String())
		assert.Equal(t, "", hq.Value("bogus").String())
	})
}

func TestValueFormat(t *testing.T) {

	ts := time.Date(2026, 10, 19, 8, 30, 0, 0, time.Local)

	assert.Equal(t, "2026-10-19 08:30", Value{Raw: ts}.Format("2006-01-02 15:04"))
	assert.Equal(t, "plain", Value{Raw: "plain"}.Format("2006"))
	assert.Equal(t, "", Value{Raw: time.Time{}}.Format("2006"))

	_, err := Value{Raw: "x"}.Int()
	assert.Error(t, err)
}

func TestView(t *testing.T) {

	assert.True(t, MinimalView.Has(IdProp))
	assert.True(t, MinimalView.Has(NameProp))
	assert.False(t, MinimalView.Has(CreatedByProp))

	assert.True(t, LocalView.Covers(MinimalView))
	assert.False(t, MinimalView.Covers(LocalView))
}

func TestErrors(t *testing.T) {

	err := errors.Wrapf(&ConflictError{ID: "abc", Expected: 1, Stored: 2}, "failed to commit")
	assert.True(t, IsConflict(err))
	assert.Contains(t, err.Error(), "version 2, expected 1")
	assert.False(t, IsConflict(ErrNotFound))

	verr := &ValidationError{Fields: map[string][]string{
		"name": {"too long"},
		"code": {"required"},
	}}
	assert.Equal(t, "validation failed: code: required; name: too long", verr.Error())
}
