package detail

import (
	"context"
	"slices"

	nt "hrquery/entity"
)

// OptionsSource supplies the candidate values of a lookup field.
type OptionsSource interface {
	Refresh(ctx context.Context) error
	Options() []string
}

// LookupField picks its value from an options source, cycling with left/right.
type LookupField struct {
	id         string
	caption    string
	get        func(*nt.HrQuery) string
	set        func(*nt.HrQuery, string)
	validators []Validator

	options  OptionsSource
	selected int // -1 when value is not among options
}

func NewLookupField(id, caption string, options OptionsSource,
	get func(*nt.HrQuery) string, set func(*nt.HrQuery, string), validators ...Validator) *LookupField {

	return &LookupField{
		id:         id,
		caption:    caption,
		get:        get,
		set:        set,
		options:    options,
		validators: validators,
		selected:   -1,
	}
}

func (lf *LookupField) Id() string      { return lf.id }
func (lf *LookupField) Caption() string { return lf.caption }

// OptionsSource returns the options source, refreshed before editing.
func (lf *LookupField) OptionsSource() OptionsSource {
	return lf.options
}

func (lf *LookupField) Load(item *nt.HrQuery) {
	lf.selected = -1
	if item != nil {
		lf.selected = slices.Index(lf.options.Options(), lf.get(item))
	}
}

func (lf *LookupField) Key(key string, item *nt.HrQuery) (changed bool) {

	count := len(lf.options.Options())
	if count == 0 {
		return
	}

	switch key {
	case "left", "h":
		lf.selected--
		if lf.selected < 0 {
			lf.selected = count - 1
		}
	case "right", "l":
		lf.selected++
		if lf.selected >= count {
			lf.selected = 0
		}
	case "delete", "backspace":
		if lf.selected < 0 {
			return
		}
		lf.selected = -1
	default:
		return
	}

	if item != nil {
		lf.set(item, lf.Selected())
	}
	return true
}

// Selected returns the chosen option, empty when none.
func (lf *LookupField) Selected() string {
	options := lf.options.Options()
	if lf.selected < 0 || lf.selected >= len(options) {
		return ""
	}
	return options[lf.selected]
}

func (lf *LookupField) Validate(item *nt.HrQuery) []string {
	if item == nil {
		return nil
	}
	return validate(lf.get(item), lf.validators)
}

func (lf *LookupField) Render(focused bool) string {
	value := lf.Selected()
	if focused {
		return "‹ " + value + " ›"
	}
	return value
}

// StaticOptions is a fixed options source.
type StaticOptions []string

func (so StaticOptions) Refresh(ctx context.Context) error { return nil }
func (so StaticOptions) Options() []string                  { return so }
