package detail

import (
	"unicode/utf8"

	nt "hrquery/entity"
	"hrquery/style"
)

// TextField is an editable text field bound to a string property.
type TextField struct {
	id         string
	caption    string
	get        func(*nt.HrQuery) string
	set        func(*nt.HrQuery, string)
	validators []Validator

	value     []rune
	cursor    int
	maxLength int
}

// NewTextField creates a field, refusing input beyond maxLength runes when positive.
func NewTextField(id, caption string, get func(*nt.HrQuery) string, set func(*nt.HrQuery, string),
	maxLength int, validators ...Validator) *TextField {

	return &TextField{
		id:         id,
		caption:    caption,
		get:        get,
		set:        set,
		maxLength:  maxLength,
		validators: validators,
	}
}

// NameField is the text field for HrQuery.Name.
func NameField() *TextField {
	return NewTextField(nt.NameProp, "Name",
		func(hq *nt.HrQuery) string { return hq.Name },
		func(hq *nt.HrQuery, name string) { hq.Name = name },
		0, MaxLength(nt.NameLength),
	)
}

func (tf *TextField) Id() string      { return tf.id }
func (tf *TextField) Caption() string { return tf.caption }

// Value returns the text as edited.
func (tf *TextField) Value() string {
	return string(tf.value)
}

// Cursor returns the rune offset of the cursor.
func (tf *TextField) Cursor() int {
	return tf.cursor
}

// Load copies the bound property from item, clearing when nil.
func (tf *TextField) Load(item *nt.HrQuery) {

	tf.value = nil
	if item != nil {
		tf.value = []rune(tf.get(item))
	}
	tf.cursor = len(tf.value)
}

// SetValue replaces the text and writes it through to item.
func (tf *TextField) SetValue(value string, item *nt.HrQuery) {

	tf.value = []rune(value)
	tf.cursor = len(tf.value)
	tf.apply(item)
}

// Key handles an editing key, writing any change through to item.
func (tf *TextField) Key(key string, item *nt.HrQuery) (changed bool) {

	switch key {
	case "backspace":
		if tf.cursor > 0 {
			tf.value = append(tf.value[:tf.cursor-1], tf.value[tf.cursor:]...)
			tf.cursor--
			changed = true
		}
	case "delete":
		if tf.cursor < len(tf.value) {
			tf.value = append(tf.value[:tf.cursor], tf.value[tf.cursor+1:]...)
			changed = true
		}
	case "left":
		if tf.cursor > 0 {
			tf.cursor--
		}
	case "right":
		if tf.cursor < len(tf.value) {
			tf.cursor++
		}
	case "home", "ctrl+a":
		tf.cursor = 0
	case "end", "ctrl+e":
		tf.cursor = len(tf.value)
	default:
		if key == "space" {
			key = " "
		}
		if utf8.RuneCountInString(key) != 1 {
			return
		}
		if tf.maxLength > 0 && len(tf.value) >= tf.maxLength {
			return
		}

		r, _ := utf8.DecodeRuneInString(key)
		tf.value = append(tf.value[:tf.cursor], append([]rune{r}, tf.value[tf.cursor:]...)...)
		tf.cursor++
		changed = true
	}

	if changed {
		tf.apply(item)
	}
	return
}

// Validate runs the validators against the bound property of item.
func (tf *TextField) Validate(item *nt.HrQuery) []string {
	if item == nil {
		return nil
	}
	return validate(tf.get(item), tf.validators)
}

// Render returns the text with a cursor block when focused.
func (tf *TextField) Render(focused bool) string {
	if !focused {
		return string(tf.value)
	}

	before := string(tf.value[:tf.cursor])
	if tf.cursor < len(tf.value) {
		return before + style.CursorStyle.Render(string(tf.value[tf.cursor])) + string(tf.value[tf.cursor+1:])
	}
	return before + style.CursorStyle.Render(" ")
}

// unexported

func (tf *TextField) apply(item *nt.HrQuery) {
	if item != nil {
		tf.set(item, string(tf.value))
	}
}
