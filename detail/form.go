package detail

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	nt "hrquery/entity"
	"hrquery/style"
)

const (
	captionWidth = 12
	tsFormat     = "2006-01-02 15:04"
)

// Field is one input of the form, bound to a property of the held record.
type Field interface {
	Id() string
	Caption() string
	// Load copies the bound property of item into the field
	Load(item *nt.HrQuery)
	// Key handles an editing key, writing through to item when the value changes
	Key(key string, item *nt.HrQuery) (changed bool)
	// Validate returns messages for whatever is wrong with the bound property
	Validate(item *nt.HrQuery) []string
	Render(focused bool) string
}

// Form is a field group bound to a Source.
// Fields write through to the held record as they are edited.
type Form struct {
	source *Source
	fields []Field
	errors map[string][]string

	editable bool
	focused  bool
	focus    int // index of field with focus
}

// NewForm creates a read-only form showing whatever src holds.
func NewForm(src *Source, fields ...Field) *Form {

	form := &Form{
		source: src,
		fields: fields,
	}
	src.OnItemChange(form.load)
	form.load(src.Item())

	return form
}

// Field returns the field with id, nil when absent.
func (form *Form) Field(id string) Field {
	for _, fld := range form.fields {
		if fld.Id() == id {
			return fld
		}
	}
	return nil
}

// Fields returns the fields in order.
func (form *Form) Fields() []Field {
	return form.fields
}

// SetEditable toggles editing; leaving edit mode drops focus and field errors.
func (form *Form) SetEditable(editable bool) {
	form.editable = editable
	if !editable {
		form.focused = false
		form.errors = nil
	}
}

func (form *Form) Editable() bool {
	return form.editable
}

// RequestFocus gives input focus to the first field.
func (form *Form) RequestFocus() {
	form.focused = true
	form.focus = 0
}

func (form *Form) HasFocus() bool {
	return form.focused
}

// FocusedField returns the field with focus, nil when the form has none.
func (form *Form) FocusedField() Field {
	if !form.focused || len(form.fields) == 0 {
		return nil
	}
	return form.fields[form.focus]
}

// Validate checks every field, keeping messages for display, and reports pass/fail.
func (form *Form) Validate() bool {

	form.errors = map[string][]string{}
	for _, fld := range form.fields {
		msgs := fld.Validate(form.source.Item())
		if len(msgs) > 0 {
			form.errors[fld.Id()] = msgs
		}
	}
	return len(form.errors) == 0
}

// Err returns the outcome of the last Validate as an error, nil when it passed.
func (form *Form) Err() error {
	if len(form.errors) == 0 {
		return nil
	}
	return &nt.ValidationError{Fields: form.errors}
}

// Errors returns messages from the last Validate by field id.
func (form *Form) Errors() map[string][]string {
	return form.errors
}

// RefreshOptions has every lookup field re-fetch its candidate values.
func (form *Form) RefreshOptions(ctx context.Context) (err error) {

	for _, fld := range form.fields {
		lookup, ok := fld.(*LookupField)
		if !ok || lookup.OptionsSource() == nil {
			continue
		}

		err = lookup.OptionsSource().Refresh(ctx)
		if err != nil {
			return
		}
		lookup.Load(form.source.Item())
	}
	return
}

// Key routes a key to the focused field, reporting whether the form used it.
func (form *Form) Key(key string) (handled bool) {

	if !form.editable || !form.focused || len(form.fields) == 0 {
		return false
	}

	switch key {
	case "tab", "down":
		form.focus = (form.focus + 1) % len(form.fields)
		return true
	case "shift+tab", "up":
		form.focus = (form.focus - 1 + len(form.fields)) % len(form.fields)
		return true
	}

	fld := form.fields[form.focus]
	if fld.Key(key, form.source.Item()) {
		delete(form.errors, fld.Id())
	}
	return true
}

// Update handles key presses while editing.
func (form *Form) Update(msg tea.Msg) tea.Cmd {

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		form.Key(msg.String())
	}
	return nil
}

// View renders the fields, their errors and the audit details of the held record.
func (form *Form) View() string {

	item := form.source.Item()
	if item == nil {
		return style.MutedStyle.Render("No record selected")
	}

	var rows []string
	for i, fld := range form.fields {
		focused := form.focused && i == form.focus

		caption := style.CaptionStyle.Width(captionWidth).Render(fld.Caption())
		value := fld.Render(focused)
		switch {
		case focused:
			value = style.HlCellStyle.Render(value)
		case form.editable:
			value = style.InputStyle.Render(value)
		default:
			value = style.UnStyle.Render(value)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, caption, value))

		for _, msg := range form.errors[fld.Id()] {
			rows = append(rows, style.ErrorStyle.Render(
				fmt.Sprintf("%*s%s %s", captionWidth, "", fld.Caption(), msg)))
		}
	}

	if !item.IsNew() {
		rows = append(rows, "", form.audit(item))
	}

	return strings.Join(rows, "\n")
}

// unexported

func (form *Form) load(item *nt.HrQuery) {
	for _, fld := range form.fields {
		fld.Load(item)
	}
	form.errors = nil
}

func (form *Form) audit(item *nt.HrQuery) string {

	lines := []string{fmt.Sprintf("%-*s%d", captionWidth, "Version", item.Version)}
	if item.CreatedBy != "" {
		lines = append(lines, fmt.Sprintf("%-*s%s %s", captionWidth, "Created",
			item.CreatedBy, item.Value(nt.CreateTsProp).Format(tsFormat)))
	}
	if item.UpdatedBy != "" {
		lines = append(lines, fmt.Sprintf("%-*s%s %s", captionWidth, "Updated",
			item.UpdatedBy, item.Value(nt.UpdateTsProp).Format(tsFormat)))
	}
	return style.MutedStyle.Render(strings.Join(lines, "\n"))
}
