package browse

import nt "hrquery/entity"

// Mode is the state of the screen: Browsing or Editing.
type Mode interface {
	isMode()
}

// Browsing lets the list take input while the form is read only.
type Browsing struct{}

// Editing has the form take input while the list is disabled.
type Editing struct {
	// Creating is set when the form holds a transient record
	Creating bool

	// prior is the row selected when editing began
	prior *nt.HrQuery
}

func (Browsing) isMode() {}
func (Editing) isMode()  {}

// Focus names the component holding input focus.
type Focus int

const (
	FocusList Focus = iota
	FocusForm
)

func (fc Focus) String() string {
	if fc == FocusForm {
		return "form"
	}
	return "list"
}
