package entity

import "slices"

// View specifies which properties to load for a record, much like a fetch plan.
// Id and version are always loaded.
type View struct {
	Name       string
	Properties []string
}

var (
	// MinimalView loads what is needed to show a record in a list.
	MinimalView = View{
		Name:       "_minimal",
		Properties: []string{NameProp},
	}

	// LocalView loads every local attribute.
	LocalView = View{
		Name: "_local",
		Properties: []string{
			NameProp,
			CreateTsProp,
			CreatedByProp,
			UpdateTsProp,
			UpdatedByProp,
		},
	}
)

// Has reports whether the view includes prop.
func (vw View) Has(prop string) bool {
	if prop == IdProp || prop == VersionProp {
		return true
	}
	return slices.Contains(vw.Properties, prop)
}

// Covers reports whether everything in other is also in vw.
func (vw View) Covers(other View) bool {
	for _, prop := range other.Properties {
		if !vw.Has(prop) {
			return false
		}
	}
	return true
}
