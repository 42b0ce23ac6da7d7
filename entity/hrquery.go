package entity

import (
	"time"

	"github.com/google/uuid"
)

// NameLength is the storage length of the name column.
const NameLength = 255

// Property names, as used by views and the table layout.
const (
	IdProp        = "id"
	VersionProp   = "version"
	NameProp      = "name"
	CreateTsProp  = "createTs"
	CreatedByProp = "createdBy"
	UpdateTsProp  = "updateTs"
	UpdatedByProp = "updatedBy"
)

// HrQuery is a named HR query record.
type HrQuery struct {
	ID      uuid.UUID
	Version int // zero until first persisted

	CreateTs  time.Time
	CreatedBy string
	UpdateTs  time.Time
	UpdatedBy string
	DeleteTs  time.Time
	DeletedBy string

	Name string

	// LoadedWith is the name of the view the instance was loaded with
	LoadedWith string
}

// New returns a transient record with a freshly assigned id.
func New() *HrQuery {
	return &HrQuery{
		ID:         uuid.New(),
		LoadedWith: LocalView.Name,
	}
}

// IsNew reports whether the record has never been persisted.
func (hq *HrQuery) IsNew() bool {
	return hq.Version == 0
}

// IsDeleted reports whether the record has been soft deleted.
func (hq *HrQuery) IsDeleted() bool {
	return !hq.DeleteTs.IsZero()
}

// InstanceName returns the display name of the record.
func (hq *HrQuery) InstanceName() string {
	return hq.Name
}

// Clone returns an independent copy.
func (hq *HrQuery) Clone() *HrQuery {
	if hq == nil {
		return nil
	}
	clone := *hq
	return &clone
}

// Same reports whether both refer to the same record.
func (hq *HrQuery) Same(other *HrQuery) bool {
	if hq == nil || other == nil {
		return hq == other
	}
	return hq.ID == other.ID
}

// Value returns the named property wrapped for formatting.
func (hq *HrQuery) Value(prop string) Value {

	switch prop {
	case IdProp:
		return Value{Raw: hq.ID.String()}
	case VersionProp:
		return Value{Raw: int64(hq.Version)}
	case NameProp:
		return Value{Raw: hq.Name}
	case CreateTsProp:
		return Value{Raw: hq.CreateTs}
	case CreatedByProp:
		return Value{Raw: hq.CreatedBy}
	case UpdateTsProp:
		return Value{Raw: hq.UpdateTs}
	case UpdatedByProp:
		return Value{Raw: hq.UpdatedBy}
	}
	return Value{}
}
