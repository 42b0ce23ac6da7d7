package entity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ErrNotFound indicates a record is missing or has been removed.
var ErrNotFound = errors.New("record not found")

// ConflictError indicates a record changed in storage since it was loaded.
type ConflictError struct {
	ID       string
	Expected int // version the caller held
	Stored   int // version found in storage
}

func (err *ConflictError) Error() string {
	return fmt.Sprintf("record %s was modified by another user (version %d, expected %d)",
		err.ID, err.Stored, err.Expected)
}

// ValidationError holds messages per field.
type ValidationError struct {
	Fields map[string][]string
}

func (err *ValidationError) Error() string {

	names := make([]string, 0, len(err.Fields))
	for name := range err.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+strings.Join(err.Fields[name], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// IsConflict reports whether err is or wraps a ConflictError.
func IsConflict(err error) bool {
	var conflict *ConflictError
	return errors.As(err, &conflict)
}
