package entity

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// Value wraps a property value and provides conversion helpers.
type Value struct {
	Raw any
}

// String returns the value as a string.
func (v Value) String() string {
	if v.Raw == nil {
		return ""
	}
	if t, ok := v.Raw.(time.Time); ok && t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%v", v.Raw)
}

// Int returns the value as an int.
func (v Value) Int() (int, error) {
	i, ok := v.Raw.(int64)
	if !ok {
		return 0, errors.Errorf("value is not an int64: %T", v.Raw)
	}
	return int(i), nil
}

// Time returns the value as a time.Time.
func (v Value) Time() (time.Time, error) {
	t, ok := v.Raw.(time.Time)
	if !ok {
		return time.Time{}, errors.Errorf("value is not a time.Time: %T", v.Raw)
	}
	return t, nil
}

// Format renders the value, applying a time layout when given one for a time.
func (v Value) Format(layout string) string {
	if layout == "" {
		return v.String()
	}

	t, err := v.Time()
	if err != nil || t.IsZero() {
		return v.String()
	}
	return t.Local().Format(layout)
}
