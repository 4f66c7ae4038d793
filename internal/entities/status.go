package entities

import "fmt"

// Status is the enable/disable gate shared by attributes and attribute values.
// The numeric values are the ones stored in the database and sent on the wire.
type Status int

const (
	// StatusEnabled marks a row that may be referenced by new products
	StatusEnabled Status = 1
	// StatusDisabled marks a row that is kept only for historical references
	StatusDisabled Status = 2
)

// IsValid reports whether s is one of the known statuses
func (s Status) IsValid() bool {
	return s == StatusEnabled || s == StatusDisabled
}

// String returns a string representation of the status
func (s Status) String() string {
	switch s {
	case StatusEnabled:
		return "enabled"
	case StatusDisabled:
		return "disabled"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}
