package repositories

import "errors"

// ErrDuplicateName is returned by Create and Update when the store rejects a
// name that is already used by another non-deleted row.
var ErrDuplicateName = errors.New("duplicate name")
