package store

import "errors"

// ErrNotFound is returned for lookups outside the stored data, e.g. a
// history index past the end.
var ErrNotFound = errors.New("not found")
