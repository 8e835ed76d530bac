package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the requested mutation is not allowed in the
// resource's current state (e.g., modifying a locked capital record).
var ErrConflict = errors.New("conflict with current resource state")

// ErrUnavailable indicates that the underlying store could not be reached.
// Aggregations abort entirely on this error; callers may retry.
var ErrUnavailable = errors.New("store unavailable")
