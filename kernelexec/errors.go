package kernelexec

import "errors"

// ErrUnknownMethod is returned when Execute is given a method name with no
// registered handler.
var ErrUnknownMethod = errors.New("kernelexec: unknown method")

// ErrMissingParam is returned when a handler's required parameter is absent.
var ErrMissingParam = errors.New("kernelexec: missing parameter")

// ErrInvalidParam is returned when a parameter is present but not the
// expected shape (e.g. a coordinate pair that isn't a two-element array of
// numbers).
var ErrInvalidParam = errors.New("kernelexec: invalid parameter")
