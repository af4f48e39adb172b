package layoutgen

import "errors"

// ErrMissingPosition indicates a layout function produced no position for a
// vertex the abstract generator actually emitted an edge for.
var ErrMissingPosition = errors.New("layoutgen: vertex has no assigned position")
