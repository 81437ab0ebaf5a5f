package sorting

import "errors"

// ErrUnknownStrategy indicates a Strategy value or name that isn't one of the six sorting algorithms.
var ErrUnknownStrategy = errors.New("sorting: unknown strategy")
