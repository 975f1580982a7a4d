package hoard

import "errors"

// ErrInvalidCapacity is returned by New when the requested capacity is
// zero or negative. The cache cannot be constructed; there is no
// recovery short of calling New again with a valid capacity.
var ErrInvalidCapacity = errors.New("hoard: capacity must be positive")
