package fixtures

import "errors"

// ErrInvalidConfig is returned for generator settings that cannot produce a
// league.
var ErrInvalidConfig = errors.New("invalid generator config")
