package logger

import "errors"

// ErrUnknownLevel is returned for unrecognized level names.
var ErrUnknownLevel = errors.New("unknown log level")
