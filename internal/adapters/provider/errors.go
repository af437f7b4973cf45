package provider

import "errors"

// Sentinel errors for this package.
var (
	ErrUpstreamStatus = errors.New("upstream returned non-200 status")
	ErrDecode         = errors.New("decode upstream response")
	ErrInvalidRange   = errors.New("invalid date range")
	ErrFixture        = errors.New("invalid fixture")
)
