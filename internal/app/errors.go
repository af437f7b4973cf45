package service

import "errors"

// Sentinel errors for the pipeline service.
var (
	ErrNoProvider = errors.New("no data provider configured")
)
