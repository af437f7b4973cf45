package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrNotFound     = errors.New("team not ranked")
	ErrInvalidLimit = errors.New("invalid limit")
	ErrNoSnapshot   = errors.New("no snapshot published yet")
)
