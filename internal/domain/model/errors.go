package model

import "errors"

// ErrInvalidGame marks a game record rejected at the aggregation boundary.
var ErrInvalidGame = errors.New("invalid game record")
