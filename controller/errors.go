package controller

import "errors"

var (
	// ErrNoBody is returned by New when no body is bound.
	ErrNoBody = errors.New("controller: no body")
	// ErrNoSpatialQuery is returned by New when no spatial query provider is bound.
	ErrNoSpatialQuery = errors.New("controller: no spatial query")
)
