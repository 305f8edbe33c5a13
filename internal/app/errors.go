package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrNoFeed     = errors.New("no feed configured")
	ErrNoSnapshot = errors.New("no snapshot available")
)
