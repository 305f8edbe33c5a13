package feed

import "errors"

// Sentinel kinds for feed errors.
var (
	ErrUnavailable = errors.New("feed unavailable")
	ErrBadPayload  = errors.New("feed payload malformed")
)
