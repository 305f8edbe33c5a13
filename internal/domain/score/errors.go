package score

import "errors"

// Sentinel kinds for score errors.
var (
	ErrNotFinite = errors.New("score is not finite")
)
