package analytics

import "errors"

// ErrAlreadyStopped is returned when stopping a session that has already
// been stopped. The session is left untouched.
var ErrAlreadyStopped = errors.New("session already stopped")
