package blockedRepo

import "errors"

// ErrDuplicate is returned when a slot for the same date and start already exists.
var ErrDuplicate = errors.New("time slot already blocked")
