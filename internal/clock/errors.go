package clock

import "errors"

var ErrRunning = errors.New("scheduler already running")
