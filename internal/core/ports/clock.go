package ports

import "time"

// Clock supplies the current time for start/end stamping of orders and
// exception records. Abstracted so command handlers stay deterministic in tests.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time {
	return f()
}
