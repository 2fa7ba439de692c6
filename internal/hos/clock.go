package hos

import "time"

// Clock supplies the current instant. Tests substitute a fixed or stepping
// clock; production uses SystemClock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }
