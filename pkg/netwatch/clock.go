package netwatch

import "time"

// Clock supplies the current time. The indirection exists so observer
// tests can drive time by hand; production code uses the system clock.
type Clock interface {
	Now() time.Time
}

// systemClock reads time.Now, which in Go carries a monotonic reading
// and is safe for measuring response times.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
