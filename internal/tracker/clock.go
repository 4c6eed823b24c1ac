package tracker

import "time"

// Clock abstracts the wall clock so reconciliation can be exercised at
// fixed instants.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
