package availability

import "time"

// Clock isolates "now" so tests can pin the current day instead of
// depending on wall-clock execution time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
