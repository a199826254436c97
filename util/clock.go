package util

import (
	"time"

	"github.com/mrkvon/sleepy.bike/core"
)

type systemClock struct {
}

func (c systemClock) Now() time.Time {
	return time.Now()
}

// NewSystemClock returns a clock backed by the wall clock.
func NewSystemClock() core.Clock {
	return systemClock{}
}
