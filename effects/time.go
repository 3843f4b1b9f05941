package effects

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

type TimeSpan = timespan.TimeSpan

func NewTimeSpan(from, to time.Time) TimeSpan {
	return timespan.BetweenTimes(from, to)
}

// TimeBounded is implemented by anything scheduled over a window of time.
type TimeBounded interface {
	TimeSpan() TimeSpan
}
