package types

import "time"

// ExecutionContext supplies the time window a query aggregates over.
// Both values are optional.
type ExecutionContext interface {
	// TimeSeriesPeriod is the bucket size of a time-series query.
	TimeSeriesPeriod() (time.Duration, bool)
	// TimeRangeDuration is the length of the whole queried range.
	TimeRangeDuration() (time.Duration, bool)
}

// TimeWindow is the ExecutionContext derived from a query's time filter and
// its optional time-series grouping.
type TimeWindow struct {
	Start  time.Time
	End    time.Time
	Period time.Duration
}

// EmptyWindow carries neither a period nor a range.
var EmptyWindow = TimeWindow{}

func NewTimeWindow(start, end time.Time) TimeWindow {
	return TimeWindow{Start: start, End: end}
}

// RangeOf returns a window of length d ending now.
func RangeOf(d time.Duration) TimeWindow {
	end := time.Now()
	return TimeWindow{Start: end.Add(-d), End: end}
}

func (w TimeWindow) WithPeriod(period time.Duration) TimeWindow {
	w.Period = period
	return w
}

func (w TimeWindow) TimeSeriesPeriod() (time.Duration, bool) {
	if w.Period == 0 {
		return 0, false
	}
	return w.Period, true
}

func (w TimeWindow) TimeRangeDuration() (time.Duration, bool) {
	if w.Start.IsZero() || w.End.IsZero() {
		return 0, false
	}
	return w.End.Sub(w.Start), true
}
