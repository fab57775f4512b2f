package domain

import "github.com/kly4ev/SDA-BookingService/pkg/types"

// TimeWindow is a half-open [start, end) interval within a single day.
// Derived from a requested start time plus the resource's service duration;
// has no identity and is recomputed as needed.
type TimeWindow struct {
	Start types.TimeString
	End   types.TimeString
}

// NewTimeWindow builds a window from a start time and a duration in minutes
func NewTimeWindow(start types.TimeString, durationMinutes int) (TimeWindow, error) {
	if err := start.Validate(); err != nil {
		return TimeWindow{}, err
	}

	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return TimeWindow{}, err
	}

	return TimeWindow{Start: start, End: end}, nil
}

// Overlaps reports whether two half-open windows intersect.
// Touching endpoints do not conflict: [10:00, 11:00) and [11:00, 12:00) are disjoint.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.Start.IsBefore(other.End) && other.Start.IsBefore(w.End)
}

// FitsWithin reports whether the window lies entirely inside [open, close].
// A window ending exactly at closing time fits.
func (w TimeWindow) FitsWithin(open, close types.TimeString) bool {
	return !w.Start.IsBefore(open) && !w.End.IsAfter(close)
}
