package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const minutesPerDay = 24 * 60

// ErrTimeWindowIsNotConstructed is returned when using a TimeWindow that was
// not created via NewTimeWindow or ParseTimeWindow.
var ErrTimeWindowIsNotConstructed = errs.NewValueIsRequiredError(
	"TimeWindow must be created via NewTimeWindow or ParseTimeWindow")

// TimeOfDay is a time of day in minutes since midnight, in [0, 1439].
type TimeOfDay int

// NewTimeOfDay validates and returns a time of day.
func NewTimeOfDay(minutes int) (TimeOfDay, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return 0, errs.NewValueIsOutOfRangeError("minutes", minutes, 0, minutesPerDay-1)
	}
	return TimeOfDay(minutes), nil
}

// ParseTimeOfDay parses an "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	formatErr := errs.NewValueIsInvalidErrorWithCause(
		"time of day",
		fmt.Errorf("%q is not in HH:MM format", s),
	)

	if len(s) != 5 || s[2] != ':' {
		return 0, formatErr
	}

	hours, err := strconv.Atoi(s[:2])
	if err != nil {
		return 0, formatErr
	}

	minutes, err := strconv.Atoi(s[3:])
	if err != nil {
		return 0, formatErr
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"time of day",
			fmt.Errorf("%q is out of the 24-hour clock", s),
		)
	}

	return TimeOfDay(hours*60 + minutes), nil
}

// Minutes returns the raw minutes-since-midnight value.
func (t TimeOfDay) Minutes() int {
	return int(t)
}

// String formats the time as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// TimeWindow is a half-open interval of time of day, [Start, End). It backs
// both courier working hours and order delivery hours.
//
// A window whose start is not before its end is accepted syntactically but
// never overlaps any other window, so it matches nothing. Wrap-around past
// midnight is not supported.
type TimeWindow struct {
	start TimeOfDay
	end   TimeOfDay
	guard guard.ConstructorGuard
}

// NewTimeWindow creates a window from two times of day. The pair is not
// required to be ordered; an inverted window is valid but matches nothing.
func NewTimeWindow(start, end TimeOfDay) (TimeWindow, error) {
	if err := validateTimeOfDay(start); err != nil {
		return TimeWindow{}, err
	}
	if err := validateTimeOfDay(end); err != nil {
		return TimeWindow{}, err
	}

	return TimeWindow{start: start, end: end, guard: guard.NewConstructorGuard()}, nil
}

// ParseTimeWindow parses a canonical "HH:MM-HH:MM" string. The result
// re-serializes to the identical string via String.
func ParseTimeWindow(s string) (TimeWindow, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause(
			"time window",
			fmt.Errorf("%q is not in HH:MM-HH:MM format", s),
		)
	}

	start, err := ParseTimeOfDay(parts[0])
	if err != nil {
		return TimeWindow{}, err
	}

	end, err := ParseTimeOfDay(parts[1])
	if err != nil {
		return TimeWindow{}, err
	}

	return NewTimeWindow(start, end)
}

// ParseTimeWindows parses a list of canonical window strings, preserving order.
func ParseTimeWindows(strs []string) ([]TimeWindow, error) {
	windows := make([]TimeWindow, 0, len(strs))
	for _, s := range strs {
		w, err := ParseTimeWindow(s)
		if err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}
	return windows, nil
}

// Validate returns ErrTimeWindowIsNotConstructed for the zero value.
func (w TimeWindow) Validate() error {
	return w.guard.Validate(ErrTimeWindowIsNotConstructed)
}

// Start returns the inclusive start of the window.
func (w TimeWindow) Start() TimeOfDay {
	return w.start
}

// End returns the exclusive end of the window.
func (w TimeWindow) End() TimeOfDay {
	return w.end
}

// Overlaps reports whether two half-open windows share any instant:
// w.start < other.end AND other.start < w.end. Touching endpoints do not
// count, and an inverted window overlaps nothing.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.start < other.end && other.start < w.end
}

// IsEqual reports whether two windows cover the same interval.
func (w TimeWindow) IsEqual(other TimeWindow) bool {
	return w.start == other.start && w.end == other.end
}

// String formats the window as "HH:MM-HH:MM", round-tripping ParseTimeWindow.
func (w TimeWindow) String() string {
	return fmt.Sprintf("%s-%s", w.start, w.end)
}

func validateTimeOfDay(t TimeOfDay) error {
	_, err := NewTimeOfDay(t.Minutes())
	return err
}
