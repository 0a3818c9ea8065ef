package analytics

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDateRange marks unparsable or inverted custom ranges. They are
// rejected at the boundary instead of silently collapsing to a zero-length
// window.
var ErrInvalidDateRange = errors.New("invalid date range")

// DateRange is a closed-inclusive reporting window. Day-level ranges end at
// the last nanosecond of their final day.
type DateRange struct {
	Start time.Time `json:"startDate"`
	End   time.Time `json:"endDate"`
	Label string    `json:"label"`
}

// Preset keys accepted by ResolvePreset.
const (
	RangeToday      = "today"
	RangeYesterday  = "yesterday"
	RangeLast7Days  = "last7Days"
	RangeLast30Days = "last30Days"
	RangeLast90Days = "last90Days"
	RangeThisWeek   = "thisWeek"
	RangeThisMonth  = "thisMonth"
)

// ResolvePreset maps a named preset onto a concrete range relative to now,
// evaluated in the given reporting timezone.
func ResolvePreset(key string, now time.Time, loc *time.Location) (DateRange, error) {
	now = now.In(loc)
	switch key {
	case RangeToday:
		return DateRange{Start: startOfDay(now), End: endOfDay(now), Label: "Today"}, nil
	case RangeYesterday:
		y := now.AddDate(0, 0, -1)
		return DateRange{Start: startOfDay(y), End: endOfDay(y), Label: "Yesterday"}, nil
	case RangeLast7Days:
		return trailingDays(now, 7, "Last 7 Days"), nil
	case RangeLast30Days:
		return trailingDays(now, 30, "Last 30 Days"), nil
	case RangeLast90Days:
		return trailingDays(now, 90, "Last 90 Days"), nil
	case RangeThisWeek:
		return DateRange{Start: startOfWeek(now), End: endOfDay(now), Label: "This Week"}, nil
	case RangeThisMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return DateRange{Start: first, End: endOfDay(now), Label: "This Month"}, nil
	default:
		return DateRange{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidDateRange, key)
	}
}

// CustomRange builds an explicit range from whole-day bounds.
func CustomRange(from, to time.Time) (DateRange, error) {
	start := startOfDay(from)
	end := endOfDay(to)
	if end.Before(start) {
		return DateRange{}, fmt.Errorf("%w: end %s before start %s",
			ErrInvalidDateRange, to.Format("2006-01-02"), from.Format("2006-01-02"))
	}
	return DateRange{Start: start, End: end, Label: "Custom Range"}, nil
}

// ParseCustomRange accepts RFC3339 timestamps or plain 2006-01-02 dates,
// interpreted in the reporting timezone.
func ParseCustomRange(from, to string, loc *time.Location) (DateRange, error) {
	start, err := parseDateInput(from, loc)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: start %q", ErrInvalidDateRange, from)
	}
	end, err := parseDateInput(to, loc)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: end %q", ErrInvalidDateRange, to)
	}
	return CustomRange(start, end)
}

// WeekOf returns the seven-day range anchored at the given start date, used
// for weekly report navigation.
func WeekOf(start time.Time, loc *time.Location) DateRange {
	start = start.In(loc)
	return DateRange{
		Start: startOfDay(start),
		End:   endOfDay(start.AddDate(0, 0, 6)),
		Label: "Week of " + startOfDay(start).Format("Jan 2, 2006"),
	}
}

// PreviousPeriod derives the immediately preceding window of equal duration.
// It holds for arbitrary range lengths: the previous end sits one nanosecond
// before the current start, so adjacent periods never overlap or gap.
func PreviousPeriod(r DateRange) DateRange {
	span := r.End.Sub(r.Start)
	end := r.Start.Add(-time.Nanosecond)
	return DateRange{
		Start: end.Add(-span),
		End:   end,
		Label: "Previous Period",
	}
}

func parseDateInput(value string, loc *time.Location) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed.In(loc), nil
	}
	if parsed, err := time.ParseInLocation("2006-01-02", value, loc); err == nil {
		return parsed, nil
	}
	return time.Time{}, errors.New("unparsable date")
}

func trailingDays(now time.Time, days int, label string) DateRange {
	return DateRange{
		Start: startOfDay(now.AddDate(0, 0, -(days - 1))),
		End:   endOfDay(now),
		Label: label,
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// startOfWeek treats Monday as the first day of the week.
func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return startOfDay(t.AddDate(0, 0, -offset))
}
