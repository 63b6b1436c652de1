package services

import (
	"errors"
	"time"
)

const dateLayout = "2006-01-02"

var (
	ErrInvalidDate  = errors.New("Invalid date format. Use YYYY-MM-DD.")
	ErrInvalidRange = errors.New("Start date must be before or equal to end date.")
	ErrMissingParam = errors.New("Missing required query parameters: start and end")
)

// DateRange is an inclusive [Start, End] range of calendar dates, both at
// local midnight in the resolver's timezone.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) StartKey() string { return r.Start.Format(dateLayout) }
func (r DateRange) EndKey() string   { return r.End.Format(dateLayout) }

// Days lists every date in the range, in order.
func (r DateRange) Days() []time.Time {
	var days []time.Time
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// RangeResolver turns optional start/end query strings into a concrete
// DateRange. The timezone is explicit and the clock injectable so date
// defaults stay deterministic under test.
type RangeResolver struct {
	loc *time.Location
	now func() time.Time
}

func NewRangeResolver(loc *time.Location) *RangeResolver {
	return &RangeResolver{loc: loc, now: time.Now}
}

// Resolve applies the default rules: missing start is the Monday of the
// current week, missing end is min(start+6 days, today).
func (r *RangeResolver) Resolve(startStr, endStr string) (DateRange, error) {
	today := r.today()

	start := startOfWeek(today)
	if startStr != "" {
		t, err := r.ParseDate(startStr)
		if err != nil {
			return DateRange{}, err
		}
		start = t
	}

	var end time.Time
	if endStr != "" {
		t, err := r.ParseDate(endStr)
		if err != nil {
			return DateRange{}, err
		}
		end = t
	} else {
		end = start.AddDate(0, 0, 6)
		if end.After(today) {
			end = today
		}
	}

	if start.After(end) {
		return DateRange{}, ErrInvalidRange
	}
	return DateRange{Start: start, End: end}, nil
}

// ResolveStrict requires both parameters; the weekly report has no defaults.
func (r *RangeResolver) ResolveStrict(startStr, endStr string) (DateRange, error) {
	if startStr == "" || endStr == "" {
		return DateRange{}, ErrMissingParam
	}
	return r.Resolve(startStr, endStr)
}

// CurrentWeek is Monday through Sunday of the current week, regardless of
// today. Used for seeding and report dumps.
func (r *RangeResolver) CurrentWeek() DateRange {
	start := startOfWeek(r.today())
	return DateRange{Start: start, End: start.AddDate(0, 0, 6)}
}

// ParseDate parses a strict YYYY-MM-DD date in the resolver's timezone.
func (r *RangeResolver) ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, r.loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// ValidateDate parses and normalizes a date string to its YYYY-MM-DD key.
func (r *RangeResolver) ValidateDate(s string) (string, error) {
	t, err := r.ParseDate(s)
	if err != nil {
		return "", err
	}
	return t.Format(dateLayout), nil
}

func (r *RangeResolver) today() time.Time {
	n := r.now().In(r.loc)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, r.loc)
}

func startOfWeek(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return t.AddDate(0, 0, -(wd - 1)) // Monday
}
