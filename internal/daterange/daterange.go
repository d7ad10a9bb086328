// Package daterange turns report request parameters into a concrete time window.
package daterange

import (
	"database/sql"
	"time"

	"github.com/aalug/hiring-analytics-go/internal/apperror"
	"github.com/aalug/hiring-analytics-go/pkg/validation"
)

// Period names a window that ends now.
type Period string

const (
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

const day = 24 * time.Hour

var periodDays = map[Period]int{
	PeriodWeek:    7,
	PeriodMonth:   30,
	PeriodQuarter: 90,
	PeriodYear:    365,
}

// accepted date layouts, tried in order
var layouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// Params are the raw range parameters of a report request.
type Params struct {
	Start  string `form:"start"`
	End    string `form:"end"`
	Period string `form:"period"`
}

// Window is the half-open interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside [Start, End).
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Bounds returns the window as nullable query arguments.
func (w Window) Bounds() (sql.NullTime, sql.NullTime) {
	return sql.NullTime{Time: w.Start, Valid: true}, sql.NullTime{Time: w.End, Valid: true}
}

// Resolve picks the window for params relative to now.
// An explicit start/end pair wins over a period; no parameters mean the last 30 days.
// A reversed pair is kept as is and simply matches nothing.
func Resolve(params Params, now time.Time) (Window, error) {
	start, err := parseDate("start", params.Start)
	if err != nil {
		return Window{}, err
	}
	end, err := parseDate("end", params.End)
	if err != nil {
		return Window{}, err
	}

	if !start.IsZero() && !end.IsZero() {
		return Window{Start: start, End: end}, nil
	}

	period := PeriodMonth
	if params.Period != "" {
		if err := validation.ValidateOneOf("period", params.Period,
			string(PeriodWeek), string(PeriodMonth), string(PeriodQuarter), string(PeriodYear)); err != nil {
			return Window{}, apperror.Validation("invalid range", err)
		}
		period = Period(params.Period)
	}

	return Last(periodDays[period], now), nil
}

// Last returns the window of the given number of days ending at now.
func Last(days int, now time.Time) Window {
	return Window{
		Start: now.Add(-time.Duration(days) * day),
		End:   now,
	}
}

func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}

	return time.Time{}, apperror.Validation("invalid "+field+" date", lastErr)
}
