package daterange

import (
	"testing"
	"time"

	"github.com/aalug/hiring-analytics-go/internal/apperror"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		params   Params
		expected Window
	}{
		{
			name:   "Explicit Range Wins Over Period",
			params: Params{Start: "2024-01-01", End: "2024-01-31", Period: "year"},
			expected: Window{
				Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name:   "RFC3339 Range",
			params: Params{Start: "2024-01-01T08:30:00Z", End: "2024-01-02T08:30:00Z"},
			expected: Window{
				Start: time.Date(2024, 1, 1, 8, 30, 0, 0, time.UTC),
				End:   time.Date(2024, 1, 2, 8, 30, 0, 0, time.UTC),
			},
		},
		{
			name:   "Reversed Range Kept",
			params: Params{Start: "2024-02-01", End: "2024-01-01"},
			expected: Window{
				Start: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name:     "Week",
			params:   Params{Period: "week"},
			expected: Window{Start: now.Add(-7 * 24 * time.Hour), End: now},
		},
		{
			name:     "Month",
			params:   Params{Period: "month"},
			expected: Window{Start: now.Add(-30 * 24 * time.Hour), End: now},
		},
		{
			name:     "Quarter",
			params:   Params{Period: "quarter"},
			expected: Window{Start: now.Add(-90 * 24 * time.Hour), End: now},
		},
		{
			name:     "Year",
			params:   Params{Period: "year"},
			expected: Window{Start: now.Add(-365 * 24 * time.Hour), End: now},
		},
		{
			name:     "Default Is Last 30 Days",
			params:   Params{},
			expected: Window{Start: now.Add(-30 * 24 * time.Hour), End: now},
		},
		{
			name:     "Lone Start Falls Back To Period",
			params:   Params{Start: "2024-01-01", Period: "week"},
			expected: Window{Start: now.Add(-7 * 24 * time.Hour), End: now},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			window, err := Resolve(tc.params, now)
			require.NoError(t, err)
			require.True(t, tc.expected.Start.Equal(window.Start), "start: want %s, got %s", tc.expected.Start, window.Start)
			require.True(t, tc.expected.End.Equal(window.End), "end: want %s, got %s", tc.expected.End, window.End)
		})
	}
}

func TestResolveInvalid(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name   string
		params Params
	}{
		{
			name:   "Invalid Start",
			params: Params{Start: "not-a-date", End: "2024-01-31"},
		},
		{
			name:   "Invalid End",
			params: Params{Start: "2024-01-01", End: "2024-13-45"},
		},
		{
			name:   "Invalid Lone Start",
			params: Params{Start: "yesterday"},
		},
		{
			name:   "Unknown Period",
			params: Params{Period: "decade"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Resolve(tc.params, now)
			require.Error(t, err)
			require.Equal(t, apperror.KindValidation, apperror.KindOf(err))
		})
	}
}

func TestWindowContains(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	window := Window{Start: start, End: end}

	require.True(t, window.Contains(start))
	require.True(t, window.Contains(end.Add(-time.Nanosecond)))
	require.False(t, window.Contains(end))
	require.False(t, window.Contains(start.Add(-time.Nanosecond)))

	reversed := Window{Start: end, End: start}
	require.False(t, reversed.Contains(start))
	require.False(t, reversed.Contains(end))
}

func TestWindowBounds(t *testing.T) {
	window := Last(7, time.Now())
	from, to := window.Bounds()
	require.True(t, from.Valid)
	require.True(t, to.Valid)
	require.Equal(t, window.Start, from.Time)
	require.Equal(t, window.End, to.Time)
}
