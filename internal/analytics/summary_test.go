package analytics

import (
	"context"
	"testing"

	"github.com/aalug/hiring-analytics-go/internal/apperror"
	"github.com/aalug/hiring-analytics-go/internal/daterange"
	db "github.com/aalug/hiring-analytics-go/internal/db/sqlc"
	"github.com/stretchr/testify/require"
)

const (
	employerA db.EmployerID = 1
	employerB db.EmployerID = 2
)

// pipelineFixture is a small two employer data set shared by the
// time-windowed report tests.
func pipelineFixture() *fixtureStore {
	return &fixtureStore{
		jobs: []db.Job{
			{ID: 1, EmployerID: employerA, Status: db.JobStatusOpen, CreatedAt: daysAgo(100)},
			{ID: 2, EmployerID: employerA, Status: db.JobStatusFilled, CreatedAt: daysAgo(10)},
			{ID: 3, EmployerID: employerA, Status: db.JobStatusArchived, CreatedAt: daysAgo(5)},
			{ID: 4, EmployerID: employerA, Status: db.JobStatus("paused"), CreatedAt: daysAgo(2)},
			{ID: 5, EmployerID: employerA, Status: db.JobStatusOpen, CreatedAt: daysAgo(3)},
			{ID: 6, EmployerID: employerA, Status: db.JobStatusOpen, CreatedAt: daysAgo(200)},
			{ID: 9, EmployerID: employerB, Status: db.JobStatusOpen, CreatedAt: daysAgo(1)},
		},
		applications: []db.Application{
			{ID: 1, JobID: 1, ApplicantID: 100, Status: db.ApplicationStatusApplied, AppliedAt: daysAgo(40), Location: country("Poland")},
			{ID: 2, JobID: 1, ApplicantID: 101, Status: db.ApplicationStatusInterviewed, AppliedAt: daysAgo(20), Location: country("Germany")},
			{ID: 3, JobID: 2, ApplicantID: 102, Status: db.ApplicationStatusHired, AppliedAt: daysAgo(5), Location: country("Poland")},
			{ID: 4, JobID: 2, ApplicantID: 103, Status: db.ApplicationStatusShortlisted, AppliedAt: daysAgo(1)},
			{ID: 5, JobID: 3, ApplicantID: 104, Status: db.ApplicationStatusHired, AppliedAt: daysAgo(60), Location: country("Germany")},
			{ID: 6, JobID: 9, ApplicantID: 105, Status: db.ApplicationStatusHired, AppliedAt: daysAgo(1), Location: country("Poland")},
			{ID: 7, JobID: 5, ApplicantID: 106, Status: db.ApplicationStatusApplied, AppliedAt: daysAgo(2), Location: country("Poland")},
		},
	}
}

func TestSummary(t *testing.T) {
	service := newFixtureService(pipelineFixture())

	testCases := []struct {
		name     string
		params   daterange.Params
		expected Summary
	}{
		{
			name:   "Default Window",
			params: daterange.Params{},
			expected: Summary{
				TotalJobs:          6,
				OpenJobs:           3,
				FilledJobs:         1,
				ArchivedJobs:       1,
				ApplicantsTotal:    6,
				Interviews:         1,
				Hires:              2,
				Shortlisted:        1,
				RecentApplications: 4,
				RecentHires:        1,
			},
		},
		{
			name:   "Year",
			params: daterange.Params{Period: "year"},
			expected: Summary{
				TotalJobs:          6,
				OpenJobs:           3,
				FilledJobs:         1,
				ArchivedJobs:       1,
				ApplicantsTotal:    6,
				Interviews:         1,
				Hires:              2,
				Shortlisted:        1,
				RecentApplications: 6,
				RecentHires:        2,
			},
		},
		{
			name:   "Explicit Range Wins Over Period",
			params: daterange.Params{Start: "2024-05-22", End: "2024-06-01", Period: "year"},
			expected: Summary{
				TotalJobs:          6,
				OpenJobs:           3,
				FilledJobs:         1,
				ArchivedJobs:       1,
				ApplicantsTotal:    6,
				Interviews:         1,
				Hires:              2,
				Shortlisted:        1,
				RecentApplications: 3,
				RecentHires:        1,
			},
		},
		{
			name:   "Reversed Range Matches Nothing",
			params: daterange.Params{Start: "2024-06-01", End: "2024-05-01"},
			expected: Summary{
				TotalJobs:       6,
				OpenJobs:        3,
				FilledJobs:      1,
				ArchivedJobs:    1,
				ApplicantsTotal: 6,
				Interviews:      1,
				Hires:           2,
				Shortlisted:     1,
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			summary, err := service.Summary(context.Background(), employerA, tc.params)
			require.NoError(t, err)
			require.Equal(t, tc.expected, summary)
		})
	}
}

func TestSummaryEmployerWithoutJobs(t *testing.T) {
	service := newFixtureService(pipelineFixture())

	summary, err := service.Summary(context.Background(), db.EmployerID(42), daterange.Params{})
	require.NoError(t, err)
	require.Equal(t, Summary{}, summary)

	service = newFixtureService(&fixtureStore{})
	summary, err = service.Summary(context.Background(), employerA, daterange.Params{Period: "week"})
	require.NoError(t, err)
	require.Equal(t, Summary{}, summary)
}

func TestSummaryInvalidRange(t *testing.T) {
	service := newFixtureService(pipelineFixture())

	_, err := service.Summary(context.Background(), employerA, daterange.Params{Start: "yesterday", End: "2024-06-01"})
	require.Error(t, err)
	require.Equal(t, apperror.KindValidation, apperror.KindOf(err))

	_, err = service.Summary(context.Background(), employerA, daterange.Params{Period: "decade"})
	require.Error(t, err)
	require.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}
