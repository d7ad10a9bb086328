package analytics

import (
	"context"
	"sort"

	"github.com/aalug/hiring-analytics-go/internal/aggregate"
	"github.com/aalug/hiring-analytics-go/internal/daterange"
	db "github.com/aalug/hiring-analytics-go/internal/db/sqlc"
	"github.com/aalug/hiring-analytics-go/internal/tenant"
)

// StatusCount is the number of jobs in one status.
type StatusCount struct {
	Status db.JobStatus `json:"status"`
	Count  int64        `json:"count"`
}

// HiringStatus counts the jobs created within the window by status.
// Unrecognized statuses are reported under "other".
func (s *Service) HiringStatus(ctx context.Context, employerID db.EmployerID, params daterange.Params) ([]StatusCount, error) {
	window, err := s.window(params)
	if err != nil {
		return nil, err
	}

	var rows []StatusCount
	err = s.run(ctx, "hiring_status", employerID, func(ctx context.Context) error {
		jobs, err := tenant.New(employerID).Jobs(ctx, s.store, &window)
		if err != nil {
			return err
		}
		rows = hiringStatus(jobs)
		return nil
	})
	return rows, err
}

func hiringStatus(jobs []db.Job) []StatusCount {
	groups := aggregate.GroupBy(jobs,
		func(job db.Job) db.JobStatus { return job.Status.Bucket() },
		aggregate.Count[db.Job]("count"),
	)

	rows := make([]StatusCount, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, StatusCount{Status: g.Key, Count: g.Int("count")})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})
	return rows
}
