package analytics

import (
	"context"

	"github.com/aalug/hiring-analytics-go/internal/aggregate"
	"github.com/aalug/hiring-analytics-go/internal/daterange"
	db "github.com/aalug/hiring-analytics-go/internal/db/sqlc"
	"github.com/aalug/hiring-analytics-go/internal/tenant"
	"golang.org/x/sync/errgroup"
)

// Summary is the headline report of an employer.
// Every field is a count and is zero when nothing matched.
type Summary struct {
	TotalJobs          int64 `json:"total_jobs"`
	OpenJobs           int64 `json:"open_jobs"`
	FilledJobs         int64 `json:"filled_jobs"`
	ArchivedJobs       int64 `json:"archived_jobs"`
	ApplicantsTotal    int64 `json:"applicants_total"`
	Interviews         int64 `json:"interviews"`
	Hires              int64 `json:"hires"`
	Shortlisted        int64 `json:"shortlisted"`
	RecentApplications int64 `json:"recent_applications"`
	RecentHires        int64 `json:"recent_hires"`
}

func jobIs(status db.JobStatus) func(db.Job) bool {
	return func(job db.Job) bool { return job.Status.Bucket() == status }
}

func applicationIs(status db.ApplicationStatus) func(db.Application) bool {
	return func(a db.Application) bool { return a.Status.Bucket() == status }
}

// Summary counts the employer's jobs by status, all applications to them by
// status, and the applications submitted within the requested window.
// The three reads run concurrently and are not taken from one snapshot.
func (s *Service) Summary(ctx context.Context, employerID db.EmployerID, params daterange.Params) (Summary, error) {
	window, err := s.window(params)
	if err != nil {
		return Summary{}, err
	}

	var summary Summary
	err = s.run(ctx, "summary", employerID, func(ctx context.Context) error {
		var err error
		summary, err = s.summary(ctx, tenant.New(employerID), window)
		return err
	})
	return summary, err
}

func (s *Service) summary(ctx context.Context, scope tenant.Scope, window daterange.Window) (Summary, error) {
	var (
		jobs                 []db.Job
		applications, recent []db.Application
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		jobs, err = scope.Jobs(gctx, s.store, nil)
		return err
	})
	g.Go(func() error {
		var err error
		applications, err = scope.Applications(gctx, s.store, nil)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = scope.Applications(gctx, s.store, &window)
		return err
	})
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	jobStats := aggregate.Reduce(jobs,
		aggregate.Count[db.Job]("total"),
		aggregate.CountWhere("open", jobIs(db.JobStatusOpen)),
		aggregate.CountWhere("filled", jobIs(db.JobStatusFilled)),
		aggregate.CountWhere("archived", jobIs(db.JobStatusArchived)),
	)
	applicationStats := aggregate.Reduce(applications,
		aggregate.Count[db.Application]("total"),
		aggregate.CountWhere("interviewed", applicationIs(db.ApplicationStatusInterviewed)),
		aggregate.CountWhere("hired", applicationIs(db.ApplicationStatusHired)),
		aggregate.CountWhere("shortlisted", applicationIs(db.ApplicationStatusShortlisted)),
	)
	recentStats := aggregate.Reduce(recent,
		aggregate.Count[db.Application]("total"),
		aggregate.CountWhere("hired", applicationIs(db.ApplicationStatusHired)),
	)

	return Summary{
		TotalJobs:          jobStats.Int("total"),
		OpenJobs:           jobStats.Int("open"),
		FilledJobs:         jobStats.Int("filled"),
		ArchivedJobs:       jobStats.Int("archived"),
		ApplicantsTotal:    applicationStats.Int("total"),
		Interviews:         applicationStats.Int("interviewed"),
		Hires:              applicationStats.Int("hired"),
		Shortlisted:        applicationStats.Int("shortlisted"),
		RecentApplications: recentStats.Int("total"),
		RecentHires:        recentStats.Int("hired"),
	}, nil
}
