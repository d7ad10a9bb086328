package analytics

import (
	"context"

	"github.com/aalug/hiring-analytics-go/internal/aggregate"
	db "github.com/aalug/hiring-analytics-go/internal/db/sqlc"
	"github.com/aalug/hiring-analytics-go/internal/tenant"
	"golang.org/x/sync/errgroup"
)

// Funnel is the stage breakdown of one job. Applications counts only rows
// still in the applied state, so the stages need not be monotone.
type Funnel struct {
	Views        int64 `json:"views"`
	Applications int64 `json:"applications"`
	Shortlisted  int64 `json:"shortlisted"`
	Interviewed  int64 `json:"interviewed"`
	Hired        int64 `json:"hired"`
}

// Funnel counts views and applications per stage for a job the employer owns.
func (s *Service) Funnel(ctx context.Context, employerID db.EmployerID, jobID db.JobID) (Funnel, error) {
	var funnel Funnel
	err := s.run(ctx, "funnel", employerID, func(ctx context.Context) error {
		job, err := tenant.New(employerID).Job(ctx, s.store, jobID)
		if err != nil {
			return err
		}

		var (
			views        int64
			applications []db.Application
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			views, err = s.store.CountViewsByJob(gctx, job.ID)
			return err
		})
		g.Go(func() error {
			var err error
			applications, err = s.store.ListApplicationsByJob(gctx, job.ID)
			return err
		})
		if err := g.Wait(); err != nil {
			return err
		}

		stages := aggregate.Reduce(applications,
			aggregate.CountWhere("applied", applicationIs(db.ApplicationStatusApplied)),
			aggregate.CountWhere("shortlisted", applicationIs(db.ApplicationStatusShortlisted)),
			aggregate.CountWhere("interviewed", applicationIs(db.ApplicationStatusInterviewed)),
			aggregate.CountWhere("hired", applicationIs(db.ApplicationStatusHired)),
		)
		funnel = Funnel{
			Views:        views,
			Applications: stages.Int("applied"),
			Shortlisted:  stages.Int("shortlisted"),
			Interviewed:  stages.Int("interviewed"),
			Hired:        stages.Int("hired"),
		}
		return nil
	})
	return funnel, err
}
