package analytics

import (
	"context"

	"github.com/aalug/hiring-analytics-go/internal/aggregate"
	db "github.com/aalug/hiring-analytics-go/internal/db/sqlc"
	"github.com/aalug/hiring-analytics-go/internal/tenant"
	"golang.org/x/sync/errgroup"
)

// CompletionRecord is a course completion with its course and job.
type CompletionRecord struct {
	db.CourseCompletion
	Course db.Course `json:"course"`
	Job    db.Job    `json:"job"`
}

// ApplicationRecord is an application with the job it was made for.
type ApplicationRecord struct {
	db.Application
	Job db.Job `json:"job"`
}

// ViewRecord is a job view with the viewer's application and profile
// when they exist.
type ViewRecord struct {
	db.View
	Job         db.Job          `json:"job"`
	Application *db.Application `json:"application,omitempty"`
	Candidate   *db.Candidate   `json:"candidate,omitempty"`
}

// viewKey matches a view to the application made by the same person for the
// same job.
type viewKey struct {
	jobID       db.JobID
	applicantID db.CandidateID
}

func jobKey(job db.Job) db.JobID { return job.ID }

// ListJobs lists the employer's jobs, newest first.
func (s *Service) ListJobs(ctx context.Context, employerID db.EmployerID) ([]db.Job, error) {
	var jobs []db.Job
	err := s.run(ctx, "list_jobs", employerID, func(ctx context.Context) error {
		var err error
		jobs, err = tenant.New(employerID).Jobs(ctx, s.store, nil)
		return err
	})
	return jobs, err
}

// GetJob returns one of the employer's jobs.
func (s *Service) GetJob(ctx context.Context, employerID db.EmployerID, jobID db.JobID) (db.Job, error) {
	var job db.Job
	err := s.run(ctx, "get_job", employerID, func(ctx context.Context) error {
		var err error
		job, err = tenant.New(employerID).Job(ctx, s.store, jobID)
		return err
	})
	return job, err
}

// ListCourses lists the shared course catalog, newest first.
func (s *Service) ListCourses(ctx context.Context, employerID db.EmployerID) ([]db.Course, error) {
	var courses []db.Course
	err := s.run(ctx, "list_courses", employerID, func(ctx context.Context) error {
		var err error
		courses, err = s.store.ListCourses(ctx)
		return err
	})
	return courses, err
}

// ListCourseCompletions lists completions attributed to the employer's jobs,
// most recent first.
func (s *Service) ListCourseCompletions(ctx context.Context, employerID db.EmployerID) ([]CompletionRecord, error) {
	scope := tenant.New(employerID)

	var records []CompletionRecord
	err := s.run(ctx, "list_course_completions", employerID, func(ctx context.Context) error {
		var (
			jobs        []db.Job
			completions []db.CourseCompletion
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			jobs, err = scope.Jobs(gctx, s.store, nil)
			return err
		})
		g.Go(func() error {
			var err error
			completions, err = scope.CourseCompletions(gctx, s.store, false, nil)
			return err
		})
		if err := g.Wait(); err != nil {
			return err
		}

		courseIDs := aggregate.Distinct(completions, func(c db.CourseCompletion) db.CourseID { return c.CourseID })
		courses, err := s.store.ListCoursesByIDs(ctx, courseIDs)
		if err != nil {
			return err
		}

		withCourse := aggregate.InnerJoin(completions, courses,
			func(c db.CourseCompletion) db.CourseID { return c.CourseID },
			func(c db.Course) db.CourseID { return c.ID },
		)
		withJob := aggregate.InnerJoin(withCourse, jobs,
			func(row aggregate.Joined[db.CourseCompletion, db.Course]) db.JobID { return row.Left.JobID.JobID },
			jobKey,
		)

		records = make([]CompletionRecord, 0, len(withJob))
		for _, row := range withJob {
			records = append(records, CompletionRecord{
				CourseCompletion: row.Left.Left,
				Course:           row.Left.Right,
				Job:              row.Right,
			})
		}
		return nil
	})
	return records, err
}

// ListApplications lists applications to the employer's jobs, most recent first.
func (s *Service) ListApplications(ctx context.Context, employerID db.EmployerID) ([]ApplicationRecord, error) {
	scope := tenant.New(employerID)

	var records []ApplicationRecord
	err := s.run(ctx, "list_applications", employerID, func(ctx context.Context) error {
		var (
			jobs         []db.Job
			applications []db.Application
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
		if err := g.Wait(); err != nil {
			return err
		}

		joined := aggregate.InnerJoin(applications, jobs,
			func(a db.Application) db.JobID { return a.JobID },
			jobKey,
		)
		records = make([]ApplicationRecord, 0, len(joined))
		for _, row := range joined {
			records = append(records, ApplicationRecord{Application: row.Left, Job: row.Right})
		}
		return nil
	})
	return records, err
}

// ListViews lists views of the employer's jobs, most recent first. A view
// carries the viewer's application to that job and their profile when
// either exists.
func (s *Service) ListViews(ctx context.Context, employerID db.EmployerID) ([]ViewRecord, error) {
	scope := tenant.New(employerID)

	var records []ViewRecord
	err := s.run(ctx, "list_views", employerID, func(ctx context.Context) error {
		var (
			jobs         []db.Job
			views        []db.View
			applications []db.Application
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			jobs, err = scope.Jobs(gctx, s.store, nil)
			return err
		})
		g.Go(func() error {
			var err error
			views, err = scope.Views(gctx, s.store)
			return err
		})
		g.Go(func() error {
			var err error
			applications, err = scope.Applications(gctx, s.store, nil)
			return err
		})
		if err := g.Wait(); err != nil {
			return err
		}

		viewers := aggregate.Distinct(views, func(v db.View) db.CandidateID { return v.ApplicantID })
		candidates, err := s.store.ListCandidatesByIDs(ctx, viewers)
		if err != nil {
			return err
		}

		withJob := aggregate.InnerJoin(views, jobs,
			func(v db.View) db.JobID { return v.JobID },
			jobKey,
		)
		withApplication := aggregate.LeftJoin(withJob, applications,
			func(row aggregate.Joined[db.View, db.Job]) viewKey {
				return viewKey{jobID: row.Left.JobID, applicantID: row.Left.ApplicantID}
			},
			func(a db.Application) viewKey {
				return viewKey{jobID: a.JobID, applicantID: a.ApplicantID}
			},
		)
		byID := aggregate.Index(candidates, func(c db.Candidate) db.CandidateID { return c.ID })

		records = make([]ViewRecord, 0, len(withApplication))
		for _, row := range withApplication {
			record := ViewRecord{
				View: row.Left.Left,
				Job:  row.Left.Right,
			}
			if row.Matched {
				application := row.Right
				record.Application = &application
			}
			if candidate, ok := byID[record.ApplicantID]; ok {
				record.Candidate = &candidate
			}
			records = append(records, record)
		}
		return nil
	})
	return records, err
}
