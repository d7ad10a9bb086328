// Package tenant scopes record reads to the jobs of one employer.
package tenant

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aalug/hiring-analytics-go/internal/apperror"
	"github.com/aalug/hiring-analytics-go/internal/daterange"
	db "github.com/aalug/hiring-analytics-go/internal/db/sqlc"
)

// ErrJobNotFound is returned for a job that does not exist and for a job
// owned by another employer alike.
var ErrJobNotFound = apperror.NotFound("job not found")

// Scope is the ownership predicate of a single employer.
// Jobs are owned directly; applications, views and course completions are
// owned through their job. Every read pushes the predicate into the query.
type Scope struct {
	employerID db.EmployerID
}

// New returns the scope of the given employer.
func New(employerID db.EmployerID) Scope {
	return Scope{employerID: employerID}
}

// OwnsJob is the direct ownership predicate.
func (s Scope) OwnsJob(job db.Job) bool {
	return job.EmployerID == s.employerID
}

// OwnsThrough returns the transitive predicate for records referencing a job:
// a job id is owned when it is among the given jobs and those jobs are owned.
func (s Scope) OwnsThrough(jobs []db.Job) func(db.JobID) bool {
	owned := make(map[db.JobID]struct{}, len(jobs))
	for _, job := range jobs {
		if s.OwnsJob(job) {
			owned[job.ID] = struct{}{}
		}
	}
	return func(id db.JobID) bool {
		_, ok := owned[id]
		return ok
	}
}

// Job loads one job and checks ownership.
func (s Scope) Job(ctx context.Context, store db.Querier, jobID db.JobID) (db.Job, error) {
	job, err := store.GetJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return db.Job{}, ErrJobNotFound
		}
		return db.Job{}, fmt.Errorf("get job %d: %w", jobID, err)
	}
	if !s.OwnsJob(job) {
		return db.Job{}, ErrJobNotFound
	}
	return job, nil
}

// Jobs lists the employer's jobs, optionally limited to those created in window.
func (s Scope) Jobs(ctx context.Context, store db.Querier, window *daterange.Window) ([]db.Job, error) {
	arg := db.ListJobsByEmployerParams{EmployerID: s.employerID}
	if window != nil {
		arg.CreatedFrom, arg.CreatedTo = window.Bounds()
	}
	jobs, err := store.ListJobsByEmployer(ctx, arg)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

// Applications lists applications to the employer's jobs, optionally limited
// to those submitted in window.
func (s Scope) Applications(ctx context.Context, store db.Querier, window *daterange.Window) ([]db.Application, error) {
	arg := db.ListApplicationsByEmployerParams{EmployerID: s.employerID}
	if window != nil {
		arg.AppliedFrom, arg.AppliedTo = window.Bounds()
	}
	applications, err := store.ListApplicationsByEmployer(ctx, arg)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return applications, nil
}

// CourseCompletions lists completions attributed to the employer's jobs.
func (s Scope) CourseCompletions(ctx context.Context, store db.Querier, hiredOnly bool, window *daterange.Window) ([]db.CourseCompletion, error) {
	arg := db.ListCourseCompletionsByEmployerParams{
		EmployerID: s.employerID,
		HiredOnly:  hiredOnly,
	}
	if window != nil {
		arg.CompletedFrom, arg.CompletedTo = window.Bounds()
	}
	completions, err := store.ListCourseCompletionsByEmployer(ctx, arg)
	if err != nil {
		return nil, fmt.Errorf("list course completions: %w", err)
	}
	return completions, nil
}

// Views lists views of the employer's jobs.
func (s Scope) Views(ctx context.Context, store db.Querier) ([]db.View, error) {
	views, err := store.ListViewsByEmployer(ctx, s.employerID)
	if err != nil {
		return nil, fmt.Errorf("list views: %w", err)
	}
	return views, nil
}
