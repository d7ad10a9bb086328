package db

import (
	"context"
)

// Querier lists the read queries the reports are built from.
// Every employer-scoped query applies the ownership predicate in SQL.
type Querier interface {
	GetEmployer(ctx context.Context, id EmployerID) (Employer, error)
	GetJob(ctx context.Context, id JobID) (Job, error)
	ListJobsByEmployer(ctx context.Context, arg ListJobsByEmployerParams) ([]Job, error)
	ListApplicationsByEmployer(ctx context.Context, arg ListApplicationsByEmployerParams) ([]Application, error)
	ListApplicationsByJob(ctx context.Context, jobID JobID) ([]Application, error)
	CountViewsByJob(ctx context.Context, jobID JobID) (int64, error)
	ListViewsByEmployer(ctx context.Context, employerID EmployerID) ([]View, error)
	ListSkillScoresByCandidates(ctx context.Context, candidateIDs []CandidateID) ([]SkillScore, error)
	ListCourseCompletionsByEmployer(ctx context.Context, arg ListCourseCompletionsByEmployerParams) ([]CourseCompletion, error)
	ListCourses(ctx context.Context) ([]Course, error)
	ListCoursesByIDs(ctx context.Context, ids []CourseID) ([]Course, error)
	ListCandidatesByIDs(ctx context.Context, ids []CandidateID) ([]Candidate, error)
}

var _ Querier = (*Queries)(nil)
