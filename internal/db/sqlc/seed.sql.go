package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
)

// The queries in this file are used only to load demo data.
// Reports never write to the store.

const createEmployer = `-- name: CreateEmployer :one
INSERT INTO employers (name, email, industry)
VALUES ($1, $2, $3)
RETURNING id, name, email, industry, created_at
`

type CreateEmployerParams struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Industry string `json:"industry"`
}

func (q *Queries) CreateEmployer(ctx context.Context, arg CreateEmployerParams) (Employer, error) {
	row := q.db.QueryRowContext(ctx, createEmployer, arg.Name, arg.Email, arg.Industry)
	var i Employer
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.Industry,
		&i.CreatedAt,
	)
	return i, err
}

const createJob = `-- name: CreateJob :one
INSERT INTO jobs (employer_id, title, status, department, created_at, views)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, employer_id, title, status, department, created_at, views
`

type CreateJobParams struct {
	EmployerID EmployerID     `json:"employer_id"`
	Title      string         `json:"title"`
	Status     JobStatus      `json:"status"`
	Department sql.NullString `json:"department"`
	CreatedAt  time.Time      `json:"created_at"`
	Views      int32          `json:"views"`
}

func (q *Queries) CreateJob(ctx context.Context, arg CreateJobParams) (Job, error) {
	row := q.db.QueryRowContext(ctx, createJob,
		arg.EmployerID,
		arg.Title,
		arg.Status,
		arg.Department,
		arg.CreatedAt,
		arg.Views,
	)
	return scanJob(row)
}

const createCandidate = `-- name: CreateCandidate :one
INSERT INTO candidates (name, email, skills, experience)
VALUES ($1, $2, $3, $4)
RETURNING id, name, email, skills, experience, created_at
`

type CreateCandidateParams struct {
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Skills     []string      `json:"skills"`
	Experience sql.NullInt32 `json:"experience"`
}

func (q *Queries) CreateCandidate(ctx context.Context, arg CreateCandidateParams) (Candidate, error) {
	row := q.db.QueryRowContext(ctx, createCandidate, arg.Name, arg.Email, pq.Array(arg.Skills), arg.Experience)
	return scanCandidate(row)
}

const createApplication = `-- name: CreateApplication :one
INSERT INTO applications (job_id, applicant_id, status, applied_at, city, country, skills, experience, source)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id, job_id, applicant_id, status, applied_at, city, country, skills, experience, source
`

type CreateApplicationParams struct {
	JobID       JobID             `json:"job_id"`
	ApplicantID CandidateID       `json:"applicant_id"`
	Status      ApplicationStatus `json:"status"`
	AppliedAt   time.Time         `json:"applied_at"`
	Location    Location          `json:"location"`
	Skills      []string          `json:"skills"`
	Experience  sql.NullInt32     `json:"experience"`
	Source      string            `json:"source"`
}

func (q *Queries) CreateApplication(ctx context.Context, arg CreateApplicationParams) (Application, error) {
	row := q.db.QueryRowContext(ctx, createApplication,
		arg.JobID,
		arg.ApplicantID,
		arg.Status,
		arg.AppliedAt,
		arg.Location.City,
		arg.Location.Country,
		pq.Array(arg.Skills),
		arg.Experience,
		arg.Source,
	)
	return scanApplication(row)
}

const createView = `-- name: CreateView :exec
INSERT INTO views (job_id, applicant_id, viewed_at)
VALUES ($1, $2, $3)
`

type CreateViewParams struct {
	JobID       JobID       `json:"job_id"`
	ApplicantID CandidateID `json:"applicant_id"`
	ViewedAt    time.Time   `json:"viewed_at"`
}

func (q *Queries) CreateView(ctx context.Context, arg CreateViewParams) error {
	_, err := q.db.ExecContext(ctx, createView, arg.JobID, arg.ApplicantID, arg.ViewedAt)
	return err
}

const createSkillScore = `-- name: CreateSkillScore :exec
INSERT INTO skill_scores (candidate_id, job_id, skill, score)
VALUES ($1, $2, $3, $4)
`

type CreateSkillScoreParams struct {
	CandidateID CandidateID `json:"candidate_id"`
	JobID       NullJobID   `json:"job_id"`
	Skill       string      `json:"skill"`
	Score       float64     `json:"score"`
}

func (q *Queries) CreateSkillScore(ctx context.Context, arg CreateSkillScoreParams) error {
	_, err := q.db.ExecContext(ctx, createSkillScore, arg.CandidateID, arg.JobID, arg.Skill, arg.Score)
	return err
}

const createCourse = `-- name: CreateCourse :one
INSERT INTO courses (name, institution)
VALUES ($1, $2)
RETURNING id, name, institution, created_at
`

type CreateCourseParams struct {
	Name        string `json:"name"`
	Institution string `json:"institution"`
}

func (q *Queries) CreateCourse(ctx context.Context, arg CreateCourseParams) (Course, error) {
	row := q.db.QueryRowContext(ctx, createCourse, arg.Name, arg.Institution)
	return scanCourse(row)
}

const createCourseCompletion = `-- name: CreateCourseCompletion :exec
INSERT INTO course_completions (candidate_id, course_id, job_id, completed_at, was_hired, performance_rating)
VALUES ($1, $2, $3, $4, $5, $6)
`

type CreateCourseCompletionParams struct {
	CandidateID       CandidateID   `json:"candidate_id"`
	CourseID          CourseID      `json:"course_id"`
	JobID             NullJobID     `json:"job_id"`
	CompletedAt       time.Time     `json:"completed_at"`
	WasHired          bool          `json:"was_hired"`
	PerformanceRating sql.NullInt32 `json:"performance_rating"`
}

func (q *Queries) CreateCourseCompletion(ctx context.Context, arg CreateCourseCompletionParams) error {
	_, err := q.db.ExecContext(ctx, createCourseCompletion,
		arg.CandidateID,
		arg.CourseID,
		arg.JobID,
		arg.CompletedAt,
		arg.WasHired,
		arg.PerformanceRating,
	)
	return err
}
