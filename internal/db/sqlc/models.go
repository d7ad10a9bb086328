package db

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// EmployerID identifies the tenant that owns jobs.
type EmployerID int64

// JobID identifies a job posting.
type JobID int64

// CandidateID is the identifier space shared by Application.ApplicantID,
// View.ApplicantID, SkillScore.CandidateID and CourseCompletion.CandidateID.
type CandidateID int64

// CourseID identifies a course in the global catalog.
type CourseID int64

type JobStatus string

const (
	JobStatusDraft    JobStatus = "draft"
	JobStatusOpen     JobStatus = "open"
	JobStatusFilled   JobStatus = "filled"
	JobStatusArchived JobStatus = "archived"
	// JobStatusOther is never stored; reducers put unrecognized values here.
	JobStatusOther JobStatus = "other"
)

func (e *JobStatus) Scan(src interface{}) error {
	switch s := src.(type) {
	case []byte:
		*e = JobStatus(s)
	case string:
		*e = JobStatus(s)
	default:
		return fmt.Errorf("unsupported scan type for JobStatus: %T", src)
	}
	return nil
}

// Valid reports whether the status is one of the stored variants.
func (e JobStatus) Valid() bool {
	switch e {
	case JobStatusDraft, JobStatusOpen, JobStatusFilled, JobStatusArchived:
		return true
	}
	return false
}

// Bucket returns the status itself, or JobStatusOther for unrecognized values.
func (e JobStatus) Bucket() JobStatus {
	if e.Valid() {
		return e
	}
	return JobStatusOther
}

type ApplicationStatus string

const (
	ApplicationStatusApplied     ApplicationStatus = "applied"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusInterviewed ApplicationStatus = "interviewed"
	ApplicationStatusHired       ApplicationStatus = "hired"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	// ApplicationStatusOther is never stored; reducers put unrecognized values here.
	ApplicationStatusOther ApplicationStatus = "other"
)

func (e *ApplicationStatus) Scan(src interface{}) error {
	switch s := src.(type) {
	case []byte:
		*e = ApplicationStatus(s)
	case string:
		*e = ApplicationStatus(s)
	default:
		return fmt.Errorf("unsupported scan type for ApplicationStatus: %T", src)
	}
	return nil
}

// Valid reports whether the status is one of the stored variants.
func (e ApplicationStatus) Valid() bool {
	switch e {
	case ApplicationStatusApplied, ApplicationStatusShortlisted, ApplicationStatusInterviewed,
		ApplicationStatusHired, ApplicationStatusRejected:
		return true
	}
	return false
}

// Bucket returns the status itself, or ApplicationStatusOther for unrecognized values.
func (e ApplicationStatus) Bucket() ApplicationStatus {
	if e.Valid() {
		return e
	}
	return ApplicationStatusOther
}

// CanTransitionTo reports whether moving from e to next respects the
// forward-only hiring pipeline. Hired and rejected are terminal.
func (e ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	switch e {
	case ApplicationStatusApplied:
		return next == ApplicationStatusShortlisted || next == ApplicationStatusRejected
	case ApplicationStatusShortlisted:
		return next == ApplicationStatusInterviewed || next == ApplicationStatusRejected
	case ApplicationStatusInterviewed:
		return next == ApplicationStatusHired || next == ApplicationStatusRejected
	}
	return false
}

// NullJobID is a JobID that may be NULL.
type NullJobID struct {
	JobID JobID
	Valid bool
}

func (n *NullJobID) Scan(value interface{}) error {
	var v sql.NullInt64
	if err := v.Scan(value); err != nil {
		return err
	}
	n.JobID, n.Valid = JobID(v.Int64), v.Valid
	return nil
}

func (n NullJobID) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return int64(n.JobID), nil
}

type Employer struct {
	ID        EmployerID `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Industry  string     `json:"industry"`
	CreatedAt time.Time  `json:"created_at"`
}

type Job struct {
	ID         JobID          `json:"id"`
	EmployerID EmployerID     `json:"employer_id"`
	Title      string         `json:"title"`
	Status     JobStatus      `json:"status"`
	Department sql.NullString `json:"department"`
	CreatedAt  time.Time      `json:"created_at"`
	Views      int32          `json:"views"`
}

type Location struct {
	City    sql.NullString `json:"city"`
	Country sql.NullString `json:"country"`
}

type Application struct {
	ID          int64             `json:"id"`
	JobID       JobID             `json:"job_id"`
	ApplicantID CandidateID       `json:"applicant_id"`
	Status      ApplicationStatus `json:"status"`
	AppliedAt   time.Time         `json:"applied_at"`
	Location    Location          `json:"location"`
	Skills      pq.StringArray    `json:"skills"`
	Experience  sql.NullInt32     `json:"experience"`
	Source      string            `json:"source"`
}

type View struct {
	ID          int64       `json:"id"`
	JobID       JobID       `json:"job_id"`
	ApplicantID CandidateID `json:"applicant_id"`
	ViewedAt    time.Time   `json:"viewed_at"`
}

type SkillScore struct {
	ID          int64       `json:"id"`
	CandidateID CandidateID `json:"candidate_id"`
	JobID       NullJobID   `json:"job_id"`
	Skill       string      `json:"skill"`
	Score       float64     `json:"score"`
}

type Course struct {
	ID          CourseID  `json:"id"`
	Name        string    `json:"name"`
	Institution string    `json:"institution"`
	CreatedAt   time.Time `json:"created_at"`
}

type CourseCompletion struct {
	ID                int64         `json:"id"`
	CandidateID       CandidateID   `json:"candidate_id"`
	CourseID          CourseID      `json:"course_id"`
	JobID             NullJobID     `json:"job_id"`
	CompletedAt       time.Time     `json:"completed_at"`
	WasHired          bool          `json:"was_hired"`
	PerformanceRating sql.NullInt32 `json:"performance_rating"`
}

type Candidate struct {
	ID         CandidateID    `json:"id"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	Skills     pq.StringArray `json:"skills"`
	Experience sql.NullInt32  `json:"experience"`
	CreatedAt  time.Time      `json:"created_at"`
}
