package api

import (
	"database/sql"
	"time"

	"github.com/aalug/hiring-analytics-go/internal/analytics"
	db "github.com/aalug/hiring-analytics-go/internal/db/sqlc"
)

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}

func nullInt32(n sql.NullInt32) *int32 {
	if !n.Valid {
		return nil
	}
	return &n.Int32
}

func nullJobID(id db.NullJobID) *int64 {
	if !id.Valid {
		return nil
	}
	v := int64(id.JobID)
	return &v
}

type jobResponse struct {
	ID         db.JobID      `json:"id"`
	EmployerID db.EmployerID `json:"employer_id"`
	Title      string        `json:"title"`
	Status     db.JobStatus  `json:"status"`
	Department *string       `json:"department"`
	CreatedAt  time.Time     `json:"created_at"`
	Views      int32         `json:"views"`
}

// newJobResponse creates a job response from a db.Job
func newJobResponse(job db.Job) jobResponse {
	return jobResponse{
		ID:         job.ID,
		EmployerID: job.EmployerID,
		Title:      job.Title,
		Status:     job.Status,
		Department: nullString(job.Department),
		CreatedAt:  job.CreatedAt,
		Views:      job.Views,
	}
}

func newJobListResponse(jobs []db.Job) []jobResponse {
	res := make([]jobResponse, 0, len(jobs))
	for _, job := range jobs {
		res = append(res, newJobResponse(job))
	}
	return res
}

type locationResponse struct {
	City    *string `json:"city"`
	Country *string `json:"country"`
}

type applicationResponse struct {
	ID          int64                `json:"id"`
	JobID       db.JobID             `json:"job_id"`
	ApplicantID db.CandidateID       `json:"applicant_id"`
	Status      db.ApplicationStatus `json:"status"`
	AppliedAt   time.Time            `json:"applied_at"`
	Location    locationResponse     `json:"location"`
	Skills      []string             `json:"skills"`
	Experience  *int32               `json:"experience"`
	Source      string               `json:"source"`
}

// newApplicationResponse creates an application response from a db.Application
func newApplicationResponse(a db.Application) applicationResponse {
	skills := []string(a.Skills)
	if skills == nil {
		skills = []string{}
	}
	return applicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		ApplicantID: a.ApplicantID,
		Status:      a.Status,
		AppliedAt:   a.AppliedAt,
		Location: locationResponse{
			City:    nullString(a.Location.City),
			Country: nullString(a.Location.Country),
		},
		Skills:     skills,
		Experience: nullInt32(a.Experience),
		Source:     a.Source,
	}
}

type applicationRecordResponse struct {
	applicationResponse
	Job jobResponse `json:"job"`
}

func newApplicationListResponse(records []analytics.ApplicationRecord) []applicationRecordResponse {
	res := make([]applicationRecordResponse, 0, len(records))
	for _, r := range records {
		res = append(res, applicationRecordResponse{
			applicationResponse: newApplicationResponse(r.Application),
			Job:                 newJobResponse(r.Job),
		})
	}
	return res
}

type completionResponse struct {
	ID                int64          `json:"id"`
	CandidateID       db.CandidateID `json:"candidate_id"`
	CourseID          db.CourseID    `json:"course_id"`
	JobID             *int64         `json:"job_id"`
	CompletedAt       time.Time      `json:"completed_at"`
	WasHired          bool           `json:"was_hired"`
	PerformanceRating *int32         `json:"performance_rating"`
	Course            db.Course      `json:"course"`
	Job               jobResponse    `json:"job"`
}

func newCompletionListResponse(records []analytics.CompletionRecord) []completionResponse {
	res := make([]completionResponse, 0, len(records))
	for _, r := range records {
		res = append(res, completionResponse{
			ID:                r.ID,
			CandidateID:       r.CandidateID,
			CourseID:          r.CourseID,
			JobID:             nullJobID(r.JobID),
			CompletedAt:       r.CompletedAt,
			WasHired:          r.WasHired,
			PerformanceRating: nullInt32(r.PerformanceRating),
			Course:            r.Course,
			Job:               newJobResponse(r.Job),
		})
	}
	return res
}

type candidateResponse struct {
	ID         db.CandidateID `json:"id"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	Skills     []string       `json:"skills"`
	Experience *int32         `json:"experience"`
}

type viewResponse struct {
	ID          int64                `json:"id"`
	JobID       db.JobID             `json:"job_id"`
	ApplicantID db.CandidateID       `json:"applicant_id"`
	ViewedAt    time.Time            `json:"viewed_at"`
	Job         jobResponse          `json:"job"`
	Application *applicationResponse `json:"application"`
	Candidate   *candidateResponse   `json:"candidate"`
}

func newViewListResponse(records []analytics.ViewRecord) []viewResponse {
	res := make([]viewResponse, 0, len(records))
	for _, r := range records {
		view := viewResponse{
			ID:          r.ID,
			JobID:       r.JobID,
			ApplicantID: r.ApplicantID,
			ViewedAt:    r.ViewedAt,
			Job:         newJobResponse(r.Job),
		}
		if r.Application != nil {
			application := newApplicationResponse(*r.Application)
			view.Application = &application
		}
		if r.Candidate != nil {
			view.Candidate = &candidateResponse{
				ID:         r.Candidate.ID,
				Name:       r.Candidate.Name,
				Email:      r.Candidate.Email,
				Skills:     []string(r.Candidate.Skills),
				Experience: nullInt32(r.Candidate.Experience),
			}
		}
		res = append(res, view)
	}
	return res
}
