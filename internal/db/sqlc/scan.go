package db

import "github.com/lib/pq"

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanJob(row rowScanner) (Job, error) {
	var i Job
	err := row.Scan(
		&i.ID,
		&i.EmployerID,
		&i.Title,
		&i.Status,
		&i.Department,
		&i.CreatedAt,
		&i.Views,
	)
	return i, err
}

func scanApplication(row rowScanner) (Application, error) {
	var i Application
	err := row.Scan(
		&i.ID,
		&i.JobID,
		&i.ApplicantID,
		&i.Status,
		&i.AppliedAt,
		&i.Location.City,
		&i.Location.Country,
		&i.Skills,
		&i.Experience,
		&i.Source,
	)
	return i, err
}

func scanCourseCompletion(row rowScanner) (CourseCompletion, error) {
	var i CourseCompletion
	err := row.Scan(
		&i.ID,
		&i.CandidateID,
		&i.CourseID,
		&i.JobID,
		&i.CompletedAt,
		&i.WasHired,
		&i.PerformanceRating,
	)
	return i, err
}

func scanCourse(row rowScanner) (Course, error) {
	var i Course
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Institution,
		&i.CreatedAt,
	)
	return i, err
}

func scanCandidate(row rowScanner) (Candidate, error) {
	var i Candidate
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.Skills,
		&i.Experience,
		&i.CreatedAt,
	)
	return i, err
}

// int64Array converts typed ids into a postgres bigint[] argument.
func int64Array[T ~int64](ids []T) interface{} {
	out := make([]int64, len(ids))
	for i, id := range ids {
		out[i] = int64(id)
	}
	return pq.Array(out)
}
