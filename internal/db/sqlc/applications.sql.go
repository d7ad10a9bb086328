package db

import (
	"context"
	"database/sql"
)

const listApplicationsByEmployer = `-- name: ListApplicationsByEmployer :many
SELECT a.id, a.job_id, a.applicant_id, a.status, a.applied_at, a.city, a.country, a.skills, a.experience, a.source
FROM applications a
WHERE a.job_id IN (SELECT j.id FROM jobs j WHERE j.employer_id = $1)
  AND ($2::timestamptz IS NULL OR a.applied_at >= $2)
  AND ($3::timestamptz IS NULL OR a.applied_at < $3)
ORDER BY a.applied_at DESC, a.id DESC
`

type ListApplicationsByEmployerParams struct {
	EmployerID  EmployerID   `json:"employer_id"`
	AppliedFrom sql.NullTime `json:"applied_from"`
	AppliedTo   sql.NullTime `json:"applied_to"`
}

func (q *Queries) ListApplicationsByEmployer(ctx context.Context, arg ListApplicationsByEmployerParams) ([]Application, error) {
	rows, err := q.db.QueryContext(ctx, listApplicationsByEmployer, arg.EmployerID, arg.AppliedFrom, arg.AppliedTo)
	if err != nil {
		return nil, err
	}
	return collectApplications(rows)
}

const listApplicationsByJob = `-- name: ListApplicationsByJob :many
SELECT id, job_id, applicant_id, status, applied_at, city, country, skills, experience, source
FROM applications
WHERE job_id = $1
ORDER BY applied_at DESC, id DESC
`

func (q *Queries) ListApplicationsByJob(ctx context.Context, jobID JobID) ([]Application, error) {
	rows, err := q.db.QueryContext(ctx, listApplicationsByJob, jobID)
	if err != nil {
		return nil, err
	}
	return collectApplications(rows)
}

func collectApplications(rows *sql.Rows) ([]Application, error) {
	defer rows.Close()
	items := []Application{}
	for rows.Next() {
		i, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
