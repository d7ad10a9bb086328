package db

import (
	"context"
	"database/sql"
)

const getJob = `-- name: GetJob :one
SELECT id, employer_id, title, status, department, created_at, views
FROM jobs
WHERE id = $1
LIMIT 1
`

func (q *Queries) GetJob(ctx context.Context, id JobID) (Job, error) {
	row := q.db.QueryRowContext(ctx, getJob, id)
	return scanJob(row)
}

const listJobsByEmployer = `-- name: ListJobsByEmployer :many
SELECT id, employer_id, title, status, department, created_at, views
FROM jobs
WHERE employer_id = $1
  AND ($2::timestamptz IS NULL OR created_at >= $2)
  AND ($3::timestamptz IS NULL OR created_at < $3)
ORDER BY created_at DESC, id DESC
`

type ListJobsByEmployerParams struct {
	EmployerID  EmployerID   `json:"employer_id"`
	CreatedFrom sql.NullTime `json:"created_from"`
	CreatedTo   sql.NullTime `json:"created_to"`
}

func (q *Queries) ListJobsByEmployer(ctx context.Context, arg ListJobsByEmployerParams) ([]Job, error) {
	rows, err := q.db.QueryContext(ctx, listJobsByEmployer, arg.EmployerID, arg.CreatedFrom, arg.CreatedTo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Job{}
	for rows.Next() {
		i, err := scanJob(rows)
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

const getEmployer = `-- name: GetEmployer :one
SELECT id, name, email, industry, created_at
FROM employers
WHERE id = $1
LIMIT 1
`

func (q *Queries) GetEmployer(ctx context.Context, id EmployerID) (Employer, error) {
	row := q.db.QueryRowContext(ctx, getEmployer, id)
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
