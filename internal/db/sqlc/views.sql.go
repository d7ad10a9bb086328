package db

import (
	"context"
)

const countViewsByJob = `-- name: CountViewsByJob :one
SELECT count(*) FROM views
WHERE job_id = $1
`

func (q *Queries) CountViewsByJob(ctx context.Context, jobID JobID) (int64, error) {
	row := q.db.QueryRowContext(ctx, countViewsByJob, jobID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const listViewsByEmployer = `-- name: ListViewsByEmployer :many
SELECT v.id, v.job_id, v.applicant_id, v.viewed_at
FROM views v
WHERE v.job_id IN (SELECT j.id FROM jobs j WHERE j.employer_id = $1)
ORDER BY v.viewed_at DESC, v.id DESC
`

func (q *Queries) ListViewsByEmployer(ctx context.Context, employerID EmployerID) ([]View, error) {
	rows, err := q.db.QueryContext(ctx, listViewsByEmployer, employerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []View{}
	for rows.Next() {
		var i View
		if err := rows.Scan(
			&i.ID,
			&i.JobID,
			&i.ApplicantID,
			&i.ViewedAt,
		); err != nil {
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
