package db

import (
	"context"
	"database/sql"
)

const listCourseCompletionsByEmployer = `-- name: ListCourseCompletionsByEmployer :many
SELECT id, candidate_id, course_id, job_id, completed_at, was_hired, performance_rating
FROM course_completions
WHERE job_id IN (SELECT j.id FROM jobs j WHERE j.employer_id = $1)
  AND (NOT $2::boolean OR was_hired)
  AND ($3::timestamptz IS NULL OR completed_at >= $3)
  AND ($4::timestamptz IS NULL OR completed_at < $4)
ORDER BY completed_at DESC, id DESC
`

type ListCourseCompletionsByEmployerParams struct {
	EmployerID    EmployerID   `json:"employer_id"`
	HiredOnly     bool         `json:"hired_only"`
	CompletedFrom sql.NullTime `json:"completed_from"`
	CompletedTo   sql.NullTime `json:"completed_to"`
}

func (q *Queries) ListCourseCompletionsByEmployer(ctx context.Context, arg ListCourseCompletionsByEmployerParams) ([]CourseCompletion, error) {
	rows, err := q.db.QueryContext(ctx, listCourseCompletionsByEmployer,
		arg.EmployerID,
		arg.HiredOnly,
		arg.CompletedFrom,
		arg.CompletedTo,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []CourseCompletion{}
	for rows.Next() {
		i, err := scanCourseCompletion(rows)
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

const listCourses = `-- name: ListCourses :many
SELECT id, name, institution, created_at
FROM courses
ORDER BY created_at DESC, id DESC
`

func (q *Queries) ListCourses(ctx context.Context) ([]Course, error) {
	rows, err := q.db.QueryContext(ctx, listCourses)
	if err != nil {
		return nil, err
	}
	return collectCourses(rows)
}

const listCoursesByIDs = `-- name: ListCoursesByIDs :many
SELECT id, name, institution, created_at
FROM courses
WHERE id = ANY($1::bigint[])
ORDER BY id
`

func (q *Queries) ListCoursesByIDs(ctx context.Context, ids []CourseID) ([]Course, error) {
	if len(ids) == 0 {
		return []Course{}, nil
	}
	rows, err := q.db.QueryContext(ctx, listCoursesByIDs, int64Array(ids))
	if err != nil {
		return nil, err
	}
	return collectCourses(rows)
}

func collectCourses(rows *sql.Rows) ([]Course, error) {
	defer rows.Close()
	items := []Course{}
	for rows.Next() {
		i, err := scanCourse(rows)
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
