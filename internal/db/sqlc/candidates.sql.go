package db

import (
	"context"
)

const listCandidatesByIDs = `-- name: ListCandidatesByIDs :many
SELECT id, name, email, skills, experience, created_at
FROM candidates
WHERE id = ANY($1::bigint[])
ORDER BY id
`

func (q *Queries) ListCandidatesByIDs(ctx context.Context, ids []CandidateID) ([]Candidate, error) {
	if len(ids) == 0 {
		return []Candidate{}, nil
	}
	rows, err := q.db.QueryContext(ctx, listCandidatesByIDs, int64Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Candidate{}
	for rows.Next() {
		i, err := scanCandidate(rows)
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
