package db

import (
	"context"
)

const listSkillScoresByCandidates = `-- name: ListSkillScoresByCandidates :many
SELECT id, candidate_id, job_id, skill, score
FROM skill_scores
WHERE candidate_id = ANY($1::bigint[])
ORDER BY id
`

func (q *Queries) ListSkillScoresByCandidates(ctx context.Context, candidateIDs []CandidateID) ([]SkillScore, error) {
	if len(candidateIDs) == 0 {
		return []SkillScore{}, nil
	}
	rows, err := q.db.QueryContext(ctx, listSkillScoresByCandidates, int64Array(candidateIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []SkillScore{}
	for rows.Next() {
		var i SkillScore
		if err := rows.Scan(
			&i.ID,
			&i.CandidateID,
			&i.JobID,
			&i.Skill,
			&i.Score,
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
