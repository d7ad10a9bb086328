package analytics

import (
	"context"
	"sort"

	"github.com/aalug/hiring-analytics-go/internal/aggregate"
	db "github.com/aalug/hiring-analytics-go/internal/db/sqlc"
	"github.com/aalug/hiring-analytics-go/internal/tenant"
)

// SkillGap is the score distribution of one skill among a job's applicants.
type SkillGap struct {
	Skill          string  `json:"skill"`
	AvgSkillScore  float64 `json:"avg_skill_score"`
	CandidateCount int64   `json:"candidate_count"`
	MaxScore       float64 `json:"max_score"`
	MinScore       float64 `json:"min_score"`
}

// SkillGap aggregates the assessed skills of everyone who applied to the job,
// best average first. A candidate with several applications to the job is
// counted once per application.
func (s *Service) SkillGap(ctx context.Context, employerID db.EmployerID, jobID db.JobID) ([]SkillGap, error) {
	var rows []SkillGap
	err := s.run(ctx, "skill_gap", employerID, func(ctx context.Context) error {
		job, err := tenant.New(employerID).Job(ctx, s.store, jobID)
		if err != nil {
			return err
		}

		applications, err := s.store.ListApplicationsByJob(ctx, job.ID)
		if err != nil {
			return err
		}
		candidates := aggregate.Distinct(applications, func(a db.Application) db.CandidateID { return a.ApplicantID })
		scores, err := s.store.ListSkillScoresByCandidates(ctx, candidates)
		if err != nil {
			return err
		}

		rows = skillGap(scores, applications)
		return nil
	})
	return rows, err
}

type scoredApplication = aggregate.Joined[db.SkillScore, db.Application]

func skillGap(scores []db.SkillScore, applications []db.Application) []SkillGap {
	joined := aggregate.InnerJoin(scores, applications,
		func(s db.SkillScore) db.CandidateID { return s.CandidateID },
		func(a db.Application) db.CandidateID { return a.ApplicantID },
	)

	score := aggregate.Number(func(row scoredApplication) float64 { return row.Left.Score })
	groups := aggregate.GroupBy(joined,
		func(row scoredApplication) string { return row.Left.Skill },
		aggregate.Avg("avg", score),
		aggregate.Count[scoredApplication]("count"),
		aggregate.Max("max", score),
		aggregate.Min("min", score),
	)

	rows := make([]SkillGap, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, SkillGap{
			Skill:          g.Key,
			AvgSkillScore:  g.Float("avg"),
			CandidateCount: g.Int("count"),
			MaxScore:       g.Float("max"),
			MinScore:       g.Float("min"),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].AvgSkillScore > rows[j].AvgSkillScore
	})
	return rows
}
