package db

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/aalug/hiring-analytics-go/pkg/utils"
	"github.com/bxcodec/faker/v3"
	"github.com/rs/zerolog/log"
)

// SeedOptions controls how much demo data LoadTestData creates.
type SeedOptions struct {
	Employers           int
	JobsPerEmployer     int
	Candidates          int
	ApplicationsPerJob  int
	ViewsPerApplication int
	History             time.Duration
}

func DefaultSeedOptions() SeedOptions {
	return SeedOptions{
		Employers:           len(utils.Industries),
		JobsPerEmployer:     4,
		Candidates:          60,
		ApplicationsPerJob:  8,
		ViewsPerApplication: 3,
		History:             365 * 24 * time.Hour,
	}
}

// SeedStats counts the rows LoadTestData created.
type SeedStats struct {
	Employers    int
	Jobs         int
	Candidates   int
	Applications int
	Views        int
	SkillScores  int
	Courses      int
	Completions  int
}

var (
	jobStatuses = []JobStatus{JobStatusDraft, JobStatusOpen, JobStatusOpen, JobStatusFilled, JobStatusArchived}

	applicationStatuses = []ApplicationStatus{
		ApplicationStatusApplied,
		ApplicationStatusShortlisted,
		ApplicationStatusInterviewed,
		ApplicationStatusHired,
		ApplicationStatusRejected,
	}
)

// randomPipelineStatus starts an application at applied and moves it
// forward a random number of allowed steps.
func randomPipelineStatus() ApplicationStatus {
	status := ApplicationStatusApplied
	for utils.RandomInt(0, 2) > 0 {
		var next []ApplicationStatus
		for _, candidate := range applicationStatuses {
			if status.CanTransitionTo(candidate) {
				next = append(next, candidate)
			}
		}
		if len(next) == 0 {
			break
		}
		status = utils.RandomElement(next)
	}
	return status
}

// LoadTestData fills the database with random demo data in one transaction.
func (store *SQLStore) LoadTestData(ctx context.Context, opts SeedOptions) (SeedStats, error) {
	var stats SeedStats
	now := time.Now()
	if opts.History <= 0 {
		opts.History = DefaultSeedOptions().History
	}

	err := store.ExecTx(ctx, func(q *Queries) error {
		var courses []Course
		for _, name := range utils.GenerateCourseNames() {
			course, err := q.CreateCourse(ctx, CreateCourseParams{
				Name:        name,
				Institution: utils.RandomElement(utils.Institutions),
			})
			if err != nil {
				return fmt.Errorf("create course: %w", err)
			}
			courses = append(courses, course)
		}
		stats.Courses = len(courses)

		var candidates []Candidate
		for i := 0; i < opts.Candidates; i++ {
			candidate, err := q.CreateCandidate(ctx, CreateCandidateParams{
				Name:       faker.Name(),
				Email:      fmt.Sprintf("%d.%s", i, faker.Email()),
				Skills:     utils.RandomSubset(utils.Skills, 4),
				Experience: sql.NullInt32{Int32: utils.RandomInt(0, 15), Valid: true},
			})
			if err != nil {
				return fmt.Errorf("create candidate: %w", err)
			}
			candidates = append(candidates, candidate)

			for _, skill := range candidate.Skills {
				err = q.CreateSkillScore(ctx, CreateSkillScoreParams{
					CandidateID: candidate.ID,
					Skill:       skill,
					Score:       math.Round(utils.RandomFloat(20, 100)*10) / 10,
				})
				if err != nil {
					return fmt.Errorf("create skill score: %w", err)
				}
				stats.SkillScores++
			}
		}
		stats.Candidates = len(candidates)
		if len(candidates) == 0 {
			return nil
		}

		jobTitles := utils.GenerateDeveloperJobs()
		countries := utils.CountryNames()

		for i := 0; i < opts.Employers; i++ {
			industry := utils.Industries[i%len(utils.Industries)]
			employer, err := q.CreateEmployer(ctx, CreateEmployerParams{
				Name:     faker.DomainName(),
				Email:    fmt.Sprintf("%d.%s", i, utils.RandomEmail()),
				Industry: industry,
			})
			if err != nil {
				return fmt.Errorf("create employer: %w", err)
			}
			stats.Employers++

			for j := 0; j < opts.JobsPerEmployer; j++ {
				job, err := q.CreateJob(ctx, CreateJobParams{
					EmployerID: employer.ID,
					Title:      utils.RandomElement(jobTitles),
					Status:     utils.RandomElement(jobStatuses),
					Department: sql.NullString{String: utils.RandomElement(utils.Departments), Valid: true},
					CreatedAt:  utils.RandomTimeWithin(now, opts.History),
					Views:      utils.RandomInt(0, 500),
				})
				if err != nil {
					return fmt.Errorf("create job: %w", err)
				}
				stats.Jobs++

				for _, candidate := range utils.RandomSubset(candidates, opts.ApplicationsPerJob) {
					country := utils.RandomElement(countries)
					appliedAt := randomTimeAfter(job.CreatedAt, now)
					status := randomPipelineStatus()

					_, err := q.CreateApplication(ctx, CreateApplicationParams{
						JobID:       job.ID,
						ApplicantID: candidate.ID,
						Status:      status,
						AppliedAt:   appliedAt,
						Location: Location{
							City:    sql.NullString{String: utils.RandomElement(utils.Countries[country]), Valid: true},
							Country: sql.NullString{String: country, Valid: true},
						},
						Skills:     candidate.Skills,
						Experience: candidate.Experience,
						Source:     utils.RandomElement(utils.ApplicationSources),
					})
					if err != nil {
						return fmt.Errorf("create application: %w", err)
					}
					stats.Applications++

					for v := 0; v < opts.ViewsPerApplication; v++ {
						err = q.CreateView(ctx, CreateViewParams{
							JobID:       job.ID,
							ApplicantID: candidate.ID,
							ViewedAt:    randomTimeAfter(job.CreatedAt, appliedAt),
						})
						if err != nil {
							return fmt.Errorf("create view: %w", err)
						}
						stats.Views++
					}

					if len(courses) == 0 {
						continue
					}
					hired := status == ApplicationStatusHired
					completion := CreateCourseCompletionParams{
						CandidateID: candidate.ID,
						CourseID:    utils.RandomElement(courses).ID,
						JobID:       NullJobID{JobID: job.ID, Valid: true},
						CompletedAt: randomTimeAfter(job.CreatedAt, now),
						WasHired:    hired,
					}
					if hired {
						completion.PerformanceRating = sql.NullInt32{Int32: utils.RandomInt(1, 5), Valid: true}
					}
					if err := q.CreateCourseCompletion(ctx, completion); err != nil {
						return fmt.Errorf("create course completion: %w", err)
					}
					stats.Completions++
				}
			}
		}
		return nil
	})
	if err != nil {
		return SeedStats{}, err
	}

	log.Info().
		Int("employers", stats.Employers).
		Int("jobs", stats.Jobs).
		Int("applications", stats.Applications).
		Int("views", stats.Views).
		Msg("loaded demo data")
	return stats, nil
}

// randomTimeAfter returns a moment in [from, to], or from when to is not after it.
func randomTimeAfter(from, to time.Time) time.Time {
	if !to.After(from) {
		return from
	}
	return utils.RandomTimeWithin(to, to.Sub(from))
}
