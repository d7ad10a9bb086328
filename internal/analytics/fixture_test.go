package analytics

import (
	"context"
	"database/sql"
	"sort"
	"time"

	db "github.com/aalug/hiring-analytics-go/internal/db/sqlc"
	"github.com/aalug/hiring-analytics-go/internal/tenant"
)

// fixtureStore is an in-memory Store that answers queries the way the SQL
// store does, ownership predicate and ordering included.
type fixtureStore struct {
	employers    []db.Employer
	jobs         []db.Job
	applications []db.Application
	views        []db.View
	skillScores  []db.SkillScore
	courses      []db.Course
	completions  []db.CourseCompletion
	candidates   []db.Candidate
}

var _ db.Store = (*fixtureStore)(nil)

func inWindow(t time.Time, from, to sql.NullTime) bool {
	return (!from.Valid || !t.Before(from.Time)) && (!to.Valid || t.Before(to.Time))
}

func newestFirst(a, b time.Time, idA, idB int64) bool {
	if !a.Equal(b) {
		return a.After(b)
	}
	return idA > idB
}

func (f *fixtureStore) owns(employerID db.EmployerID) func(db.JobID) bool {
	return tenant.New(employerID).OwnsThrough(f.jobs)
}

func (f *fixtureStore) GetEmployer(_ context.Context, id db.EmployerID) (db.Employer, error) {
	for _, e := range f.employers {
		if e.ID == id {
			return e, nil
		}
	}
	return db.Employer{}, sql.ErrNoRows
}

func (f *fixtureStore) GetJob(_ context.Context, id db.JobID) (db.Job, error) {
	for _, j := range f.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return db.Job{}, sql.ErrNoRows
}

func (f *fixtureStore) ListJobsByEmployer(_ context.Context, arg db.ListJobsByEmployerParams) ([]db.Job, error) {
	items := []db.Job{}
	for _, j := range f.jobs {
		if j.EmployerID == arg.EmployerID && inWindow(j.CreatedAt, arg.CreatedFrom, arg.CreatedTo) {
			items = append(items, j)
		}
	}
	sort.SliceStable(items, func(i, k int) bool {
		return newestFirst(items[i].CreatedAt, items[k].CreatedAt, int64(items[i].ID), int64(items[k].ID))
	})
	return items, nil
}

func (f *fixtureStore) sortedApplications(keep func(db.Application) bool) []db.Application {
	items := []db.Application{}
	for _, a := range f.applications {
		if keep(a) {
			items = append(items, a)
		}
	}
	sort.SliceStable(items, func(i, k int) bool {
		return newestFirst(items[i].AppliedAt, items[k].AppliedAt, items[i].ID, items[k].ID)
	})
	return items
}

func (f *fixtureStore) ListApplicationsByEmployer(_ context.Context, arg db.ListApplicationsByEmployerParams) ([]db.Application, error) {
	owns := f.owns(arg.EmployerID)
	return f.sortedApplications(func(a db.Application) bool {
		return owns(a.JobID) && inWindow(a.AppliedAt, arg.AppliedFrom, arg.AppliedTo)
	}), nil
}

func (f *fixtureStore) ListApplicationsByJob(_ context.Context, jobID db.JobID) ([]db.Application, error) {
	return f.sortedApplications(func(a db.Application) bool { return a.JobID == jobID }), nil
}

func (f *fixtureStore) CountViewsByJob(_ context.Context, jobID db.JobID) (int64, error) {
	var n int64
	for _, v := range f.views {
		if v.JobID == jobID {
			n++
		}
	}
	return n, nil
}

func (f *fixtureStore) ListViewsByEmployer(_ context.Context, employerID db.EmployerID) ([]db.View, error) {
	owns := f.owns(employerID)
	items := []db.View{}
	for _, v := range f.views {
		if owns(v.JobID) {
			items = append(items, v)
		}
	}
	sort.SliceStable(items, func(i, k int) bool {
		return newestFirst(items[i].ViewedAt, items[k].ViewedAt, items[i].ID, items[k].ID)
	})
	return items, nil
}

func (f *fixtureStore) ListSkillScoresByCandidates(_ context.Context, candidateIDs []db.CandidateID) ([]db.SkillScore, error) {
	wanted := make(map[db.CandidateID]bool, len(candidateIDs))
	for _, id := range candidateIDs {
		wanted[id] = true
	}
	items := []db.SkillScore{}
	for _, s := range f.skillScores {
		if wanted[s.CandidateID] {
			items = append(items, s)
		}
	}
	return items, nil
}

func (f *fixtureStore) ListCourseCompletionsByEmployer(_ context.Context, arg db.ListCourseCompletionsByEmployerParams) ([]db.CourseCompletion, error) {
	owns := f.owns(arg.EmployerID)
	items := []db.CourseCompletion{}
	for _, c := range f.completions {
		if !c.JobID.Valid || !owns(c.JobID.JobID) {
			continue
		}
		if arg.HiredOnly && !c.WasHired {
			continue
		}
		if inWindow(c.CompletedAt, arg.CompletedFrom, arg.CompletedTo) {
			items = append(items, c)
		}
	}
	sort.SliceStable(items, func(i, k int) bool {
		return newestFirst(items[i].CompletedAt, items[k].CompletedAt, items[i].ID, items[k].ID)
	})
	return items, nil
}

func (f *fixtureStore) ListCourses(_ context.Context) ([]db.Course, error) {
	items := append([]db.Course{}, f.courses...)
	sort.SliceStable(items, func(i, k int) bool {
		return newestFirst(items[i].CreatedAt, items[k].CreatedAt, int64(items[i].ID), int64(items[k].ID))
	})
	return items, nil
}

func (f *fixtureStore) ListCoursesByIDs(_ context.Context, ids []db.CourseID) ([]db.Course, error) {
	items := []db.Course{}
	for _, c := range f.courses {
		for _, id := range ids {
			if c.ID == id {
				items = append(items, c)
				break
			}
		}
	}
	return items, nil
}

func (f *fixtureStore) ListCandidatesByIDs(_ context.Context, ids []db.CandidateID) ([]db.Candidate, error) {
	items := []db.Candidate{}
	for _, c := range f.candidates {
		for _, id := range ids {
			if c.ID == id {
				items = append(items, c)
				break
			}
		}
	}
	return items, nil
}

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newFixtureService(store db.Store) *Service {
	service := NewService(store, time.Second)
	service.now = func() time.Time { return fixedNow }
	return service
}

func daysAgo(days int) time.Time {
	return fixedNow.Add(-time.Duration(days) * 24 * time.Hour)
}

func country(name string) db.Location {
	return db.Location{Country: sql.NullString{String: name, Valid: true}}
}

func rating(n int32) sql.NullInt32 {
	return sql.NullInt32{Int32: n, Valid: true}
}

func forJob(id db.JobID) db.NullJobID {
	return db.NullJobID{JobID: id, Valid: true}
}
