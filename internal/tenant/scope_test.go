package tenant

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/aalug/hiring-analytics-go/internal/apperror"
	"github.com/aalug/hiring-analytics-go/internal/daterange"
	mockdb "github.com/aalug/hiring-analytics-go/internal/db/mock"
	db "github.com/aalug/hiring-analytics-go/internal/db/sqlc"
	"github.com/aalug/hiring-analytics-go/pkg/utils"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func randomJob(employerID db.EmployerID) db.Job {
	return db.Job{
		ID:         db.JobID(utils.RandomInt(1, 1000)),
		EmployerID: employerID,
		Title:      utils.RandomString(8),
		Status:     db.JobStatusOpen,
		CreatedAt:  time.Now(),
	}
}

func TestScopeJob(t *testing.T) {
	employerID := db.EmployerID(utils.RandomInt(1, 100))
	owned := randomJob(employerID)
	foreign := randomJob(employerID + 1)

	testCases := []struct {
		name       string
		jobID      db.JobID
		buildStubs func(store *mockdb.MockStore)
		check      func(t *testing.T, job db.Job, err error)
	}{
		{
			name:  "OK",
			jobID: owned.ID,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetJob(gomock.Any(), gomock.Eq(owned.ID)).
					Times(1).
					Return(owned, nil)
			},
			check: func(t *testing.T, job db.Job, err error) {
				require.NoError(t, err)
				require.Equal(t, owned, job)
			},
		},
		{
			name:  "Not Found Missing Job",
			jobID: owned.ID,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetJob(gomock.Any(), gomock.Eq(owned.ID)).
					Times(1).
					Return(db.Job{}, sql.ErrNoRows)
			},
			check: func(t *testing.T, job db.Job, err error) {
				require.ErrorIs(t, err, ErrJobNotFound)
				require.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
				require.Empty(t, job)
			},
		},
		{
			name:  "Not Found Other Employer",
			jobID: foreign.ID,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetJob(gomock.Any(), gomock.Eq(foreign.ID)).
					Times(1).
					Return(foreign, nil)
			},
			check: func(t *testing.T, job db.Job, err error) {
				require.ErrorIs(t, err, ErrJobNotFound)
				require.Empty(t, job)
			},
		},
		{
			name:  "Store Error",
			jobID: owned.ID,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetJob(gomock.Any(), gomock.Eq(owned.ID)).
					Times(1).
					Return(db.Job{}, sql.ErrConnDone)
			},
			check: func(t *testing.T, job db.Job, err error) {
				require.ErrorIs(t, err, sql.ErrConnDone)
				require.NotErrorIs(t, err, ErrJobNotFound)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			job, err := New(employerID).Job(context.Background(), store, tc.jobID)
			tc.check(t, job, err)
		})
	}
}

func TestScopePushesPredicateIntoQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	employerID := db.EmployerID(7)
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	window := daterange.Last(30, now)
	from, to := window.Bounds()

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().
		ListJobsByEmployer(gomock.Any(), gomock.Eq(db.ListJobsByEmployerParams{EmployerID: employerID})).
		Times(1).
		Return([]db.Job{}, nil)
	store.EXPECT().
		ListApplicationsByEmployer(gomock.Any(), gomock.Eq(db.ListApplicationsByEmployerParams{
			EmployerID:  employerID,
			AppliedFrom: from,
			AppliedTo:   to,
		})).
		Times(1).
		Return([]db.Application{}, nil)
	store.EXPECT().
		ListCourseCompletionsByEmployer(gomock.Any(), gomock.Eq(db.ListCourseCompletionsByEmployerParams{
			EmployerID:    employerID,
			HiredOnly:     true,
			CompletedFrom: from,
			CompletedTo:   to,
		})).
		Times(1).
		Return([]db.CourseCompletion{}, nil)
	store.EXPECT().
		ListViewsByEmployer(gomock.Any(), gomock.Eq(employerID)).
		Times(1).
		Return(nil, errors.New("boom"))

	scope := New(employerID)
	ctx := context.Background()

	jobs, err := scope.Jobs(ctx, store, nil)
	require.NoError(t, err)
	require.Empty(t, jobs)

	applications, err := scope.Applications(ctx, store, &window)
	require.NoError(t, err)
	require.Empty(t, applications)

	completions, err := scope.CourseCompletions(ctx, store, true, &window)
	require.NoError(t, err)
	require.Empty(t, completions)

	_, err = scope.Views(ctx, store)
	require.Error(t, err)
	require.Contains(t, err.Error(), "list views")
}

func TestOwnsThrough(t *testing.T) {
	scope := New(1)
	jobs := []db.Job{
		{ID: 10, EmployerID: 1},
		{ID: 11, EmployerID: 2},
	}

	owns := scope.OwnsThrough(jobs)
	require.True(t, owns(10))
	require.False(t, owns(11))
	require.False(t, owns(12))
}
