package db

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

// newTestStore returns a SQLStore over a sqlmock connection.
func newTestStore(t *testing.T) (*SQLStore, sqlmock.Sqlmock) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		conn.Close()
	})

	return NewSQLStore(conn), mock
}

var (
	jobColumns         = []string{"id", "employer_id", "title", "status", "department", "created_at", "views"}
	applicationColumns = []string{"id", "job_id", "applicant_id", "status", "applied_at", "city", "country", "skills", "experience", "source"}
	completionColumns  = []string{"id", "candidate_id", "course_id", "job_id", "completed_at", "was_hired", "performance_rating"}
)
