// Package analytics builds the employer hiring reports.
package analytics

import (
	"context"
	"errors"
	"time"

	"github.com/aalug/hiring-analytics-go/internal/apperror"
	"github.com/aalug/hiring-analytics-go/internal/daterange"
	db "github.com/aalug/hiring-analytics-go/internal/db/sqlc"
	"github.com/rs/zerolog/log"
)

const defaultTimeout = 10 * time.Second

// Service computes reports over a Store. It holds no per-request state and
// is safe for concurrent use.
type Service struct {
	store   db.Store
	timeout time.Duration
	now     func() time.Time
}

// NewService creates a Service whose reports are aborted after timeout.
func NewService(store db.Store, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Service{
		store:   store,
		timeout: timeout,
		now:     time.Now,
	}
}

func (s *Service) window(params daterange.Params) (daterange.Window, error) {
	return daterange.Resolve(params, s.now())
}

// run executes one report under the service deadline and folds every
// failure into the apperror taxonomy.
func (s *Service) run(ctx context.Context, report string, employerID db.EmployerID, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := fn(ctx)
	if err == nil {
		return nil
	}

	var appErr *apperror.Error
	if errors.As(err, &appErr) && appErr.Kind != apperror.KindServer {
		return appErr
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		log.Error().Err(err).
			Str("report", report).
			Int64("employer_id", int64(employerID)).
			Dur("timeout", s.timeout).
			Msg("report timed out")
		return apperror.Server("report timed out", err)
	}

	log.Error().Err(err).
		Str("report", report).
		Int64("employer_id", int64(employerID)).
		Msg("report failed")
	return apperror.Server("internal server error", err)
}
