package analytics

import (
	"context"
	"sort"

	"github.com/aalug/hiring-analytics-go/internal/aggregate"
	"github.com/aalug/hiring-analytics-go/internal/daterange"
	db "github.com/aalug/hiring-analytics-go/internal/db/sqlc"
	"github.com/aalug/hiring-analytics-go/internal/tenant"
)

// CountryStats counts applications and hires from one country.
type CountryStats struct {
	Country      string `json:"country"`
	Applications int64  `json:"applications"`
	Hires        int64  `json:"hires"`
}

// Geography groups the applications submitted within the window by the
// applicant's country. Applications without a country are left out.
func (s *Service) Geography(ctx context.Context, employerID db.EmployerID, params daterange.Params) ([]CountryStats, error) {
	window, err := s.window(params)
	if err != nil {
		return nil, err
	}

	var rows []CountryStats
	err = s.run(ctx, "geography", employerID, func(ctx context.Context) error {
		applications, err := tenant.New(employerID).Applications(ctx, s.store, &window)
		if err != nil {
			return err
		}
		rows = geography(applications)
		return nil
	})
	return rows, err
}

func geography(applications []db.Application) []CountryStats {
	located := aggregate.Filter(applications, func(a db.Application) bool {
		return a.Location.Country.Valid
	})
	groups := aggregate.GroupBy(located,
		func(a db.Application) string { return a.Location.Country.String },
		aggregate.Count[db.Application]("applications"),
		aggregate.CountWhere("hires", applicationIs(db.ApplicationStatusHired)),
	)

	rows := make([]CountryStats, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, CountryStats{
			Country:      g.Key,
			Applications: g.Int("applications"),
			Hires:        g.Int("hires"),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Applications > rows[j].Applications
	})
	return rows
}
