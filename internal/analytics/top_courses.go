package analytics

import (
	"context"
	"sort"

	"github.com/aalug/hiring-analytics-go/internal/aggregate"
	"github.com/aalug/hiring-analytics-go/internal/daterange"
	db "github.com/aalug/hiring-analytics-go/internal/db/sqlc"
	"github.com/aalug/hiring-analytics-go/internal/tenant"
)

const topCoursesLimit = 10

// TopCourse is one row of the course ranking.
type TopCourse struct {
	CourseID             db.CourseID `json:"course_id"`
	CourseName           string      `json:"course_name"`
	Institution          string      `json:"institution"`
	HiresCount           int64       `json:"hires_count"`
	AvgPerformanceRating float64     `json:"avg_performance_rating"`
}

type completedCourse = aggregate.Joined[db.CourseCompletion, db.Course]

// TopCourses ranks the courses completed by people hired into the
// employer's jobs within the window. At most ten rows, most hires first.
func (s *Service) TopCourses(ctx context.Context, employerID db.EmployerID, params daterange.Params) ([]TopCourse, error) {
	window, err := s.window(params)
	if err != nil {
		return nil, err
	}

	var rows []TopCourse
	err = s.run(ctx, "top_courses", employerID, func(ctx context.Context) error {
		completions, err := tenant.New(employerID).CourseCompletions(ctx, s.store, true, &window)
		if err != nil {
			return err
		}
		courseIDs := aggregate.Distinct(completions, func(c db.CourseCompletion) db.CourseID { return c.CourseID })
		courses, err := s.store.ListCoursesByIDs(ctx, courseIDs)
		if err != nil {
			return err
		}

		rows = topCourses(completions, courses)
		return nil
	})
	return rows, err
}

func topCourses(completions []db.CourseCompletion, courses []db.Course) []TopCourse {
	joined := aggregate.InnerJoin(completions, courses,
		func(c db.CourseCompletion) db.CourseID { return c.CourseID },
		func(c db.Course) db.CourseID { return c.ID },
	)

	hired := aggregate.Filter(joined, func(row completedCourse) bool { return row.Left.WasHired })
	groups := aggregate.GroupBy(hired,
		func(row completedCourse) db.CourseID { return row.Left.CourseID },
		aggregate.Count[completedCourse]("hires"),
		aggregate.Avg("rating", func(row completedCourse) (float64, bool) {
			rating := row.Left.PerformanceRating
			return float64(rating.Int32), rating.Valid
		}),
	)

	byID := aggregate.Index(courses, func(c db.Course) db.CourseID { return c.ID })
	rows := make([]TopCourse, 0, len(groups))
	for _, g := range groups {
		course := byID[g.Key]
		rows = append(rows, TopCourse{
			CourseID:             g.Key,
			CourseName:           course.Name,
			Institution:          course.Institution,
			HiresCount:           g.Int("hires"),
			AvgPerformanceRating: g.Float("rating"),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].HiresCount > rows[j].HiresCount
	})
	if len(rows) > topCoursesLimit {
		rows = rows[:topCoursesLimit]
	}
	return rows
}
