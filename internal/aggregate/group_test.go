package aggregate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type scoreRow struct {
	skill string
	score float64
	hired bool
}

func scoreOf(r scoreRow) float64 { return r.score }

func TestReduce(t *testing.T) {
	rows := []scoreRow{
		{"go", 80, true},
		{"sql", 60, false},
		{"go", 70, true},
	}

	result := Reduce(rows,
		Count[scoreRow]("total"),
		CountWhere("hired", func(r scoreRow) bool { return r.hired }),
		Sum("sum", Number(scoreOf)),
		Avg("avg", Number(scoreOf)),
		Min("min", Number(scoreOf)),
		Max("max", Number(scoreOf)),
	)

	require.Equal(t, 3, result.Rows())
	require.Equal(t, int64(3), result.Int("total"))
	require.Equal(t, int64(2), result.Int("hired"))
	require.InDelta(t, 210, result.Float("sum"), 1e-9)
	require.InDelta(t, 70, result.Float("avg"), 1e-9)
	require.InDelta(t, 60, result.Float("min"), 1e-9)
	require.InDelta(t, 80, result.Float("max"), 1e-9)
}

func TestReduceEmpty(t *testing.T) {
	result := Reduce([]scoreRow{},
		Count[scoreRow]("total"),
		Sum("sum", Number(scoreOf)),
		Avg("avg", Number(scoreOf)),
		Min("min", Number(scoreOf)),
	)

	require.Equal(t, 0, result.Rows())
	require.Equal(t, int64(0), result.Int("total"))

	sum, ok := result.Lookup("sum")
	require.True(t, ok)
	require.Zero(t, sum)

	_, ok = result.Lookup("avg")
	require.False(t, ok)
	require.Zero(t, result.Float("avg"))

	_, ok = result.Lookup("min")
	require.False(t, ok)
}

func TestReduceSkipsMissingValues(t *testing.T) {
	rows := []scoreRow{{"go", 90, false}, {"go", -1, false}, {"go", 70, false}}
	rated := func(r scoreRow) (float64, bool) { return r.score, r.score >= 0 }

	result := Reduce(rows, Avg("avg", rated), Count[scoreRow]("total"))
	require.InDelta(t, 80, result.Float("avg"), 1e-9)
	require.Equal(t, int64(3), result.Int("total"))
}

func TestGroupBy(t *testing.T) {
	rows := []scoreRow{
		{"sql", 40, false},
		{"go", 80, true},
		{"sql", 60, true},
		{"go", 90, false},
		{"docker", 50, false},
	}

	groups := GroupBy(rows, func(r scoreRow) string { return r.skill },
		Count[scoreRow]("count"),
		Avg("avg", Number(scoreOf)),
		CountWhere("hired", func(r scoreRow) bool { return r.hired }),
	)

	require.Len(t, groups, 3)
	require.Equal(t, "sql", groups[0].Key)
	require.Equal(t, "go", groups[1].Key)
	require.Equal(t, "docker", groups[2].Key)

	require.Equal(t, int64(2), groups[0].Int("count"))
	require.InDelta(t, 50, groups[0].Float("avg"), 1e-9)
	require.Equal(t, int64(1), groups[0].Int("hired"))

	require.InDelta(t, 85, groups[1].Float("avg"), 1e-9)
	require.Equal(t, 1, groups[2].Rows())
}

func TestGroupByEmpty(t *testing.T) {
	groups := GroupBy([]scoreRow{}, func(r scoreRow) string { return r.skill }, Count[scoreRow]("count"))
	require.Empty(t, groups)
}
