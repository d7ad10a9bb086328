package aggregate

type op int

const (
	opCount op = iota
	opCountWhere
	opSum
	opAvg
	opMin
	opMax
)

// Field extracts a numeric value from a row. ok is false when the row has
// no value, in which case the row is skipped by sum, avg, min and max.
type Field[T any] func(T) (value float64, ok bool)

// Number lifts a plain accessor into a Field that always has a value.
func Number[T any](f func(T) float64) Field[T] {
	return func(row T) (float64, bool) { return f(row), true }
}

// Reducer is a named reduction over the rows of one group.
type Reducer[T any] struct {
	name  string
	op    op
	where func(T) bool
	field Field[T]
}

// Count counts the rows of a group.
func Count[T any](name string) Reducer[T] {
	return Reducer[T]{name: name, op: opCount}
}

// CountWhere counts the rows for which where is true.
func CountWhere[T any](name string, where func(T) bool) Reducer[T] {
	return Reducer[T]{name: name, op: opCountWhere, where: where}
}

// Sum adds up the present values of field.
func Sum[T any](name string, field Field[T]) Reducer[T] {
	return Reducer[T]{name: name, op: opSum, field: field}
}

// Avg is the mean of the present values of field; absent when there are none.
func Avg[T any](name string, field Field[T]) Reducer[T] {
	return Reducer[T]{name: name, op: opAvg, field: field}
}

// Min is the smallest present value of field; absent when there are none.
func Min[T any](name string, field Field[T]) Reducer[T] {
	return Reducer[T]{name: name, op: opMin, field: field}
}

// Max is the largest present value of field; absent when there are none.
func Max[T any](name string, field Field[T]) Reducer[T] {
	return Reducer[T]{name: name, op: opMax, field: field}
}

type accumulator struct {
	count int64
	sum   float64
	n     int64
	min   float64
	max   float64
}

func (a *accumulator) add(value float64) {
	if a.n == 0 || value < a.min {
		a.min = value
	}
	if a.n == 0 || value > a.max {
		a.max = value
	}
	a.sum += value
	a.n++
}

// Result holds the reducer outputs of one group.
// Avg, Min and Max over zero values are absent and read as 0.
type Result struct {
	rows   int
	values map[string]float64
}

// Rows is the number of rows the group was reduced from.
func (r Result) Rows() int { return r.rows }

// Lookup returns the named value and whether it is present.
func (r Result) Lookup(name string) (float64, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Float returns the named value, or 0 when absent.
func (r Result) Float(name string) float64 {
	return r.values[name]
}

// Int returns the named value truncated to an integer, or 0 when absent.
func (r Result) Int(name string) int64 {
	return int64(r.values[name])
}

// Group is one output row of GroupBy.
type Group[K comparable] struct {
	Key K
	Result
}

// Reduce evaluates the reducers over all rows as a single group.
// An empty input yields zero counts and sums and absent avg/min/max.
func Reduce[T any](rows []T, reducers ...Reducer[T]) Result {
	accs := make([]accumulator, len(reducers))
	for _, row := range rows {
		step(accs, reducers, row)
	}
	return finish(len(rows), accs, reducers)
}

type groupState[K comparable] struct {
	key  K
	rows int
	accs []accumulator
}

// GroupBy reduces rows per distinct key. Groups come out in the order their
// key was first seen; ordering for presentation is the caller's concern.
func GroupBy[T any, K comparable](rows []T, key func(T) K, reducers ...Reducer[T]) []Group[K] {
	positions := make(map[K]int)
	var states []*groupState[K]
	for _, row := range rows {
		k := key(row)
		pos, ok := positions[k]
		if !ok {
			pos = len(states)
			positions[k] = pos
			states = append(states, &groupState[K]{key: k, accs: make([]accumulator, len(reducers))})
		}
		s := states[pos]
		s.rows++
		step(s.accs, reducers, row)
	}

	groups := make([]Group[K], 0, len(states))
	for _, s := range states {
		groups = append(groups, Group[K]{Key: s.key, Result: finish(s.rows, s.accs, reducers)})
	}
	return groups
}

func step[T any](accs []accumulator, reducers []Reducer[T], row T) {
	for i, r := range reducers {
		switch r.op {
		case opCount:
			accs[i].count++
		case opCountWhere:
			if r.where(row) {
				accs[i].count++
			}
		default:
			if v, ok := r.field(row); ok {
				accs[i].add(v)
			}
		}
	}
}

func finish[T any](rows int, accs []accumulator, reducers []Reducer[T]) Result {
	values := make(map[string]float64, len(reducers))
	for i, r := range reducers {
		acc := accs[i]
		switch r.op {
		case opCount, opCountWhere:
			values[r.name] = float64(acc.count)
		case opSum:
			values[r.name] = acc.sum
		case opAvg:
			if acc.n > 0 {
				values[r.name] = acc.sum / float64(acc.n)
			}
		case opMin:
			if acc.n > 0 {
				values[r.name] = acc.min
			}
		case opMax:
			if acc.n > 0 {
				values[r.name] = acc.max
			}
		}
	}
	return Result{rows: rows, values: values}
}
