// Package aggregate joins record sets on a key and reduces them by group.
package aggregate

// Joined is one row of a join result. For a left join Matched is false and
// Right is the zero value when the left row had no partner.
type Joined[L, R any] struct {
	Left    L
	Right   R
	Matched bool
}

// InnerJoin pairs every left row with every right row sharing its key.
// Output follows the order of left, then the order of right within a key.
func InnerJoin[L, R any, K comparable](left []L, right []R, leftKey func(L) K, rightKey func(R) K) []Joined[L, R] {
	return join(left, right, leftKey, rightKey, false)
}

// LeftJoin is InnerJoin that also keeps unmatched left rows.
func LeftJoin[L, R any, K comparable](left []L, right []R, leftKey func(L) K, rightKey func(R) K) []Joined[L, R] {
	return join(left, right, leftKey, rightKey, true)
}

func join[L, R any, K comparable](left []L, right []R, leftKey func(L) K, rightKey func(R) K, keepUnmatched bool) []Joined[L, R] {
	index := make(map[K][]R, len(right))
	for _, r := range right {
		k := rightKey(r)
		index[k] = append(index[k], r)
	}

	out := make([]Joined[L, R], 0, len(left))
	for _, l := range left {
		matches := index[leftKey(l)]
		if len(matches) == 0 {
			if keepUnmatched {
				out = append(out, Joined[L, R]{Left: l})
			}
			continue
		}
		for _, r := range matches {
			out = append(out, Joined[L, R]{Left: l, Right: r, Matched: true})
		}
	}

	return out
}

// Filter keeps the rows for which keep returns true.
func Filter[T any](rows []T, keep func(T) bool) []T {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if keep(row) {
			out = append(out, row)
		}
	}
	return out
}

// Distinct returns the distinct keys of rows in first-seen order.
func Distinct[T any, K comparable](rows []T, key func(T) K) []K {
	seen := make(map[K]struct{}, len(rows))
	out := make([]K, 0, len(rows))
	for _, row := range rows {
		k := key(row)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// Index maps rows by key. Later rows win on duplicate keys.
func Index[T any, K comparable](rows []T, key func(T) K) map[K]T {
	out := make(map[K]T, len(rows))
	for _, row := range rows {
		out[key(row)] = row
	}
	return out
}
