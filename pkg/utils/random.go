package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

func init() {
	rand.Seed(time.Now().UnixNano())
}

// RandomInt generates a random integer between min and max (both inclusive)
func RandomInt(min, max int32) int32 {
	return min + rand.Int31n(max-min+1)
}

// RandomFloat generates a random float between min and max
func RandomFloat(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

// RandomString generates a random string of length n
func RandomString(n int) string {
	var sb strings.Builder
	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[rand.Intn(k)]
		sb.WriteByte(c)
	}

	return sb.String()
}

// RandomEmail generates a random email
func RandomEmail() string {
	return fmt.Sprintf("%s@%s.com", RandomString(6), RandomString(4))
}

// RandomElement returns a random element of a non-empty slice
func RandomElement[T any](items []T) T {
	return items[rand.Intn(len(items))]
}

// RandomSubset returns between 1 and n distinct elements of items
func RandomSubset[T any](items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	perm := rand.Perm(len(items))
	size := 1 + rand.Intn(n)
	subset := make([]T, 0, size)
	for _, idx := range perm[:size] {
		subset = append(subset, items[idx])
	}
	return subset
}

// RandomTimeWithin returns a random moment in the last d before now
func RandomTimeWithin(now time.Time, d time.Duration) time.Time {
	return now.Add(-time.Duration(rand.Int63n(int64(d))))
}
