// Package ranking orders users by how recently they were active.
//
// Activity is measured by the last sign-in timestamp. Users who have never
// signed in are the least recent and always sort after everyone else. The
// ordering is stable: users with equal timestamps keep the order in which
// they were supplied.
package ranking

import (
	"slices"
	"time"

	"github.com/yukikurage/student-directory-api/internal/models"
)

// Rank returns a copy of users ordered most recently signed in first.
// The input slice is left untouched.
func Rank(users []models.User) []models.User {
	ranked := make([]models.User, len(users))
	copy(ranked, users)
	slices.SortStableFunc(ranked, func(a, b models.User) int {
		return compareRecency(a.LastSignInAt, b.LastSignInAt)
	})
	return ranked
}

// Top returns at most n of the most recently active users.
func Top(users []models.User, n int) []models.User {
	if n <= 0 {
		return []models.User{}
	}
	ranked := Rank(users)
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// Page slices an already ranked list. Offsets past the end yield an empty page.
func Page(ranked []models.User, offset, limit int) []models.User {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || offset >= len(ranked) {
		return []models.User{}
	}
	end := offset + limit
	if end > len(ranked) {
		end = len(ranked)
	}
	return ranked[offset:end]
}

// compareRecency orders non-nil timestamps descending, nil last.
func compareRecency(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return b.Compare(*a)
}
