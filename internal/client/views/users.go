package views

import (
	"slices"

	"github.com/dmitrijs2005/devshowcase/internal/models"
)

type UserSort string

const (
	UsersByName     UserSort = "name"
	UsersByRecent   UserSort = "recent"
	UsersByUsername UserSort = "username"
)

// FilterUsers matches full name, username, bio, location and skills.
func FilterUsers(items []models.User, q string) []models.User {
	m := newMatcher(q)
	out := make([]models.User, 0, len(items))
	for _, u := range items {
		if m.empty() || m.any(u.FullName, u.Username, u.Bio, u.Location) || m.anyOf(u.Skills) {
			out = append(out, u)
		}
	}
	return out
}

func SortUsers(items []models.User, by UserSort) []models.User {
	out := slices.Clone(items)
	c := newCollator()
	switch by {
	case UsersByName:
		slices.SortStableFunc(out, func(a, b models.User) int {
			return c.CompareString(a.FullName, b.FullName)
		})
	case UsersByRecent:
		slices.SortStableFunc(out, func(a, b models.User) int {
			return b.JoinedDate.Compare(a.JoinedDate.Time)
		})
	case UsersByUsername:
		slices.SortStableFunc(out, func(a, b models.User) int {
			return c.CompareString(a.Username, b.Username)
		})
	}
	return out
}

func ListUsers(items []models.User, q string, by UserSort) []models.User {
	return SortUsers(FilterUsers(items, q), by)
}

func HomeUsers(items []models.User, q string, preview int) []models.User {
	return window(FilterUsers(items, q), newMatcher(q), preview)
}

// Skills lists every skill of items once, in alphabetical order.
func Skills(items []models.User) []string {
	groups := make([][]string, 0, len(items))
	for _, u := range items {
		groups = append(groups, u.Skills)
	}
	return unique(groups...)
}
