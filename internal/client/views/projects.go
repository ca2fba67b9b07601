package views

import (
	"slices"

	"github.com/dmitrijs2005/devshowcase/internal/models"
)

type ProjectSort string

const (
	ProjectsByRecent ProjectSort = "recent"
	ProjectsByTitle  ProjectSort = "title"
	ProjectsByAuthor ProjectSort = "author"
)

// FilterProjects keeps projects whose title, description, technologies or
// author name contain q, ignoring case. An empty q keeps everything.
func FilterProjects(items []models.Project, q string) []models.Project {
	m := newMatcher(q)
	out := make([]models.Project, 0, len(items))
	for _, p := range items {
		if m.empty() || m.any(p.Title, p.Description, p.AuthorName()) || m.anyOf(p.Technologies) {
			out = append(out, p)
		}
	}
	return out
}

// SortProjects returns a sorted copy. Unknown keys keep the input order.
func SortProjects(items []models.Project, by ProjectSort) []models.Project {
	out := slices.Clone(items)
	c := newCollator()
	switch by {
	case ProjectsByRecent:
		slices.SortStableFunc(out, func(a, b models.Project) int {
			return b.CreatedAt.Compare(a.CreatedAt.Time)
		})
	case ProjectsByTitle:
		slices.SortStableFunc(out, func(a, b models.Project) int {
			return c.CompareString(a.Title, b.Title)
		})
	case ProjectsByAuthor:
		slices.SortStableFunc(out, func(a, b models.Project) int {
			return c.CompareString(a.AuthorName(), b.AuthorName())
		})
	}
	return out
}

// ListProjects filters by q and then sorts.
func ListProjects(items []models.Project, q string, by ProjectSort) []models.Project {
	return SortProjects(FilterProjects(items, q), by)
}

// HomeProjects shows at most preview projects unless a search is active.
func HomeProjects(items []models.Project, q string, preview int) []models.Project {
	return window(FilterProjects(items, q), newMatcher(q), preview)
}

// Technologies lists every tag used by items once, in alphabetical order.
func Technologies(items []models.Project) []string {
	groups := make([][]string, 0, len(items))
	for _, p := range items {
		groups = append(groups, p.Technologies)
	}
	return unique(groups...)
}

func ProjectsByAuthorID(items []models.Project, userID string) []models.Project {
	var out []models.Project
	for _, p := range items {
		if p.AuthorID == userID {
			out = append(out, p)
		}
	}
	return out
}

// ResolveProject prefers the fetched current project and falls back to the
// list entry with the same id.
func ResolveProject(current *models.Project, items []models.Project, id string) (models.Project, bool) {
	if current != nil && current.ID == id {
		return *current, true
	}
	for _, p := range items {
		if p.ID == id {
			return p, true
		}
	}
	return models.Project{}, false
}
