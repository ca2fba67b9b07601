package fakeapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/devshowcase/internal/common"
	"github.com/dmitrijs2005/devshowcase/internal/models"
)

func newSeeded(t *testing.T) *Data {
	t.Helper()
	d := NewData()
	d.hashCost = bcrypt.MinCost
	require.NoError(t, d.Seed())
	return d
}

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, id(it))
	}
	return out
}

func projectID(p models.Project) string { return p.ID }
func userID(u models.User) string       { return u.ID }

func TestData_SeedAccountsCanSignIn(t *testing.T) {
	d := newSeeded(t)

	u, err := d.Authenticate("JOHN@example.com", SeedPassword)
	require.NoError(t, err)
	assert.Equal(t, "johndoe", u.Username)

	_, err = d.Authenticate("john@example.com", "nope")
	assert.ErrorIs(t, err, common.ErrorInvalidCredentials)
	_, err = d.Authenticate("nobody@example.com", SeedPassword)
	assert.ErrorIs(t, err, common.ErrorInvalidCredentials)
}

func TestData_CreateUserRejectsDuplicates(t *testing.T) {
	d := newSeeded(t)

	_, err := d.CreateUser("johndoe", "other@example.com", "secret1", "X")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
	_, err = d.CreateUser("other", "john@example.com", "secret1", "X")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	u, err := d.CreateUser("newbie", "new@example.com", "secret1", "New Bie")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.False(t, u.JoinedDate.IsZero())
}

func TestData_ListProjects(t *testing.T) {
	d := newSeeded(t)

	items, p := d.ListProjects(ProjectFilter{Page: 1, Limit: 10})
	assert.Equal(t, []string{"4", "2", "6", "3", "1", "5"}, ids(items, projectID), "newest first")
	assert.Equal(t, 6, p.TotalItems)
	require.NotNil(t, items[0].Author)
	assert.Equal(t, "Emily Chen", items[0].Author.FullName)

	items, _ = d.ListProjects(ProjectFilter{Q: "react", Page: 1, Limit: 10})
	assert.Equal(t, []string{"4", "1", "5"}, ids(items, projectID))

	items, _ = d.ListProjects(ProjectFilter{Technologies: []string{"docker", "figma"}, Page: 1, Limit: 10})
	assert.Equal(t, []string{"4", "6", "3"}, ids(items, projectID))

	items, _ = d.ListProjects(ProjectFilter{AuthorID: "1", Page: 1, Limit: 10})
	assert.Equal(t, []string{"1", "5"}, ids(items, projectID))

	items, p = d.ListProjects(ProjectFilter{Page: 2, Limit: 4})
	assert.Equal(t, []string{"1", "5"}, ids(items, projectID))
	assert.Equal(t, models.Pagination{CurrentPage: 2, TotalPages: 2, TotalItems: 6, ItemsPerPage: 4, HasPrevPage: true}, p)
	assert.NoError(t, p.Validate())

	items, p = d.ListProjects(ProjectFilter{Page: 9, Limit: 4})
	assert.Empty(t, items)
	assert.Equal(t, 9, p.CurrentPage)
}

func TestData_ProjectOwnership(t *testing.T) {
	d := newSeeded(t)
	d.now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }

	_, err := d.UpdateProject("1", "2", func(p *models.Project) { p.Title = "hijack" })
	assert.ErrorIs(t, err, common.ErrorForbidden)

	p, err := d.UpdateProject("1", "1", func(p *models.Project) { p.Title = "Renamed" })
	require.NoError(t, err)
	assert.Equal(t, "Renamed", p.Title)
	assert.Equal(t, 2025, p.UpdatedAt.Year())

	_, err = d.UpdateProject("missing", "1", func(*models.Project) {})
	assert.ErrorIs(t, err, common.ErrorNotFound)

	assert.ErrorIs(t, d.DeleteProject("1", "3"), common.ErrorForbidden)
	require.NoError(t, d.DeleteProject("1", "1"))
	_, err = d.ProjectByID("1")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, _, err = d.ListComments("1", 1, 10)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestData_Comments(t *testing.T) {
	d := newSeeded(t)

	items, p, err := d.ListComments("1", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1"}, ids(items, func(c models.Comment) string { return c.ID }))
	assert.Equal(t, "Mike Johnson", items[0].Author.FullName)
	assert.Equal(t, 2, p.TotalItems)

	c, err := d.CreateComment("2", "1", "Nice")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", c.Author.FullName)

	_, err = d.CreateComment("missing", "1", "x")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = d.UpdateComment(c.ID, "2", "edited")
	assert.ErrorIs(t, err, common.ErrorForbidden)
	c, err = d.UpdateComment(c.ID, "1", "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", c.Content)

	assert.ErrorIs(t, d.DeleteComment(c.ID, "2"), common.ErrorForbidden)
	assert.NoError(t, d.DeleteComment(c.ID, "1"))
	assert.ErrorIs(t, d.DeleteComment(c.ID, "1"), common.ErrorNotFound)
}

func TestData_ListUsers(t *testing.T) {
	d := newSeeded(t)

	items, _ := d.ListUsers(UserFilter{Page: 1, Limit: 10})
	assert.Equal(t, []string{"4", "2", "1", "3"}, ids(items, userID))

	items, _ = d.ListUsers(UserFilter{Q: "python", Page: 1, Limit: 10})
	assert.Equal(t, []string{"4", "1"}, ids(items, userID))

	items, _ = d.ListUsers(UserFilter{Skills: []string{"vue.js"}, Page: 1, Limit: 10})
	assert.Equal(t, []string{"2"}, ids(items, userID))
}

func TestData_UpdateUserDoesNotLeakSlices(t *testing.T) {
	d := newSeeded(t)

	u, err := d.UpdateUser("1", func(u *models.User) { u.Skills = append(u.Skills, "Go") })
	require.NoError(t, err)
	u.Skills[0] = "mutated"

	again, err := d.UserByID("1")
	require.NoError(t, err)
	assert.Equal(t, []string{"React", "Node.js", "TypeScript", "Python", "Go"}, again.Skills)
}
