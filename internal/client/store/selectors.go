package store

import "github.com/dmitrijs2005/devshowcase/internal/models"

// Selectors read State without exposing the store itself.

func SelectIsAuthenticated(s State) bool { return s.Auth.IsAuthenticated }

func SelectCurrentUser(s State) *models.User { return s.Auth.User }

func SelectToken(s State) string { return s.Auth.Token }

func SelectProjects(s State) []models.Project { return s.Projects.Items }

func SelectCurrentProject(s State) *models.Project { return s.Projects.Current }

func SelectProjectsPagination(s State) *models.Pagination { return s.Projects.Pagination }

func SelectUsers(s State) []models.User { return s.Users.Items }

// SelectViewedUser is the profile opened from the users list.
func SelectViewedUser(s State) *models.User { return s.Users.Current }

func SelectComments(s State) []models.Comment { return s.Comments.Items }

// SelectIsOwner reports whether the signed-in user wrote the project.
func SelectIsOwner(s State, p models.Project) bool {
	return s.Auth.IsAuthenticated && s.Auth.User != nil && s.Auth.User.ID == p.AuthorID
}

// SelectIsCommentAuthor reports whether the signed-in user wrote c.
func SelectIsCommentAuthor(s State, c models.Comment) bool {
	return s.Auth.IsAuthenticated && s.Auth.User != nil && s.Auth.User.ID == c.AuthorID
}
