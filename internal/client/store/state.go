package store

import "github.com/dmitrijs2005/devshowcase/internal/models"

// Status is the request lifecycle part shared by every slice. An empty Error
// means no error.
type Status struct {
	IsLoading bool
	Error     string
}

func pending() Status { return Status{IsLoading: true} }
func fulfilled() Status { return Status{} }
func rejected(msg string) Status { return Status{Error: msg} }

// AuthState is the session. An empty Token means signed out, and
// IsAuthenticated always equals Token != "".
type AuthState struct {
	Status
	User            *models.User
	Token           string
	IsAuthenticated bool
}

type ProjectsState struct {
	Status
	Items      []models.Project
	Current    *models.Project
	Pagination *models.Pagination
}

type UsersState struct {
	Status
	Items      []models.User
	Current    *models.User
	Pagination *models.Pagination
}

// CommentsState holds the comments of the project last fetched.
type CommentsState struct {
	Status
	Items      []models.Comment
	Pagination *models.Pagination
}

// State is the whole store. Values handed out by Store.State share backing
// arrays with the store and must be treated as read-only.
type State struct {
	Auth     AuthState
	Projects ProjectsState
	Users    UsersState
	Comments CommentsState
}
