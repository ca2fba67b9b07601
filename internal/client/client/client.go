package client

import (
	"context"

	"github.com/dmitrijs2005/devshowcase/internal/models"
)

// TokenSource supplies the current session token; "" means anonymous.
type TokenSource interface {
	Token() string
}

// TokenSourceFunc adapts a function to TokenSource.
type TokenSourceFunc func() string

func (f TokenSourceFunc) Token() string { return f() }

type AuthAPI interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error)
	GetProfile(ctx context.Context) (models.User, error)
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.User, error)
	UpdateAvatar(ctx context.Context, avatar models.Upload) (models.User, error)
}

type ProjectsAPI interface {
	GetProjects(ctx context.Context, q models.ProjectQuery) (models.ProjectPage, error)
	GetProjectByID(ctx context.Context, id string) (models.Project, error)
	GetProjectsByUser(ctx context.Context, userID string, q models.ProjectQuery) (models.ProjectPage, error)
	CreateProject(ctx context.Context, req models.CreateProjectRequest) (models.Project, error)
	UpdateProject(ctx context.Context, id string, req models.UpdateProjectRequest) (models.Project, error)
	// DeleteProject returns the id it was given once the server confirms.
	DeleteProject(ctx context.Context, id string) (string, error)
}

type UsersAPI interface {
	GetUsers(ctx context.Context, q models.UserQuery) (models.UserPage, error)
	GetUserByID(ctx context.Context, id string) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
}

type CommentsAPI interface {
	GetCommentsByProject(ctx context.Context, projectID string, q models.CommentQuery) (models.CommentPage, error)
	CreateComment(ctx context.Context, req models.CreateCommentRequest) (models.Comment, error)
	UpdateComment(ctx context.Context, id string, req models.UpdateCommentRequest) (models.Comment, error)
	DeleteComment(ctx context.Context, id string) (string, error)
}

// API is the full remote surface used by the store.
type API interface {
	AuthAPI
	ProjectsAPI
	UsersAPI
	CommentsAPI
}
