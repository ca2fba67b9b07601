package store

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/devshowcase/internal/client/client"
	"github.com/dmitrijs2005/devshowcase/internal/client/repositories/session"
	"github.com/dmitrijs2005/devshowcase/internal/models"
)

var errNotStubbed = errors.New("not stubbed")

// fakeAPI answers with the configured funcs and records every call.
type fakeAPI struct {
	mu    sync.Mutex
	calls []string

	register          func(models.RegisterRequest) (models.AuthResult, error)
	login             func(models.LoginRequest) (models.AuthResult, error)
	getProfile        func(ctx context.Context) (models.User, error)
	updateProfile     func(models.UpdateProfileRequest) (models.User, error)
	updateAvatar      func(models.Upload) (models.User, error)
	getProjects       func(ctx context.Context, q models.ProjectQuery) (models.ProjectPage, error)
	getProject        func(id string) (models.Project, error)
	getProjectsByUser func(userID string, q models.ProjectQuery) (models.ProjectPage, error)
	createProject     func(models.CreateProjectRequest) (models.Project, error)
	updateProject     func(id string, req models.UpdateProjectRequest) (models.Project, error)
	deleteProject     func(id string) (string, error)
	getUsers          func(models.UserQuery) (models.UserPage, error)
	getUser           func(id string) (models.User, error)
	getUserByUsername func(username string) (models.User, error)
	getComments       func(projectID string, q models.CommentQuery) (models.CommentPage, error)
	createComment     func(models.CreateCommentRequest) (models.Comment, error)
	updateComment     func(id string, req models.UpdateCommentRequest) (models.Comment, error)
	deleteComment     func(id string) (string, error)
}

var _ client.API = (*fakeAPI)(nil)

func (f *fakeAPI) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeAPI) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error) {
	f.record("Register")
	if f.register == nil {
		return models.AuthResult{}, errNotStubbed
	}
	return f.register(req)
}

func (f *fakeAPI) Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	f.record("Login")
	if f.login == nil {
		return models.AuthResult{}, errNotStubbed
	}
	return f.login(req)
}

func (f *fakeAPI) GetProfile(ctx context.Context) (models.User, error) {
	f.record("GetProfile")
	if f.getProfile == nil {
		return models.User{}, errNotStubbed
	}
	return f.getProfile(ctx)
}

func (f *fakeAPI) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.User, error) {
	f.record("UpdateProfile")
	if f.updateProfile == nil {
		return models.User{}, errNotStubbed
	}
	return f.updateProfile(req)
}

func (f *fakeAPI) UpdateAvatar(ctx context.Context, avatar models.Upload) (models.User, error) {
	f.record("UpdateAvatar")
	if f.updateAvatar == nil {
		return models.User{}, errNotStubbed
	}
	return f.updateAvatar(avatar)
}

func (f *fakeAPI) GetProjects(ctx context.Context, q models.ProjectQuery) (models.ProjectPage, error) {
	f.record("GetProjects")
	if f.getProjects == nil {
		return models.ProjectPage{}, errNotStubbed
	}
	return f.getProjects(ctx, q)
}

func (f *fakeAPI) GetProjectByID(ctx context.Context, id string) (models.Project, error) {
	f.record("GetProjectByID")
	if f.getProject == nil {
		return models.Project{}, errNotStubbed
	}
	return f.getProject(id)
}

func (f *fakeAPI) GetProjectsByUser(ctx context.Context, userID string, q models.ProjectQuery) (models.ProjectPage, error) {
	f.record("GetProjectsByUser")
	if f.getProjectsByUser == nil {
		return models.ProjectPage{}, errNotStubbed
	}
	return f.getProjectsByUser(userID, q)
}

func (f *fakeAPI) CreateProject(ctx context.Context, req models.CreateProjectRequest) (models.Project, error) {
	f.record("CreateProject")
	if f.createProject == nil {
		return models.Project{}, errNotStubbed
	}
	return f.createProject(req)
}

func (f *fakeAPI) UpdateProject(ctx context.Context, id string, req models.UpdateProjectRequest) (models.Project, error) {
	f.record("UpdateProject")
	if f.updateProject == nil {
		return models.Project{}, errNotStubbed
	}
	return f.updateProject(id, req)
}

func (f *fakeAPI) DeleteProject(ctx context.Context, id string) (string, error) {
	f.record("DeleteProject")
	if f.deleteProject == nil {
		return id, nil
	}
	return f.deleteProject(id)
}

func (f *fakeAPI) GetUsers(ctx context.Context, q models.UserQuery) (models.UserPage, error) {
	f.record("GetUsers")
	if f.getUsers == nil {
		return models.UserPage{}, errNotStubbed
	}
	return f.getUsers(q)
}

func (f *fakeAPI) GetUserByID(ctx context.Context, id string) (models.User, error) {
	f.record("GetUserByID")
	if f.getUser == nil {
		return models.User{}, errNotStubbed
	}
	return f.getUser(id)
}

func (f *fakeAPI) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	f.record("GetUserByUsername")
	if f.getUserByUsername == nil {
		return models.User{}, errNotStubbed
	}
	return f.getUserByUsername(username)
}

func (f *fakeAPI) GetCommentsByProject(ctx context.Context, projectID string, q models.CommentQuery) (models.CommentPage, error) {
	f.record("GetCommentsByProject")
	if f.getComments == nil {
		return models.CommentPage{}, errNotStubbed
	}
	return f.getComments(projectID, q)
}

func (f *fakeAPI) CreateComment(ctx context.Context, req models.CreateCommentRequest) (models.Comment, error) {
	f.record("CreateComment")
	if f.createComment == nil {
		return models.Comment{}, errNotStubbed
	}
	return f.createComment(req)
}

func (f *fakeAPI) UpdateComment(ctx context.Context, id string, req models.UpdateCommentRequest) (models.Comment, error) {
	f.record("UpdateComment")
	if f.updateComment == nil {
		return models.Comment{}, errNotStubbed
	}
	return f.updateComment(id, req)
}

func (f *fakeAPI) DeleteComment(ctx context.Context, id string) (string, error) {
	f.record("DeleteComment")
	if f.deleteComment == nil {
		return id, nil
	}
	return f.deleteComment(id)
}

// failingSessions fails every call with err.
type failingSessions struct {
	err error
}

func (f failingSessions) Load(ctx context.Context) (session.Snapshot, error) {
	return session.Snapshot{}, f.err
}

func (f failingSessions) Save(ctx context.Context, token string, user models.User) error {
	return f.err
}

func (f failingSessions) SaveUser(ctx context.Context, user models.User) error { return f.err }

func (f failingSessions) Clear(ctx context.Context) error { return f.err }
