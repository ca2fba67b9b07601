package store

import (
	"context"

	"github.com/dmitrijs2005/devshowcase/internal/models"
)

func (s *Store) FetchProjects(ctx context.Context, q models.ProjectQuery) (models.ProjectPage, error) {
	return run(ctx, s, ProjectsFetch, "Failed to fetch projects",
		func(ctx context.Context) (models.ProjectPage, error) { return s.api.GetProjects(ctx, q) },
		nil)
}

func (s *Store) FetchProjectByID(ctx context.Context, id string) (models.Project, error) {
	return run(ctx, s, ProjectsFetchByID, "Failed to fetch project",
		func(ctx context.Context) (models.Project, error) { return s.api.GetProjectByID(ctx, id) },
		nil)
}

// FetchProjectsByUser replaces the list with one author's projects.
func (s *Store) FetchProjectsByUser(ctx context.Context, userID string, q models.ProjectQuery) (models.ProjectPage, error) {
	return run(ctx, s, ProjectsFetchByUser, "Failed to fetch user projects",
		func(ctx context.Context) (models.ProjectPage, error) { return s.api.GetProjectsByUser(ctx, userID, q) },
		nil)
}

func (s *Store) CreateProject(ctx context.Context, req models.CreateProjectRequest) (models.Project, error) {
	if err := models.Validate(req); err != nil {
		return models.Project{}, err
	}
	return run(ctx, s, ProjectsCreate, "Failed to create project",
		func(ctx context.Context) (models.Project, error) { return s.api.CreateProject(ctx, req) },
		nil)
}

func (s *Store) UpdateProject(ctx context.Context, id string, req models.UpdateProjectRequest) (models.Project, error) {
	if err := models.Validate(req); err != nil {
		return models.Project{}, err
	}
	return run(ctx, s, ProjectsUpdate, "Failed to update project",
		func(ctx context.Context) (models.Project, error) { return s.api.UpdateProject(ctx, id, req) },
		nil)
}

func (s *Store) DeleteProject(ctx context.Context, id string) error {
	_, err := run(ctx, s, ProjectsDelete, "Failed to delete project",
		func(ctx context.Context) (string, error) { return s.api.DeleteProject(ctx, id) },
		nil)
	return err
}

func (s *Store) ClearProjectsError() {
	s.Dispatch(Action{Type: ProjectsClearError})
}

func (s *Store) ClearCurrentProject() {
	s.Dispatch(Action{Type: ProjectsClearCurrent})
}
