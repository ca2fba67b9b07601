package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/devshowcase/internal/models"
)

type projectData struct {
	Project models.Project `json:"project"`
}

func (c *HTTPClient) GetProjects(ctx context.Context, q models.ProjectQuery) (models.ProjectPage, error) {
	page, err := do[models.ProjectPage](ctx, c, http.MethodGet, "/projects", projectValues(q), nil)
	if err == nil {
		c.checkPagination(ctx, "/projects", page.Pagination)
	}
	return page, err
}

func (c *HTTPClient) GetProjectByID(ctx context.Context, id string) (models.Project, error) {
	data, err := do[projectData](ctx, c, http.MethodGet, "/projects/"+url.PathEscape(id), nil, nil)
	return data.Project, err
}

// GetProjectsByUser ignores q.Author; the user in the path is the filter.
func (c *HTTPClient) GetProjectsByUser(ctx context.Context, userID string, q models.ProjectQuery) (models.ProjectPage, error) {
	q.Author = ""
	path := "/projects/user/" + url.PathEscape(userID)
	page, err := do[models.ProjectPage](ctx, c, http.MethodGet, path, projectValues(q), nil)
	if err == nil {
		c.checkPagination(ctx, path, page.Pagination)
	}
	return page, err
}

func (c *HTTPClient) CreateProject(ctx context.Context, req models.CreateProjectRequest) (models.Project, error) {
	data, err := do[projectData](ctx, c, http.MethodPost, "/projects", nil, createProjectForm(req))
	return data.Project, err
}

func (c *HTTPClient) UpdateProject(ctx context.Context, id string, req models.UpdateProjectRequest) (models.Project, error) {
	data, err := do[projectData](ctx, c, http.MethodPut, "/projects/"+url.PathEscape(id), nil, updateProjectForm(req))
	return data.Project, err
}

func (c *HTTPClient) DeleteProject(ctx context.Context, id string) (string, error) {
	if _, err := do[json.RawMessage](ctx, c, http.MethodDelete, "/projects/"+url.PathEscape(id), nil, nil); err != nil {
		return "", err
	}
	return id, nil
}
