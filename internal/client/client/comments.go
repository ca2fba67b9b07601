package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/devshowcase/internal/models"
)

type commentData struct {
	Comment models.Comment `json:"comment"`
}

func (c *HTTPClient) GetCommentsByProject(ctx context.Context, projectID string, q models.CommentQuery) (models.CommentPage, error) {
	path := "/comments/project/" + url.PathEscape(projectID)
	page, err := do[models.CommentPage](ctx, c, http.MethodGet, path, pageValues(q.Page, q.Limit), nil)
	if err == nil {
		c.checkPagination(ctx, path, page.Pagination)
	}
	return page, err
}

func (c *HTTPClient) CreateComment(ctx context.Context, req models.CreateCommentRequest) (models.Comment, error) {
	data, err := do[commentData](ctx, c, http.MethodPost, "/comments", nil, jsonBody{req})
	return data.Comment, err
}

func (c *HTTPClient) UpdateComment(ctx context.Context, id string, req models.UpdateCommentRequest) (models.Comment, error) {
	data, err := do[commentData](ctx, c, http.MethodPut, "/comments/"+url.PathEscape(id), nil, jsonBody{req})
	return data.Comment, err
}

func (c *HTTPClient) DeleteComment(ctx context.Context, id string) (string, error) {
	if _, err := do[json.RawMessage](ctx, c, http.MethodDelete, "/comments/"+url.PathEscape(id), nil, nil); err != nil {
		return "", err
	}
	return id, nil
}
