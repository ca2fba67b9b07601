package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/devshowcase/internal/models"
)

func (c *HTTPClient) GetUsers(ctx context.Context, q models.UserQuery) (models.UserPage, error) {
	page, err := do[models.UserPage](ctx, c, http.MethodGet, "/users", userValues(q), nil)
	if err == nil {
		c.checkPagination(ctx, "/users", page.Pagination)
	}
	return page, err
}

func (c *HTTPClient) GetUserByID(ctx context.Context, id string) (models.User, error) {
	data, err := do[userData](ctx, c, http.MethodGet, "/users/id/"+url.PathEscape(id), nil, nil)
	return data.User, err
}

func (c *HTTPClient) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	data, err := do[userData](ctx, c, http.MethodGet, "/users/username/"+url.PathEscape(username), nil, nil)
	return data.User, err
}
