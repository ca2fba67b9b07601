package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/devshowcase/internal/models"
)

type userData struct {
	User models.User `json:"user"`
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error) {
	return do[models.AuthResult](ctx, c, http.MethodPost, "/auth/register", nil, jsonBody{req})
}

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error) {
	return do[models.AuthResult](ctx, c, http.MethodPost, "/auth/login", nil, jsonBody{req})
}

func (c *HTTPClient) GetProfile(ctx context.Context) (models.User, error) {
	data, err := do[userData](ctx, c, http.MethodGet, "/auth/profile", nil, nil)
	return data.User, err
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.User, error) {
	data, err := do[userData](ctx, c, http.MethodPut, "/auth/profile", nil, jsonBody{req})
	return data.User, err
}

func (c *HTTPClient) UpdateAvatar(ctx context.Context, avatar models.Upload) (models.User, error) {
	form := newFormBody()
	form.file("avatar", avatar)
	data, err := do[userData](ctx, c, http.MethodPut, "/auth/avatar", nil, form)
	return data.User, err
}
