package models

import "io"

// Upload is a file sent as a multipart part.
type Upload struct {
	Filename string
	Content  io.Reader
}

type RegisterRequest struct {
	Username string `json:"username" validate:"notblank,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"fullName" validate:"notblank"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest sends only the fields that are set.
type UpdateProfileRequest struct {
	FullName *string  `json:"fullName,omitempty" validate:"omitempty,notblank"`
	Bio      *string  `json:"bio,omitempty"`
	Location *string  `json:"location,omitempty"`
	Website  *string  `json:"website,omitempty" validate:"omitempty,url"`
	Skills   []string `json:"skills,omitempty" validate:"omitempty,dive,notblank"`
}

type ProjectQuery struct {
	Page         int
	Limit        int
	Q            string
	Technologies []string
	Author       string
}

type UserQuery struct {
	Page   int
	Limit  int
	Q      string
	Skills []string
}

type CommentQuery struct {
	Page  int
	Limit int
}

type CreateProjectRequest struct {
	Title        string   `json:"title" validate:"notblank"`
	Description  string   `json:"description" validate:"notblank,min=50"`
	GithubURL    string   `json:"githubUrl" validate:"omitempty,url"`
	LiveURL      string   `json:"liveUrl" validate:"omitempty,url"`
	Technologies []string `json:"technologies" validate:"min=1,dive,notblank"`
	Image        *Upload  `json:"-" validate:"-"`
}

// UpdateProjectRequest changes only the fields that are non-nil. An empty
// GithubURL or LiveURL clears the link.
type UpdateProjectRequest struct {
	Title        *string  `json:"title" validate:"omitempty,notblank"`
	Description  *string  `json:"description" validate:"omitempty,min=50"`
	GithubURL    *string  `json:"githubUrl" validate:"omitempty,url"`
	LiveURL      *string  `json:"liveUrl" validate:"omitempty,url"`
	Technologies []string `json:"technologies" validate:"omitempty,min=1,dive,notblank"`
	Image        *Upload  `json:"-" validate:"-"`
}

type CreateCommentRequest struct {
	Content   string `json:"content" validate:"notblank"`
	ProjectID string `json:"projectId" validate:"required"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" validate:"notblank"`
}
