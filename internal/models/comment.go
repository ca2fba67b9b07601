package models

import "github.com/dmitrijs2005/devshowcase/internal/timex"

// Comment belongs to exactly one project.
type Comment struct {
	ID        string     `json:"id"`
	Content   string     `json:"content"`
	AuthorID  string     `json:"authorId"`
	Author    User       `json:"author"`
	ProjectID string     `json:"projectId"`
	CreatedAt timex.Time `json:"createdAt"`
	UpdatedAt timex.Time `json:"updatedAt"`
}

// CommentPage is one page of a project's comments.
type CommentPage struct {
	Comments   []Comment   `json:"comments"`
	Pagination *Pagination `json:"pagination"`
}
