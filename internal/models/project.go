package models

import "github.com/dmitrijs2005/devshowcase/internal/timex"

// Project is a showcased piece of work. Author is the server's denormalised
// snapshot of the user referenced by AuthorID and may be absent.
type Project struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	ImageURL     string     `json:"imageUrl,omitempty"`
	GithubURL    string     `json:"githubUrl,omitempty"`
	LiveURL      string     `json:"liveUrl,omitempty"`
	Technologies []string   `json:"technologies"`
	AuthorID     string     `json:"authorId"`
	Author       *User      `json:"author,omitempty"`
	CreatedAt    timex.Time `json:"createdAt"`
	UpdatedAt    timex.Time `json:"updatedAt"`
}

// AuthorName is the author's full name, or "" when the snapshot is missing.
func (p Project) AuthorName() string {
	if p.Author == nil {
		return ""
	}
	return p.Author.FullName
}

// ProjectPage is one page of a projects listing.
type ProjectPage struct {
	Projects   []Project   `json:"projects"`
	Pagination *Pagination `json:"pagination"`
}
