package fakeapi

import (
	"net/http"
	"strings"

	"github.com/dmitrijs2005/devshowcase/internal/models"
	"github.com/gin-gonic/gin"
)

func (h *Handler) projectFilter(c *gin.Context) ProjectFilter {
	page, limit := pageQuery(c)
	return ProjectFilter{
		Q:            c.Query("q"),
		Technologies: listQuery(c, "technologies"),
		AuthorID:     c.Query("author"),
		Page:         page,
		Limit:        limit,
	}
}

func projectPage(items []models.Project, p models.Pagination) models.ProjectPage {
	if items == nil {
		items = []models.Project{}
	}
	return models.ProjectPage{Projects: items, Pagination: &p}
}

func (h *Handler) listProjects(c *gin.Context) {
	ok(c, http.StatusOK, projectPage(h.data.ListProjects(h.projectFilter(c))))
}

func (h *Handler) listUserProjects(c *gin.Context) {
	userID := c.Param("userId")
	if _, err := h.data.UserByID(userID); err != nil {
		failErr(c, err, "User")
		return
	}
	f := h.projectFilter(c)
	f.AuthorID = userID
	ok(c, http.StatusOK, projectPage(h.data.ListProjects(f)))
}

func (h *Handler) getProject(c *gin.Context) {
	p, err := h.data.ProjectByID(c.Param("id"))
	if err != nil {
		failErr(c, err, "Project")
		return
	}
	ok(c, http.StatusOK, gin.H{"project": p})
}

// trimmed drops blank entries from a repeated form field.
func trimmed(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// projectImage stores the optional projectImage part. found is false when
// the form carries none.
func (h *Handler) projectImage(c *gin.Context) (link string, found bool, err error) {
	fh, ferr := c.FormFile("projectImage")
	if ferr != nil {
		return "", false, nil
	}
	link, err = h.saveUpload(c, fh)
	return link, true, err
}

func (h *Handler) createProject(c *gin.Context) {
	req := models.CreateProjectRequest{
		Title:        strings.TrimSpace(c.PostForm("title")),
		Description:  strings.TrimSpace(c.PostForm("description")),
		GithubURL:    strings.TrimSpace(c.PostForm("githubUrl")),
		LiveURL:      strings.TrimSpace(c.PostForm("liveUrl")),
		Technologies: trimmed(c.PostFormArray("technologies")),
	}
	if err := models.Validate(req); err != nil {
		failErr(c, err, "")
		return
	}

	image, _, err := h.projectImage(c)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	p := h.data.CreateProject(models.Project{
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     image,
		GithubURL:    req.GithubURL,
		LiveURL:      req.LiveURL,
		Technologies: req.Technologies,
		AuthorID:     callerID(c),
	})
	ok(c, http.StatusCreated, gin.H{"project": p})
}

func formField(c *gin.Context, key string) *string {
	v, found := c.GetPostForm(key)
	if !found {
		return nil
	}
	v = strings.TrimSpace(v)
	return &v
}

func (h *Handler) updateProject(c *gin.Context) {
	req := models.UpdateProjectRequest{
		Title:       formField(c, "title"),
		Description: formField(c, "description"),
		GithubURL:   formField(c, "githubUrl"),
		LiveURL:     formField(c, "liveUrl"),
	}
	if techs, found := c.GetPostFormArray("technologies"); found {
		req.Technologies = trimmed(techs)
	}
	if err := models.Validate(req); err != nil {
		failErr(c, err, "")
		return
	}

	image, hasImage, err := h.projectImage(c)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.data.UpdateProject(c.Param("id"), callerID(c), func(p *models.Project) {
		if req.Title != nil && *req.Title != "" {
			p.Title = *req.Title
		}
		if req.Description != nil && *req.Description != "" {
			p.Description = *req.Description
		}
		if req.GithubURL != nil {
			p.GithubURL = *req.GithubURL
		}
		if req.LiveURL != nil {
			p.LiveURL = *req.LiveURL
		}
		if len(req.Technologies) > 0 {
			p.Technologies = req.Technologies
		}
		if hasImage {
			p.ImageURL = image
		}
	})
	if err != nil {
		failErr(c, err, "Project")
		return
	}
	ok(c, http.StatusOK, gin.H{"project": p})
}

func (h *Handler) deleteProject(c *gin.Context) {
	if err := h.data.DeleteProject(c.Param("id"), callerID(c)); err != nil {
		failErr(c, err, "Project")
		return
	}
	okMessage(c, "Project deleted successfully")
}
