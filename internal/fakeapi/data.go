package fakeapi

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/devshowcase/internal/common"
	"github.com/dmitrijs2005/devshowcase/internal/models"
	"github.com/dmitrijs2005/devshowcase/internal/timex"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type upload struct {
	ContentType string
	Data        []byte
}

// Data is the whole backing state. Users, projects and comments are kept in
// creation order; listings sort them as the API does.
type Data struct {
	mu sync.RWMutex

	users     []models.User
	passwords map[string][]byte
	projects  []models.Project
	comments  []models.Comment
	uploads   map[string]upload

	now      func() time.Time
	hashCost int
}

func NewData() *Data {
	return &Data{
		passwords: make(map[string][]byte),
		uploads:   make(map[string]upload),
		now:       time.Now,
		hashCost:  bcrypt.DefaultCost,
	}
}

func (d *Data) stamp() timex.Time {
	return timex.NewTime(d.now().UTC())
}

func contains(field, q string) bool {
	return strings.Contains(strings.ToLower(field), q)
}

func containsFold(items []string, q string) bool {
	return slices.ContainsFunc(items, func(s string) bool { return contains(s, q) })
}

func hasAnyFold(items, wanted []string) bool {
	for _, w := range wanted {
		if slices.ContainsFunc(items, func(s string) bool { return strings.EqualFold(s, w) }) {
			return true
		}
	}
	return false
}

func paginate[T any](items []T, page, limit int) ([]T, models.Pagination) {
	p := models.NewPagination(page, limit, len(items))
	start := min(p.Offset(), len(items))
	end := min(start+p.ItemsPerPage, len(items))
	return slices.Clone(items[start:end]), p
}

// ---- users ----

func (d *Data) userIndex(id string) int {
	return slices.IndexFunc(d.users, func(u models.User) bool { return u.ID == id })
}

// CreateUser stores a new account. Username and email must be unique.
func (d *Data) CreateUser(username, email, password, fullName string) (models.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), d.hashCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	for _, u := range d.users {
		if strings.EqualFold(u.Email, email) || strings.EqualFold(u.Username, username) {
			return models.User{}, common.ErrorAlreadyExists
		}
	}

	u := models.User{
		ID:         uuid.NewString(),
		Username:   username,
		Email:      email,
		FullName:   fullName,
		Skills:     []string{},
		JoinedDate: d.stamp(),
	}
	d.users = append(d.users, u)
	d.passwords[u.ID] = hash
	return u.Clone(), nil
}

func (d *Data) Authenticate(email, password string) (models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, u := range d.users {
		if !strings.EqualFold(u.Email, email) {
			continue
		}
		if bcrypt.CompareHashAndPassword(d.passwords[u.ID], []byte(password)) != nil {
			return models.User{}, common.ErrorInvalidCredentials
		}
		return u.Clone(), nil
	}
	return models.User{}, common.ErrorInvalidCredentials
}

func (d *Data) UserByID(id string) (models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if i := d.userIndex(id); i >= 0 {
		return d.users[i].Clone(), nil
	}
	return models.User{}, common.ErrorNotFound
}

func (d *Data) UserByUsername(username string) (models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, u := range d.users {
		if strings.EqualFold(u.Username, username) {
			return u.Clone(), nil
		}
	}
	return models.User{}, common.ErrorNotFound
}

// UpdateUser applies fn to the stored user and returns the result.
func (d *Data) UpdateUser(id string, fn func(u *models.User)) (models.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.userIndex(id)
	if i < 0 {
		return models.User{}, common.ErrorNotFound
	}
	u := d.users[i].Clone()
	fn(&u)
	d.users[i] = u
	return u.Clone(), nil
}

type UserFilter struct {
	Q      string
	Skills []string
	Page   int
	Limit  int
}

// ListUsers returns newest members first.
func (d *Data) ListUsers(f UserFilter) ([]models.User, models.Pagination) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(f.Q))
	var out []models.User
	for _, u := range d.users {
		if q != "" && !contains(u.FullName, q) && !contains(u.Username, q) && !contains(u.Bio, q) && !containsFold(u.Skills, q) {
			continue
		}
		if len(f.Skills) > 0 && !hasAnyFold(u.Skills, f.Skills) {
			continue
		}
		out = append(out, u.Clone())
	}
	slices.SortStableFunc(out, func(a, b models.User) int {
		return b.JoinedDate.Compare(a.JoinedDate.Time)
	})
	return paginate(out, f.Page, f.Limit)
}

// ---- projects ----

// withAuthor attaches the current snapshot of the author.
func (d *Data) withAuthor(p models.Project) models.Project {
	p.Technologies = slices.Clone(p.Technologies)
	p.Author = nil
	if i := d.userIndex(p.AuthorID); i >= 0 {
		u := d.users[i].Clone()
		p.Author = &u
	}
	return p
}

func (d *Data) projectIndex(id string) int {
	return slices.IndexFunc(d.projects, func(p models.Project) bool { return p.ID == id })
}

type ProjectFilter struct {
	Q            string
	Technologies []string
	AuthorID     string
	Page         int
	Limit        int
}

// ListProjects returns the newest projects first.
func (d *Data) ListProjects(f ProjectFilter) ([]models.Project, models.Pagination) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(f.Q))
	var out []models.Project
	for _, p := range d.projects {
		if f.AuthorID != "" && p.AuthorID != f.AuthorID {
			continue
		}
		if q != "" && !contains(p.Title, q) && !contains(p.Description, q) && !containsFold(p.Technologies, q) {
			continue
		}
		if len(f.Technologies) > 0 && !hasAnyFold(p.Technologies, f.Technologies) {
			continue
		}
		out = append(out, d.withAuthor(p))
	}
	slices.SortStableFunc(out, func(a, b models.Project) int {
		return b.CreatedAt.Compare(a.CreatedAt.Time)
	})
	return paginate(out, f.Page, f.Limit)
}

func (d *Data) ProjectByID(id string) (models.Project, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if i := d.projectIndex(id); i >= 0 {
		return d.withAuthor(d.projects[i]), nil
	}
	return models.Project{}, common.ErrorNotFound
}

func (d *Data) CreateProject(p models.Project) models.Project {
	d.mu.Lock()
	defer d.mu.Unlock()

	p.ID = uuid.NewString()
	p.CreatedAt = d.stamp()
	p.UpdatedAt = p.CreatedAt
	p.Author = nil
	d.projects = append(d.projects, p)
	return d.withAuthor(p)
}

// UpdateProject lets only the author change a project.
func (d *Data) UpdateProject(id, callerID string, fn func(p *models.Project)) (models.Project, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.projectIndex(id)
	if i < 0 {
		return models.Project{}, common.ErrorNotFound
	}
	if d.projects[i].AuthorID != callerID {
		return models.Project{}, common.ErrorForbidden
	}
	p := d.projects[i]
	p.Technologies = slices.Clone(p.Technologies)
	fn(&p)
	p.UpdatedAt = d.stamp()
	d.projects[i] = p
	return d.withAuthor(p), nil
}

// DeleteProject removes the project and its comments.
func (d *Data) DeleteProject(id, callerID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.projectIndex(id)
	if i < 0 {
		return common.ErrorNotFound
	}
	if d.projects[i].AuthorID != callerID {
		return common.ErrorForbidden
	}
	d.projects = slices.Delete(d.projects, i, i+1)
	d.comments = slices.DeleteFunc(d.comments, func(c models.Comment) bool { return c.ProjectID == id })
	return nil
}

// ---- comments ----

func (d *Data) commentIndex(id string) int {
	return slices.IndexFunc(d.comments, func(c models.Comment) bool { return c.ID == id })
}

func (d *Data) withCommentAuthor(c models.Comment) models.Comment {
	if i := d.userIndex(c.AuthorID); i >= 0 {
		c.Author = d.users[i].Clone()
	}
	return c
}

// ListComments returns a project's comments, newest first.
func (d *Data) ListComments(projectID string, page, limit int) ([]models.Comment, models.Pagination, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.projectIndex(projectID) < 0 {
		return nil, models.Pagination{}, common.ErrorNotFound
	}
	var out []models.Comment
	for _, c := range d.comments {
		if c.ProjectID == projectID {
			out = append(out, d.withCommentAuthor(c))
		}
	}
	slices.SortStableFunc(out, func(a, b models.Comment) int {
		return b.CreatedAt.Compare(a.CreatedAt.Time)
	})
	items, p := paginate(out, page, limit)
	return items, p, nil
}

func (d *Data) CreateComment(projectID, authorID, content string) (models.Comment, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.projectIndex(projectID) < 0 {
		return models.Comment{}, common.ErrorNotFound
	}
	c := models.Comment{
		ID:        uuid.NewString(),
		Content:   content,
		AuthorID:  authorID,
		ProjectID: projectID,
		CreatedAt: d.stamp(),
	}
	c.UpdatedAt = c.CreatedAt
	d.comments = append(d.comments, c)
	return d.withCommentAuthor(c), nil
}

func (d *Data) UpdateComment(id, callerID, content string) (models.Comment, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.commentIndex(id)
	if i < 0 {
		return models.Comment{}, common.ErrorNotFound
	}
	if d.comments[i].AuthorID != callerID {
		return models.Comment{}, common.ErrorForbidden
	}
	d.comments[i].Content = content
	d.comments[i].UpdatedAt = d.stamp()
	return d.withCommentAuthor(d.comments[i]), nil
}

func (d *Data) DeleteComment(id, callerID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.commentIndex(id)
	if i < 0 {
		return common.ErrorNotFound
	}
	if d.comments[i].AuthorID != callerID {
		return common.ErrorForbidden
	}
	d.comments = slices.Delete(d.comments, i, i+1)
	return nil
}

// ---- uploads ----

func (d *Data) SaveUpload(name, contentType string, data []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.uploads[name] = upload{ContentType: contentType, Data: data}
}

// Upload returns a stored file and its content type.
func (d *Data) Upload(name string) (string, []byte, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	u, ok := d.uploads[name]
	return u.ContentType, u.Data, ok
}
