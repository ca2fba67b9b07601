package client

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/dmitrijs2005/devshowcase/internal/models"
)

// formBody accumulates a multipart/form-data payload. The first write error
// is kept and reported by Reader.
type formBody struct {
	buf bytes.Buffer
	w   *multipart.Writer
	err error
}

func newFormBody() *formBody {
	f := &formBody{}
	f.w = multipart.NewWriter(&f.buf)
	return f
}

func (f *formBody) field(name, value string) {
	if f.err != nil {
		return
	}
	f.err = f.w.WriteField(name, value)
}

func (f *formBody) file(name string, up models.Upload) {
	if f.err != nil {
		return
	}
	part, err := f.w.CreateFormFile(name, up.Filename)
	if err != nil {
		f.err = err
		return
	}
	if up.Content != nil {
		_, f.err = io.Copy(part, up.Content)
	}
}

func (f *formBody) ContentType() string { return f.w.FormDataContentType() }

func (f *formBody) Reader() (io.Reader, error) {
	if f.err != nil {
		return nil, fmt.Errorf("encode form: %w", f.err)
	}
	if err := f.w.Close(); err != nil {
		return nil, fmt.Errorf("encode form: %w", err)
	}
	return bytes.NewReader(f.buf.Bytes()), nil
}

func createProjectForm(req models.CreateProjectRequest) *formBody {
	f := newFormBody()
	f.field("title", req.Title)
	f.field("description", req.Description)
	if req.GithubURL != "" {
		f.field("githubUrl", req.GithubURL)
	}
	if req.LiveURL != "" {
		f.field("liveUrl", req.LiveURL)
	}
	for _, tech := range req.Technologies {
		f.field("technologies", tech)
	}
	if req.Image != nil {
		f.file("projectImage", *req.Image)
	}
	return f
}

func updateProjectForm(req models.UpdateProjectRequest) *formBody {
	f := newFormBody()
	if req.Title != nil && *req.Title != "" {
		f.field("title", *req.Title)
	}
	if req.Description != nil && *req.Description != "" {
		f.field("description", *req.Description)
	}
	if req.GithubURL != nil {
		f.field("githubUrl", *req.GithubURL)
	}
	if req.LiveURL != nil {
		f.field("liveUrl", *req.LiveURL)
	}
	for _, tech := range req.Technologies {
		f.field("technologies", tech)
	}
	if req.Image != nil {
		f.file("projectImage", *req.Image)
	}
	return f
}
