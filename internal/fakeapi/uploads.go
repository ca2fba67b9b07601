package fakeapi

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxUploadSize = 5 << 20

var errUploadTooLarge = errors.New("file too large")

// saveUpload keeps the file in memory and returns the absolute link it is
// served from.
func (h *Handler) saveUpload(c *gin.Context, fh *multipart.FileHeader) (string, error) {
	if fh.Size > maxUploadSize {
		return "", errUploadTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadSize+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if len(data) > maxUploadSize {
		return "", errUploadTooLarge
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
	h.data.SaveUpload(name, contentType, data)

	return uploadURL(c, name), nil
}

func uploadURL(c *gin.Context, name string) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host + "/uploads/" + name
}

func (h *Handler) getUpload(c *gin.Context) {
	contentType, data, found := h.data.Upload(c.Param("name"))
	if !found {
		fail(c, http.StatusNotFound, "File not found")
		return
	}
	c.Data(http.StatusOK, contentType, data)
}
